package services

import (
	"log/slog"
	"time"

	"github.com/rohits-web03/filesmanager/internal/repositories"
)

type Container struct {
	App   AppService
	Auth  AuthService
	Users UserService
	Files FileService
}

func NewContainer(repos repositories.Container, sessionTTL time.Duration, log *slog.Logger) *Container {
	return &Container{
		App:   NewAppService(repos.Sessions, repos.DB, repos.Users, repos.Files),
		Auth:  NewAuthService(repos.Users, repos.Sessions, sessionTTL),
		Users: NewUserService(repos.Users),
		Files: NewFileService(repos.Users, repos.Files, repos.Blobs, log),
	}
}
