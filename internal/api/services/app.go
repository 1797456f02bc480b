package services

import (
	"context"
	"time"

	"github.com/rohits-web03/filesmanager/internal/repositories"
	"golang.org/x/sync/errgroup"
)

const probeTimeout = 2 * time.Second

type Status struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

type AppService interface {
	Status(ctx context.Context) Status
	Stats(ctx context.Context) (Stats, error)
}

type appService struct {
	sessions repositories.Pinger
	db       repositories.Pinger
	users    repositories.UserRepository
	files    repositories.FileRepository
}

func NewAppService(sessions, db repositories.Pinger, users repositories.UserRepository, files repositories.FileRepository) AppService {
	return &appService{sessions: sessions, db: db, users: users, files: files}
}

func (s *appService) Status(ctx context.Context) Status {
	var st Status
	var g errgroup.Group
	g.Go(func() error {
		st.Redis = alive(ctx, s.sessions)
		return nil
	})
	g.Go(func() error {
		st.DB = alive(ctx, s.db)
		return nil
	})
	_ = g.Wait()
	return st
}

func alive(ctx context.Context, p repositories.Pinger) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return p.Ping(ctx) == nil
}

func (s *appService) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.users.Count(ctx)
		st.Users = n
		return err
	})
	g.Go(func() error {
		n, err := s.files.Count(ctx)
		st.Files = n
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, newInternalError(err)
	}
	return st, nil
}
