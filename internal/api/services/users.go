package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rohits-web03/filesmanager/internal/models"
	"github.com/rohits-web03/filesmanager/internal/repositories"
)

type UserService interface {
	Create(ctx context.Context, email, password string) (models.User, error)
	Me(ctx context.Context, userID uuid.UUID) (models.User, error)
}

type userService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, email, password string) (models.User, error) {
	if email == "" {
		return models.User{}, newValidationError(MsgMissingEmail)
	}
	if password == "" {
		return models.User{}, newValidationError(MsgMissingPass)
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return models.User{}, newValidationError(MsgAlreadyExist)
	case !errors.Is(err, repositories.ErrNotFound):
		return models.User{}, newInternalError(err)
	}

	digest, err := HashPassword(password)
	if err != nil {
		return models.User{}, newInternalError(err)
	}
	user := models.User{Email: email, Password: digest}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.User{}, newValidationError(MsgAlreadyExist)
		}
		return models.User{}, newInternalError(err)
	}
	return user, nil
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.User{}, newUnauthorizedError(err)
		}
		return models.User{}, newInternalError(err)
	}
	return user, nil
}
