package service

import (
	"context"
	"errors"
	"strings"

	"bookmarks-api/internal/domain"
	"bookmarks-api/internal/repository"
)

// EditUserInput is a partial profile update. Nil fields are left unchanged.
type EditUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserService manages the authenticated user's own profile.
type UserService interface {
	Get(ctx context.Context, id int64) (domain.PublicUser, error)
	Edit(ctx context.Context, id int64, in EditUserInput) (domain.PublicUser, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Get(ctx context.Context, id int64) (domain.PublicUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.PublicUser{}, domain.NotFound("user not found", err)
		}
		return domain.PublicUser{}, domain.Internal("get user", err)
	}
	return user.Public(), nil
}

func (s *userService) Edit(ctx context.Context, id int64, in EditUserInput) (domain.PublicUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.PublicUser{}, domain.NotFound("user not found", err)
		}
		return domain.PublicUser{}, domain.Internal("get user", err)
	}

	if in.Email != nil {
		user.Email = strings.TrimSpace(*in.Email)
	}
	if in.FirstName != nil {
		user.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		user.LastName = strings.TrimSpace(*in.LastName)
	}
	if user.Email == "" || user.FirstName == "" || user.LastName == "" {
		return domain.PublicUser{}, domain.Validation("email, firstName and lastName must not be empty")
	}

	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			return domain.PublicUser{}, domain.Conflict("email already exists", err)
		case errors.Is(err, repository.ErrNotFound):
			return domain.PublicUser{}, domain.NotFound("user not found", err)
		}
		return domain.PublicUser{}, domain.Internal("update user", err)
	}

	return user.Public(), nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NotFound("user not found", err)
		}
		return domain.Internal("delete user", err)
	}
	return nil
}
