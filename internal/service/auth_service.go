package service

import (
	"context"
	"errors"
	"strings"

	"bookmarks-api/internal/auth"
	"bookmarks-api/internal/domain"
	"bookmarks-api/internal/repository"
)

// PasswordHasher hashes and checks user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) bool
}

// TokenIssuer issues and verifies access tokens.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
	Verify(token string) (auth.Claims, error)
}

// SignupInput carries the fields required to open an account.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthService issues tokens for credentials and resolves tokens back to users.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (string, error)
	Signin(ctx context.Context, email, password string) (string, error)
	Authorize(ctx context.Context, token string) (domain.PublicUser, error)
}

type authService struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthService(users repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *authService) Signup(ctx context.Context, in SignupInput) (string, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" {
		return "", domain.Validation("email, password, firstName and lastName are required")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", domain.Internal("hash password", err)
	}

	user := &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return "", domain.Conflict("email already exists", err)
		}
		return "", domain.Internal("create user", err)
	}

	return s.issue(user)
}

func (s *authService) Signin(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domain.Validation("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", domain.Unauthorized("user not found", err)
		}
		return "", domain.Internal("find user", err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return "", domain.Unauthorized("invalid password", nil)
	}

	return s.issue(user)
}

// Authorize verifies the token and resolves its subject to a live user.
func (s *authService) Authorize(ctx context.Context, token string) (domain.PublicUser, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return domain.PublicUser{}, domain.Unauthorized("invalid or expired token", err)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.PublicUser{}, domain.Unauthorized("user no longer exists", err)
		}
		return domain.PublicUser{}, domain.Internal("resolve token subject", err)
	}

	return user.Public(), nil
}

func (s *authService) issue(user *domain.User) (string, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", domain.Internal("issue token", err)
	}
	return token, nil
}
