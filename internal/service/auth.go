package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pasarkita/marketplace/internal/domain"
	"github.com/pasarkita/marketplace/internal/repository"
)

var (
	ErrUsernameTaken = repository.ErrUsernameTaken

	// ErrWrongCredentials covers both an unknown username and a wrong
	// password so login errors cannot be used to enumerate usernames.
	ErrWrongCredentials = errors.New("wrong credentials")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Register stores a new user with a bcrypt-hashed password. Uniqueness of
// the username is enforced by the store itself, so concurrent registrations
// of the same name cannot both succeed.
func (s *AuthService) Register(ctx context.Context, username, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.User{
		Username: username,
		Password: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return domain.User{}, ErrUsernameTaken
		}

		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrWrongCredentials
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongCredentials
	}

	return user, nil
}
