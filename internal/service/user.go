package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pasarkita/marketplace/internal/domain"
	"github.com/pasarkita/marketplace/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateUsername(ctx context.Context, id uint, username string) error
	Delete(ctx context.Context, id uint) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return users, nil
}

func (s *UserService) AddUser(ctx context.Context, username, password string) (domain.User, error) {
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

// UpdateUsername against an unknown id matches zero rows and succeeds,
// matching delete-by-id idempotency.
func (s *UserService) UpdateUsername(ctx context.Context, id uint, username string) error {
	if err := s.repo.UpdateUsername(ctx, id, username); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return ErrUsernameTaken
		}

		return fmt.Errorf("s.repo.UpdateUsername -> %w", err)
	}

	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
