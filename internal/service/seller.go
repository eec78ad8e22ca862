package service

import (
	"context"
	"fmt"

	"github.com/pasarkita/marketplace/internal/domain"
	"github.com/pasarkita/marketplace/internal/repository"
)

var ErrSellerNotFound = repository.ErrSellerNotFound

type SellerRepository interface {
	Create(ctx context.Context, seller domain.Seller) (domain.Seller, error)
	FindByID(ctx context.Context, id uint) (domain.Seller, error)
	FindAll(ctx context.Context) ([]domain.Seller, error)
	UpdateName(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}

type SellerService struct {
	repo SellerRepository
}

func NewSellerService(repo SellerRepository) *SellerService {
	return &SellerService{
		repo: repo,
	}
}

func (s *SellerService) ListSellers(ctx context.Context) ([]domain.Seller, error) {
	sellers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return sellers, nil
}

func (s *SellerService) GetSeller(ctx context.Context, id uint) (domain.Seller, error) {
	seller, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Seller{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return seller, nil
}

func (s *SellerService) AddSeller(ctx context.Context, name string) (domain.Seller, error) {
	created, err := s.repo.Create(ctx, domain.Seller{Name: name})
	if err != nil {
		return domain.Seller{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SellerService) UpdateSeller(ctx context.Context, id uint, name string) error {
	if err := s.repo.UpdateName(ctx, id, name); err != nil {
		return fmt.Errorf("s.repo.UpdateName -> %w", err)
	}

	return nil
}

func (s *SellerService) DeleteSeller(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
