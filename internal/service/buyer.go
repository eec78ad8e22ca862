package service

import (
	"context"
	"fmt"

	"github.com/pasarkita/marketplace/internal/domain"
)

type BuyerRepository interface {
	Create(ctx context.Context, buyer domain.Buyer) (domain.Buyer, error)
	FindAll(ctx context.Context) ([]domain.Buyer, error)
}

type BuyerService struct {
	repo BuyerRepository
}

func NewBuyerService(repo BuyerRepository) *BuyerService {
	return &BuyerService{
		repo: repo,
	}
}

func (s *BuyerService) ListBuyers(ctx context.Context) ([]domain.Buyer, error) {
	buyers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return buyers, nil
}

func (s *BuyerService) AddBuyer(ctx context.Context, name string) (domain.Buyer, error) {
	created, err := s.repo.Create(ctx, domain.Buyer{Name: name})
	if err != nil {
		return domain.Buyer{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
