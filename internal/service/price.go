package service

import (
	"context"
	"fmt"

	"github.com/pasarkita/marketplace/internal/domain"
)

type PriceRepository interface {
	Create(ctx context.Context, price domain.Price) (domain.Price, error)
	FindAll(ctx context.Context) ([]domain.Price, error)
}

type PriceService struct {
	repo PriceRepository
}

func NewPriceService(repo PriceRepository) *PriceService {
	return &PriceService{
		repo: repo,
	}
}

func (s *PriceService) ListPrices(ctx context.Context) ([]domain.Price, error) {
	prices, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return prices, nil
}

func (s *PriceService) AddPrice(ctx context.Context, price float64) (domain.Price, error) {
	created, err := s.repo.Create(ctx, domain.Price{Price: price})
	if err != nil {
		return domain.Price{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
