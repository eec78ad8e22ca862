package service

import (
	"context"
	"fmt"

	"github.com/pasarkita/marketplace/internal/domain"
)

type StockRepository interface {
	Create(ctx context.Context, stock domain.Stock) (domain.Stock, error)
	FindAll(ctx context.Context) ([]domain.Stock, error)
}

type StockService struct {
	repo StockRepository
}

func NewStockService(repo StockRepository) *StockService {
	return &StockService{
		repo: repo,
	}
}

func (s *StockService) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	stocks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return stocks, nil
}

func (s *StockService) AddStock(ctx context.Context, productName string, quantity int) (domain.Stock, error) {
	created, err := s.repo.Create(ctx, domain.Stock{
		ProductName: productName,
		Quantity:    quantity,
	})
	if err != nil {
		return domain.Stock{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
