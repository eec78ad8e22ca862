package repository

import (
	"context"
	"fmt"

	"github.com/pasarkita/marketplace/internal/domain"
	"github.com/pasarkita/marketplace/internal/repository/dao"
)

type StockDAO interface {
	Insert(ctx context.Context, stock dao.Stock) (dao.Stock, error)
	FindAll(ctx context.Context) ([]dao.Stock, error)
}

type StockRepository struct {
	dao StockDAO
}

func NewStockRepository(dao StockDAO) *StockRepository {
	return &StockRepository{
		dao: dao,
	}
}

func (r *StockRepository) Create(ctx context.Context, stock domain.Stock) (domain.Stock, error) {
	created, err := r.dao.Insert(ctx, dao.Stock{
		ProductName: stock.ProductName,
		Quantity:    stock.Quantity,
	})
	if err != nil {
		return domain.Stock{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *StockRepository) FindAll(ctx context.Context) ([]domain.Stock, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	stocks := make([]domain.Stock, 0, len(found))
	for _, s := range found {
		stocks = append(stocks, r.daoToDomain(s))
	}

	return stocks, nil
}

func (r *StockRepository) daoToDomain(s dao.Stock) domain.Stock {
	return domain.Stock{
		ID:          s.ID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
	}
}
