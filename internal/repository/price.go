package repository

import (
	"context"
	"fmt"

	"github.com/pasarkita/marketplace/internal/domain"
	"github.com/pasarkita/marketplace/internal/repository/dao"
)

type PriceDAO interface {
	Insert(ctx context.Context, price dao.Price) (dao.Price, error)
	FindAll(ctx context.Context) ([]dao.Price, error)
}

type PriceRepository struct {
	dao PriceDAO
}

func NewPriceRepository(dao PriceDAO) *PriceRepository {
	return &PriceRepository{
		dao: dao,
	}
}

func (r *PriceRepository) Create(ctx context.Context, price domain.Price) (domain.Price, error) {
	created, err := r.dao.Insert(ctx, dao.Price{
		Price: price.Price,
	})
	if err != nil {
		return domain.Price{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.Price{ID: created.ID, Price: created.Price}, nil
}

func (r *PriceRepository) FindAll(ctx context.Context) ([]domain.Price, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	prices := make([]domain.Price, 0, len(found))
	for _, p := range found {
		prices = append(prices, domain.Price{ID: p.ID, Price: p.Price})
	}

	return prices, nil
}
