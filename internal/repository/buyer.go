package repository

import (
	"context"
	"fmt"

	"github.com/pasarkita/marketplace/internal/domain"
	"github.com/pasarkita/marketplace/internal/repository/dao"
)

type BuyerDAO interface {
	Insert(ctx context.Context, buyer dao.Buyer) (dao.Buyer, error)
	FindAll(ctx context.Context) ([]dao.Buyer, error)
}

type BuyerRepository struct {
	dao BuyerDAO
}

func NewBuyerRepository(dao BuyerDAO) *BuyerRepository {
	return &BuyerRepository{
		dao: dao,
	}
}

func (r *BuyerRepository) Create(ctx context.Context, buyer domain.Buyer) (domain.Buyer, error) {
	created, err := r.dao.Insert(ctx, dao.Buyer{
		Name: buyer.Name,
	})
	if err != nil {
		return domain.Buyer{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.Buyer{ID: created.ID, Name: created.Name}, nil
}

func (r *BuyerRepository) FindAll(ctx context.Context) ([]domain.Buyer, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	buyers := make([]domain.Buyer, 0, len(found))
	for _, b := range found {
		buyers = append(buyers, domain.Buyer{ID: b.ID, Name: b.Name})
	}

	return buyers, nil
}
