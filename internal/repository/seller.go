package repository

import (
	"context"
	"fmt"

	"github.com/pasarkita/marketplace/internal/domain"
	"github.com/pasarkita/marketplace/internal/repository/dao"
)

var ErrSellerNotFound = dao.ErrSellerNotFound

type SellerDAO interface {
	Insert(ctx context.Context, seller dao.Seller) (dao.Seller, error)
	FindByID(ctx context.Context, id uint) (dao.Seller, error)
	FindAll(ctx context.Context) ([]dao.Seller, error)
	UpdateName(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}

type SellerRepository struct {
	dao SellerDAO
}

func NewSellerRepository(dao SellerDAO) *SellerRepository {
	return &SellerRepository{
		dao: dao,
	}
}

func (r *SellerRepository) Create(ctx context.Context, seller domain.Seller) (domain.Seller, error) {
	created, err := r.dao.Insert(ctx, dao.Seller{
		Name: seller.Name,
	})
	if err != nil {
		return domain.Seller{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SellerRepository) FindByID(ctx context.Context, id uint) (domain.Seller, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Seller{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SellerRepository) FindAll(ctx context.Context) ([]domain.Seller, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	sellers := make([]domain.Seller, 0, len(found))
	for _, s := range found {
		sellers = append(sellers, r.daoToDomain(s))
	}

	return sellers, nil
}

func (r *SellerRepository) UpdateName(ctx context.Context, id uint, name string) error {
	if err := r.dao.UpdateName(ctx, id, name); err != nil {
		return fmt.Errorf("r.dao.UpdateName -> %w", err)
	}

	return nil
}

func (r *SellerRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *SellerRepository) daoToDomain(s dao.Seller) domain.Seller {
	return domain.Seller{
		ID:   s.ID,
		Name: s.Name,
	}
}
