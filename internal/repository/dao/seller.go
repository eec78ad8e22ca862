package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrSellerNotFound = errors.New("seller not found")

type Seller struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

type SellerDAO struct {
	db *gorm.DB
}

func NewSellerDAO(db *gorm.DB) *SellerDAO {
	return &SellerDAO{
		db: db,
	}
}

func (d *SellerDAO) Insert(ctx context.Context, seller Seller) (Seller, error) {
	result := d.db.WithContext(ctx).Create(&seller)
	if result.Error != nil {
		return Seller{}, result.Error
	}

	return seller, nil
}

func (d *SellerDAO) FindByID(ctx context.Context, id uint) (Seller, error) {
	var seller Seller

	result := d.db.WithContext(ctx).First(&seller, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Seller{}, ErrSellerNotFound
		}

		return Seller{}, result.Error
	}

	return seller, nil
}

// FindAll returns every seller ordered by ascending id.
func (d *SellerDAO) FindAll(ctx context.Context) ([]Seller, error) {
	var sellers []Seller

	result := d.db.WithContext(ctx).Order("id ASC").Find(&sellers)
	if result.Error != nil {
		return nil, result.Error
	}

	return sellers, nil
}

// UpdateName matches zero rows for an unknown id, which is not an error.
func (d *SellerDAO) UpdateName(ctx context.Context, id uint, name string) error {
	result := d.db.WithContext(ctx).Model(&Seller{}).Where("id = ?", id).Update("name", name)

	return result.Error
}

func (d *SellerDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Seller{}, id)

	return result.Error
}
