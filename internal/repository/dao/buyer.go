package dao

import (
	"context"

	"gorm.io/gorm"
)

type Buyer struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

type BuyerDAO struct {
	db *gorm.DB
}

func NewBuyerDAO(db *gorm.DB) *BuyerDAO {
	return &BuyerDAO{
		db: db,
	}
}

func (d *BuyerDAO) Insert(ctx context.Context, buyer Buyer) (Buyer, error) {
	result := d.db.WithContext(ctx).Create(&buyer)
	if result.Error != nil {
		return Buyer{}, result.Error
	}

	return buyer, nil
}

// FindAll returns every buyer ordered by ascending id.
func (d *BuyerDAO) FindAll(ctx context.Context) ([]Buyer, error) {
	var buyers []Buyer

	result := d.db.WithContext(ctx).Order("id ASC").Find(&buyers)
	if result.Error != nil {
		return nil, result.Error
	}

	return buyers, nil
}
