package dao

import (
	"context"

	"gorm.io/gorm"
)

type Price struct {
	ID    uint    `gorm:"primaryKey"`
	Price float64 `gorm:"not null"`
}

type PriceDAO struct {
	db *gorm.DB
}

func NewPriceDAO(db *gorm.DB) *PriceDAO {
	return &PriceDAO{
		db: db,
	}
}

func (d *PriceDAO) Insert(ctx context.Context, price Price) (Price, error) {
	result := d.db.WithContext(ctx).Create(&price)
	if result.Error != nil {
		return Price{}, result.Error
	}

	return price, nil
}

// FindAll returns every price ordered by ascending id.
func (d *PriceDAO) FindAll(ctx context.Context) ([]Price, error) {
	var prices []Price

	result := d.db.WithContext(ctx).Order("id ASC").Find(&prices)
	if result.Error != nil {
		return nil, result.Error
	}

	return prices, nil
}
