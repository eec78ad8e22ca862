package dao

import (
	"context"

	"gorm.io/gorm"
)

type Stock struct {
	ID          uint   `gorm:"primaryKey"`
	ProductName string `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
}

type StockDAO struct {
	db *gorm.DB
}

func NewStockDAO(db *gorm.DB) *StockDAO {
	return &StockDAO{
		db: db,
	}
}

func (d *StockDAO) Insert(ctx context.Context, stock Stock) (Stock, error) {
	result := d.db.WithContext(ctx).Create(&stock)
	if result.Error != nil {
		return Stock{}, result.Error
	}

	return stock, nil
}

// FindAll returns every stock row ordered by ascending id.
func (d *StockDAO) FindAll(ctx context.Context) ([]Stock, error) {
	var stocks []Stock

	result := d.db.WithContext(ctx).Order("id ASC").Find(&stocks)
	if result.Error != nil {
		return nil, result.Error
	}

	return stocks, nil
}
