package model

import (
	"time"
)

// LocationStockModel mirrors the 'location_stocks' table. One row per
// (location, product) pair; the composite key doubles as the row lock
// target for concurrent adjustments.
type LocationStockModel struct {
	LocationID      int64 `gorm:"primaryKey;autoIncrement:false"`
	ProductID       int64 `gorm:"primaryKey;autoIncrement:false"`
	QuantityOnHand  int64 `gorm:"not null;default:0"`
	ReorderPoint    *int64
	ReorderQuantity *int64
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationStockModel) TableName() string {
	return "location_stocks"
}
