package model

import (
	"time"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	SKU       string `gorm:"column:sku;type:varchar(64);unique;not null"`
	Name      string `gorm:"type:varchar(255);not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
