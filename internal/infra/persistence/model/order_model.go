package model

import (
	"time"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	LocationID int64  `gorm:"not null;index"`
	Status     string `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Lines []OrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel mirrors the 'order_lines' table. Lines are unique per
// (order, product); duplicates are merged before they reach persistence.
type OrderLineModel struct {
	ID              int64    `gorm:"primaryKey;autoIncrement"`
	OrderID         int64    `gorm:"not null;index;uniqueIndex:idx_order_product"`
	ProductID       int64    `gorm:"not null;uniqueIndex:idx_order_product"`
	Quantity        int64    `gorm:"not null"`
	UnitPriceAtTime *float64 `gorm:"type:decimal(12,2)"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
