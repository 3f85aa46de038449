package usecase

import (
	"context"
	"time"

	"backroom/internal/domain/entity"
)

// StockItemView is one row of a location's stock ledger joined with its
// catalog entry.
type StockItemView struct {
	ProductID       int64     `json:"productId"`
	SKU             string    `json:"sku"`
	ProductName     string    `json:"productName"`
	QuantityOnHand  int64     `json:"quantityOnHand"`
	ReorderPoint    *int64    `json:"reorderPoint"`
	ReorderQuantity *int64    `json:"reorderQuantity"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AdjustStockInput mutates one ledger row. Delta applies a relative
// change and Quantity an absolute one; they are mutually exclusive.
// Reorder fields are applied when present, so a reorder-only update
// needs neither. CreateIfMissing defaults to true; an explicit false
// requires an existing row.
type AdjustStockInput struct {
	Delta           *int64 `json:"delta,omitempty"`
	Quantity        *int64 `json:"quantity,omitempty"`
	ReorderPoint    *int64 `json:"reorderPoint,omitempty"`
	ReorderQuantity *int64 `json:"reorderQuantity,omitempty"`
	CreateIfMissing *bool  `json:"createIfMissing,omitempty"`
}

// InventoryUsecase defines the interface for stock ledger operations.
type InventoryUsecase interface {
	// ListStock returns the full ledger of one location.
	ListStock(ctx context.Context, principal *entity.Principal, locationID int64) ([]*StockItemView, error)

	// AdjustStock applies a delta or absolute quantity to a single
	// location/product row under a row lock, creating the row on first
	// touch unless the input forbids it. Emits a stock event after the
	// transaction commits.
	AdjustStock(ctx context.Context, principal *entity.Principal, locationID, productID int64, input *AdjustStockInput) (*StockItemView, error)
}
