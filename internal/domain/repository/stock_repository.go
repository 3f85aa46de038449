package repository

import (
	"context"
	"errors"
	"time"

	"backroom/internal/domain/entity"
)

// ErrStockNotFound is returned when no stock row exists for a
// (location, product) pair.
var ErrStockNotFound = errors.New("stock record not found")

// StockItem is the read model for inventory listings: a stock row joined
// with the identity of its product.
type StockItem struct {
	LocationID      int64
	ProductID       int64
	SKU             string
	ProductName     string
	QuantityOnHand  int64
	ReorderPoint    *int64
	ReorderQuantity *int64
	UpdatedAt       time.Time
}

// StockRepository defines the standard operations for stock persistence.
type StockRepository interface {
	// ListByLocation retrieves all stock rows of a location joined with
	// product identity.
	ListByLocation(ctx context.Context, locationID int64) ([]*StockItem, error)

	// FindForUpdate retrieves one stock row and, when running inside a
	// transaction, locks it so concurrent adjustments to the same row are
	// serialized. Returns ErrStockNotFound when the row does not exist.
	FindForUpdate(ctx context.Context, locationID, productID int64) (*entity.LocationStock, error)

	// Create persists a new stock row.
	Create(ctx context.Context, stock *entity.LocationStock) error

	// Update persists quantity and reorder metadata of an existing row.
	Update(ctx context.Context, stock *entity.LocationStock) error
}
