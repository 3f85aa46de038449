package repository

import (
	"context"
	"errors"

	"backroom/internal/domain/entity"
)

// ErrProductNotFound is returned when a product lookup comes back empty.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// List retrieves the full product catalog.
	List(ctx context.Context) ([]*entity.Product, error)

	// FilterExisting returns the subset of the given product IDs that
	// exist, preserving no particular order. Callers diff against their
	// input to report missing IDs.
	FilterExisting(ctx context.Context, ids []int64) ([]int64, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error
}
