package repository

import (
	"context"
	"errors"

	"backroom/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order lookup comes back empty.
var ErrOrderNotFound = errors.New("order not found")

// OrderLineView is an order line joined with product identity for
// response shaping.
type OrderLineView struct {
	ProductID       int64
	SKU             string
	ProductName     string
	Quantity        int64
	UnitPriceAtTime *float64
}

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves an order with its lines.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// ListByLocation retrieves all orders of a location with their lines,
	// newest first.
	ListByLocation(ctx context.Context, locationID int64) ([]*entity.Order, error)

	// LinesWithProducts retrieves the lines of an order joined with
	// product identity.
	LinesWithProducts(ctx context.Context, orderID int64) ([]*OrderLineView, error)

	// Create persists a new order together with its lines.
	Create(ctx context.Context, order *entity.Order) error

	// Update persists status and line mutations of an existing order.
	Update(ctx context.Context, order *entity.Order) error
}
