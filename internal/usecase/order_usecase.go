package usecase

import (
	"context"
	"time"

	"backroom/internal/domain/entity"
)

// OrderLineInput is one requested line of a replenishment order.
type OrderLineInput struct {
	ProductID       int64    `json:"productId"`
	Quantity        int64    `json:"quantity"`
	UnitPriceAtTime *float64 `json:"unitPriceAtTime,omitempty"`
}

// CreateOrderInput is the payload for placing a replenishment order.
type CreateOrderInput struct {
	Lines []*OrderLineInput `json:"lines"`
}

// OrderLineView is one line of an order joined with its catalog entry.
type OrderLineView struct {
	ProductID       int64    `json:"productId"`
	SKU             string   `json:"sku"`
	ProductName     string   `json:"productName"`
	Quantity        int64    `json:"quantity"`
	UnitPriceAtTime *float64 `json:"unitPriceAtTime"`
}

// OrderView is the read model for a replenishment order.
type OrderView struct {
	ID         int64            `json:"id"`
	LocationID int64            `json:"locationId"`
	Status     string           `json:"status"`
	Lines      []*OrderLineView `json:"lines"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// OrderUsecase defines the interface for replenishment order operations.
type OrderUsecase interface {
	// CreateOrder places a pending order for the location. Duplicate
	// product lines are merged; every referenced product must exist.
	CreateOrder(ctx context.Context, principal *entity.Principal, locationID int64, input *CreateOrderInput) (*OrderView, error)

	// ListOrders returns the location's orders, newest first.
	ListOrders(ctx context.Context, principal *entity.Principal, locationID int64) ([]*OrderView, error)

	// GetOrder returns one order, verifying it belongs to the location.
	GetOrder(ctx context.Context, principal *entity.Principal, locationID, orderID int64) (*OrderView, error)

	// FulfillOrder transitions a pending order to fulfilled and applies
	// each line's quantity to the location's stock ledger.
	FulfillOrder(ctx context.Context, principal *entity.Principal, locationID, orderID int64) (*OrderView, error)

	// CancelOrder cancels a pending order. Cancelling an already
	// cancelled order is a no-op; fulfilled orders cannot be cancelled.
	CancelOrder(ctx context.Context, principal *entity.Principal, locationID, orderID int64) (*OrderView, error)
}
