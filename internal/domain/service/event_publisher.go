package service

import (
	"context"
)

// Stock event types published after successful ledger mutations.
const (
	StockEventAdjusted = "stock.adjusted"
	StockEventLow      = "stock.low"
)

// StockEvent describes a committed stock mutation for downstream
// consumers (replenishment tooling, dashboards).
type StockEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	EventType      string `json:"event_type"`
	LocationID     int64  `json:"location_id"`
	ProductID      int64  `json:"product_id"`
	SKU            string `json:"sku,omitempty"`
	Delta          int64  `json:"delta"`
	QuantityOnHand int64  `json:"quantity_on_hand"`
	ReorderPoint   *int64 `json:"reorder_point,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStockEvent publishes a stock event for async processing
	PublishStockEvent(ctx context.Context, event *StockEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
