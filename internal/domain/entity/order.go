package entity

import (
	"time"

	"backroom/internal/errors"
)

// Order state machine failures.
var (
	ErrOrderNotPending     = errors.New("only pending orders accept lines")
	ErrOrderNotFulfillable = errors.New("only pending orders can be fulfilled")
	ErrOrderFulfilled      = errors.New("fulfilled orders cannot be cancelled")
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")
)

// OrderStatus is the lifecycle state of a replenishment order.
type OrderStatus string

const (
	// OrderStatusPending is the initial, mutable state.
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusFulfilled is terminal; fulfilled orders cannot change again.
	OrderStatusFulfilled OrderStatus = "Fulfilled"
	// OrderStatusCancelled is terminal, reachable from any non-fulfilled state.
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusFulfilled, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// OrderLine is one product entry of an order. Lines exist only inside
// their owning order.
type OrderLine struct {
	ID              int64
	OrderID         int64
	ProductID       int64
	Quantity        int64
	UnitPriceAtTime *float64 // Price snapshot at the time the line was added.
}

// Order is a location-scoped replenishment request composed of lines.
// It owns its lines exclusively and guards its status transitions.
type Order struct {
	ID         int64
	LocationID int64
	Status     OrderStatus
	Lines      []*OrderLine
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewOrder creates a pending order for a location with no lines.
func NewOrder(locationID int64) *Order {
	now := time.Now().UTC()

	return &Order{
		LocationID: locationID,
		Status:     OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AddLine appends a product line to a pending order. Adding a product
// that already has a line increases the existing line's quantity instead
// of creating a duplicate.
func (o *Order) AddLine(productID, quantity int64, unitPriceAtTime *float64) error {
	if o.Status != OrderStatusPending {
		return errors.WithStack(ErrOrderNotPending)
	}
	if quantity <= 0 {
		return errors.WithStack(ErrQuantityNotPositive)
	}

	for _, line := range o.Lines {
		if line.ProductID == productID {
			line.Quantity += quantity
			o.touch()

			return nil
		}
	}

	o.Lines = append(o.Lines, &OrderLine{
		OrderID:         o.ID,
		ProductID:       productID,
		Quantity:        quantity,
		UnitPriceAtTime: unitPriceAtTime,
	})
	o.touch()

	return nil
}

// MarkFulfilled transitions a pending order to its fulfilled terminal state.
func (o *Order) MarkFulfilled() error {
	if o.Status != OrderStatusPending {
		return errors.WithStack(ErrOrderNotFulfillable)
	}

	o.Status = OrderStatusFulfilled
	o.touch()

	return nil
}

// Cancel transitions the order to cancelled. Cancelling an already
// cancelled order is accepted; cancelling a fulfilled order is not.
func (o *Order) Cancel() error {
	if o.Status == OrderStatusFulfilled {
		return errors.WithStack(ErrOrderFulfilled)
	}

	o.Status = OrderStatusCancelled
	o.touch()

	return nil
}

func (o *Order) touch() {
	o.UpdatedAt = time.Now().UTC()
}
