package entity

import (
	"time"

	"backroom/internal/errors"
)

// ErrNegativeStock is returned when an adjustment would drive the
// quantity on hand below zero. The row is left untouched.
var ErrNegativeStock = errors.New("stock cannot go below zero")

// LocationStock tracks the quantity on hand of one product at one
// location, keyed by the (LocationID, ProductID) pair. The quantity is
// never negative; every mutation goes through SetQuantity or Adjust.
type LocationStock struct {
	LocationID      int64
	ProductID       int64
	QuantityOnHand  int64
	ReorderPoint    *int64 // Optional threshold; nil means no reorder tracking.
	ReorderQuantity *int64 // Optional suggested reorder amount.
	UpdatedAt       time.Time
}

// NewLocationStock creates a stock row with an initial quantity.
func NewLocationStock(locationID, productID, quantityOnHand int64) (*LocationStock, error) {
	stock := &LocationStock{
		LocationID: locationID,
		ProductID:  productID,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := stock.SetQuantity(quantityOnHand); err != nil {
		return nil, err
	}

	return stock, nil
}

// SetQuantity replaces the quantity on hand outright.
func (s *LocationStock) SetQuantity(quantityOnHand int64) error {
	if quantityOnHand < 0 {
		return errors.Wrap(ErrNegativeStock, "set quantity")
	}

	s.QuantityOnHand = quantityOnHand
	s.touch()

	return nil
}

// Adjust applies a signed delta to the quantity on hand. The delta is
// applied entirely or not at all.
func (s *LocationStock) Adjust(delta int64) error {
	next := s.QuantityOnHand + delta
	if next < 0 {
		return errors.Wrapf(ErrNegativeStock, "adjust by %d from %d", delta, s.QuantityOnHand)
	}

	s.QuantityOnHand = next
	s.touch()

	return nil
}

// SetReorder updates the reorder metadata. Nil clears a threshold.
func (s *LocationStock) SetReorder(point, quantity *int64) {
	s.ReorderPoint = point
	s.ReorderQuantity = quantity
	s.touch()
}

// BelowReorderPoint reports whether the row has a reorder threshold and
// the quantity on hand has reached it.
func (s *LocationStock) BelowReorderPoint() bool {
	return s.ReorderPoint != nil && s.QuantityOnHand <= *s.ReorderPoint
}

func (s *LocationStock) touch() {
	s.UpdatedAt = time.Now().UTC()
}
