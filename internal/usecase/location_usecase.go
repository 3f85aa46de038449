package usecase

import (
	"context"
	"time"

	"backroom/internal/domain/entity"
)

// LocationView is the read model returned for store lookups.
type LocationView struct {
	ID         int64  `json:"id"`
	DistrictID int64  `json:"districtId"`
	Name       string `json:"name"`
	Code       string `json:"code,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
	IsActive   bool   `json:"isActive"`
}

// ProductView is the read model returned for catalog lookups.
type ProductView struct {
	ID        int64     `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// LocationUsecase defines the interface for store and catalog reads.
// Every location-scoped read goes through the scope check first.
type LocationUsecase interface {
	// GetLocation returns a single store the principal's scope covers.
	GetLocation(ctx context.Context, principal *entity.Principal, locationID int64) (*LocationView, error)

	// ListByDistrict returns the stores of one district. Only admins and
	// the district's own manager may call it.
	ListByDistrict(ctx context.Context, principal *entity.Principal, districtID int64) ([]*LocationView, error)

	// LocationQRCode renders a PNG QR code that encodes the store's
	// canonical lookup URL, for shelf-edge labels.
	LocationQRCode(ctx context.Context, principal *entity.Principal, locationID int64) ([]byte, error)

	// ListProducts returns the catalog. Any authenticated principal may
	// browse products; they carry no location scope.
	ListProducts(ctx context.Context) ([]*ProductView, error)
}
