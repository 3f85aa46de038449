package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateUserInput is the role-tagged provisioning payload. DistrictID and
// LocationID are required or forbidden depending on the role; the scope
// validator enforces the combination before anything is written.
type CreateUserInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	DistrictID *int64 `json:"districtId,omitempty"`
	LocationID *int64 `json:"locationId,omitempty"`
}

// UserView is the admin-facing projection of a directory user.
type UserView struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Roles      []string  `json:"roles"`
	DistrictID *int64    `json:"districtId"`
	LocationID *int64    `json:"locationId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateLocationInput is the admin payload for provisioning a store.
type CreateLocationInput struct {
	DistrictID int64  `json:"districtId"`
	Name       string `json:"name"`
	Code       string `json:"code,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
}

// CreateProductInput is the admin payload for a new catalog entry.
type CreateProductInput struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// AdminUsecase defines the interface for administrative provisioning.
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]*UserView, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*UserView, error)
	DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error

	CreateLocation(ctx context.Context, input *CreateLocationInput) (*LocationView, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*ProductView, error)
}
