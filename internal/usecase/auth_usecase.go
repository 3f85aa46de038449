// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"backroom/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string `json:"accessToken"`
}

// MeOutput describes the authenticated principal's identity and scope.
type MeOutput struct {
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	DistrictID *int64   `json:"districtId,omitempty"`
	LocationID *int64   `json:"locationId,omitempty"`
}

// AuthUsecase defines the interface for authentication business operations.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Me(ctx context.Context, principal *entity.Principal) (*MeOutput, error)
}
