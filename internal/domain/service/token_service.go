package service

import (
	"github.com/golang-jwt/jwt/v5"

	"backroom/internal/domain/entity"
)

// Claims defines the custom claims carried by access tokens. Role and
// scope claims are the authorization inputs; a missing or malformed claim
// stays nil and downstream scope checks deny rather than fail.
type Claims struct {
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	DistrictID *int64   `json:"districtId,omitempty"`
	LocationID *int64   `json:"locationId,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token embedding the
	// user's identity, roles, and scope claims.
	GenerateAccessToken(user *entity.User) (string, error)

	// ValidateToken checks the validity of a token string and returns its
	// parsed claims.
	ValidateToken(tokenString string) (*Claims, error)
}
