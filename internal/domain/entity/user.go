// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a provisioned account in the directory. Role and scope live on
// the user record; the invariants between them (a StoreManager must carry
// both a district and a location, and so on) are enforced at provisioning
// time by the authz scope validator, not here.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's login identifier.
	PasswordHash string    // bcrypt hash of the user's password.
	Roles        Roles     // Roles assigned to the user.
	DistrictID   *int64    // District scope; set for DistrictManager and StoreManager.
	LocationID   *int64    // Location scope; set for StoreManager only.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Principal converts a stored user into the principal it would act as.
func (u *User) Principal() *Principal {
	return &Principal{
		UserID:     u.ID,
		Email:      u.Email,
		Roles:      u.Roles,
		DistrictID: u.DistrictID,
		LocationID: u.LocationID,
	}
}
