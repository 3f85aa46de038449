package entity

import "github.com/google/uuid"

// Principal is an authenticated actor together with its role and scope
// claims, as extracted from a verified access token. It is the sole input
// (besides the target resource) to every authorization decision.
type Principal struct {
	UserID     uuid.UUID // The authenticated user's ID ('sub' claim).
	Email      string    // The user's login email ('email' claim).
	Roles      Roles     // Roles carried by the token; invalid role strings are dropped.
	DistrictID *int64    // District scope claim; nil when absent or malformed.
	LocationID *int64    // Location scope claim; nil when absent or malformed.
}

// PrimaryRole resolves the role that governs this principal's scope.
// The boolean is false when the principal carries no recognized role.
func (p *Principal) PrimaryRole() (Role, bool) {
	return p.Roles.Primary()
}
