package authz

import (
	"backroom/internal/domain/entity"
	domainerrors "backroom/internal/domain/errors"
)

// Scope is the canonical resolved scope of a principal: its governing role
// and the district/location that role is bound to. Menu routing and
// response shaping consume this instead of re-deriving precedence.
type Scope struct {
	Role       entity.Role
	DistrictID *int64
	LocationID *int64
}

// ResolveScope derives the scope from the principal's primary role.
// The boolean is false when the principal carries no recognized role.
func ResolveScope(principal *entity.Principal) (Scope, bool) {
	role, ok := principal.PrimaryRole()
	if !ok {
		return Scope{}, false
	}

	scope := Scope{Role: role}
	switch role {
	case entity.RoleDistrictManager:
		scope.DistrictID = principal.DistrictID
	case entity.RoleStoreManager:
		scope.DistrictID = principal.DistrictID
		scope.LocationID = principal.LocationID
	case entity.RoleAdmin:
		// Admins are unscoped.
	}

	return scope, true
}

// ValidateScope enforces the role/scope provisioning rules:
//
//	Admin           -> no district, no location
//	DistrictManager -> district (> 0), no location
//	StoreManager    -> district (> 0) and location (> 0)
//
// It is invoked at user-provisioning time, not per request.
func ValidateScope(role entity.Role, districtID, locationID *int64) error {
	switch role {
	case entity.RoleAdmin:
		if districtID != nil {
			return invalidScope("admin must not carry a district")
		}
		if locationID != nil {
			return invalidScope("admin must not carry a location")
		}

	case entity.RoleDistrictManager:
		if districtID == nil || *districtID <= 0 {
			return invalidScope("district manager requires a positive district id")
		}
		if locationID != nil {
			return invalidScope("district manager must not carry a location")
		}

	case entity.RoleStoreManager:
		if districtID == nil || *districtID <= 0 {
			return invalidScope("store manager requires a positive district id")
		}
		if locationID == nil || *locationID <= 0 {
			return invalidScope("store manager requires a positive location id")
		}

	default:
		return invalidScope("unsupported role: " + role.String())
	}

	return nil
}

func invalidScope(details string) error {
	return domainerrors.ErrInvalidScope.WrapMessage(details)
}
