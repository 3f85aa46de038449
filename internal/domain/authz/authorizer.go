// Package authz implements the scope authorization rules: which principal
// may act on which district- or location-scoped resource.
package authz

import (
	"context"

	"backroom/internal/domain/entity"
	domainerrors "backroom/internal/domain/errors"
	"backroom/internal/domain/repository"
	"backroom/internal/errors"
)

// Authorizer decides whether a principal's scope covers a target resource.
// It is a pure decision function over the principal's claims, with a single
// read-only district lookup for district managers.
type Authorizer struct {
	locations repository.LocationRepository
}

// NewAuthorizer is the constructor for Authorizer.
func NewAuthorizer(locations repository.LocationRepository) *Authorizer {
	return &Authorizer{locations: locations}
}

// CanAccessLocation returns nil when the principal may act on the target
// location. Admins pass unconditionally; a store manager must match the
// location claim; a district manager must own the location's district,
// which requires resolving the location. A missing location surfaces as
// ErrLocationNotFound, distinct from a scope denial.
func (a *Authorizer) CanAccessLocation(ctx context.Context, principal *entity.Principal, locationID int64) error {
	if principal == nil {
		return errors.WithStack(domainerrors.ErrScopeDenied)
	}

	if principal.Roles.Contains(entity.RoleAdmin) {
		return nil
	}

	if principal.Roles.Contains(entity.RoleStoreManager) {
		if principal.LocationID != nil && *principal.LocationID == locationID {
			return nil
		}
	}

	if principal.Roles.Contains(entity.RoleDistrictManager) {
		if principal.DistrictID == nil {
			return errors.WithStack(domainerrors.ErrScopeDenied)
		}

		districtID, err := a.locations.DistrictOf(ctx, locationID)
		if err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return errors.WithStack(domainerrors.ErrLocationNotFound)
			}

			return errors.Wrap(err, "failed to resolve owning district")
		}

		if districtID == *principal.DistrictID {
			return nil
		}
	}

	return errors.WithStack(domainerrors.ErrScopeDenied)
}

// CanAccessDistrict returns nil when the principal may act on
// district-scoped resources: admins, or a district manager whose district
// claim matches. No lookup is needed; the district ID is compared directly.
func (a *Authorizer) CanAccessDistrict(principal *entity.Principal, districtID int64) error {
	if principal == nil {
		return errors.WithStack(domainerrors.ErrScopeDenied)
	}

	if principal.Roles.Contains(entity.RoleAdmin) {
		return nil
	}

	if principal.Roles.Contains(entity.RoleDistrictManager) &&
		principal.DistrictID != nil && *principal.DistrictID == districtID {
		return nil
	}

	return errors.WithStack(domainerrors.ErrScopeDenied)
}
