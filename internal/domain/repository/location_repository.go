package repository

import (
	"context"
	"errors"

	"backroom/internal/domain/entity"
)

// Location lookup errors.
var (
	ErrLocationNotFound = errors.New("location not found")
	ErrDistrictNotFound = errors.New("district not found")
)

// LocationRepository defines the standard operations for location persistence.
type LocationRepository interface {
	// FindByID retrieves a single location by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Location, error)

	// DistrictOf resolves the owning district of a location.
	// Returns ErrLocationNotFound when the location does not exist.
	DistrictOf(ctx context.Context, locationID int64) (int64, error)

	// FindDistrictByID retrieves a district by its ID.
	FindDistrictByID(ctx context.Context, id int64) (*entity.District, error)

	// ListByDistrict retrieves all locations belonging to a district.
	ListByDistrict(ctx context.Context, districtID int64) ([]*entity.Location, error)

	// Create persists a new location.
	Create(ctx context.Context, location *entity.Location) error

	// Update modifies an existing location (name, address, active flag).
	Update(ctx context.Context, location *entity.Location) error
}
