package postgres

import (
	"context"

	"backroom/internal/domain/entity"
	domainerrors "backroom/internal/domain/errors"
	"backroom/internal/domain/repository"
	"backroom/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the domain.LocationRepository interface using GORM.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// FindByID retrieves a single location by its ID.
func (repo *locationRepository) FindByID(ctx context.Context, id int64) (*entity.Location, error) {
	var locationM model.LocationModel
	if err := repo.db.WithContext(ctx).First(&locationM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// DistrictOf resolves the owning district without loading the whole row.
func (repo *locationRepository) DistrictOf(ctx context.Context, locationID int64) (int64, error) {
	var districtID int64
	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Select("district_id").
		Where("id = ?", locationID).
		Take(&districtID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repository.ErrLocationNotFound
		}

		return 0, errors.Wrap(err, "failed to resolve district of location")
	}

	return districtID, nil
}

// FindDistrictByID retrieves a district by its ID.
func (repo *locationRepository) FindDistrictByID(ctx context.Context, id int64) (*entity.District, error) {
	var districtM model.DistrictModel
	if err := repo.db.WithContext(ctx).First(&districtM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDistrictNotFound
		}

		return nil, errors.Wrap(err, "failed to find district by id")
	}

	return &entity.District{
		ID:        districtM.ID,
		Name:      districtM.Name,
		CreatedAt: districtM.CreatedAt,
		UpdatedAt: districtM.UpdatedAt,
	}, nil
}

// ListByDistrict retrieves all locations of a district ordered by name.
func (repo *locationRepository) ListByDistrict(ctx context.Context, districtID int64) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel
	if err := repo.db.WithContext(ctx).
		Where("district_id = ?", districtID).
		Order("name ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations by district")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// Create persists a new location.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDistrictNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// Update modifies an existing location. The owning district is immutable.
func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", location.ID).
		Updates(map[string]any{
			"name":      location.Name,
			"code":      location.Code,
			"street":    location.Address.Street,
			"city":      location.Address.City,
			"state":     location.Address.State,
			"zip":       location.Address.Zip,
			"is_active": location.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

func toLocationDomain(locationM *model.LocationModel) *entity.Location {
	return &entity.Location{
		ID:         locationM.ID,
		DistrictID: locationM.DistrictID,
		Name:       locationM.Name,
		Code:       locationM.Code,
		Address: entity.Address{
			Street: locationM.Street,
			City:   locationM.City,
			State:  locationM.State,
			Zip:    locationM.Zip,
		},
		IsActive:  locationM.IsActive,
		CreatedAt: locationM.CreatedAt,
		UpdatedAt: locationM.UpdatedAt,
	}
}

func fromLocationDomain(location *entity.Location) *model.LocationModel {
	return &model.LocationModel{
		ID:         location.ID,
		DistrictID: location.DistrictID,
		Name:       location.Name,
		Code:       location.Code,
		Street:     location.Address.Street,
		City:       location.Address.City,
		State:      location.Address.State,
		Zip:        location.Address.Zip,
		IsActive:   location.IsActive,
	}
}
