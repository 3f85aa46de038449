package authz

import (
	"context"
	"testing"

	"backroom/internal/domain/entity"
	domainerrors "backroom/internal/domain/errors"
	"backroom/internal/domain/repository"
	mockRepo "backroom/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestAuthorizer_CanAccessLocation_AdminAlwaysAllowed(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	authorizer := NewAuthorizer(mockLocationRepo)

	principal := &entity.Principal{Roles: entity.Roles{entity.RoleAdmin}}

	err := authorizer.CanAccessLocation(context.Background(), principal, 42)
	require.NoError(t, err)
}

func TestAuthorizer_CanAccessLocation_StoreManager(t *testing.T) {
	tests := []struct {
		name       string
		locationID *int64
		target     int64
		wantAllow  bool
	}{
		{name: "matching location", locationID: int64Ptr(7), target: 7, wantAllow: true},
		{name: "different location", locationID: int64Ptr(7), target: 8, wantAllow: false},
		{name: "missing location claim", locationID: nil, target: 7, wantAllow: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)
			authorizer := NewAuthorizer(mockLocationRepo)

			principal := &entity.Principal{
				Roles:      entity.Roles{entity.RoleStoreManager},
				DistrictID: int64Ptr(3),
				LocationID: tt.locationID,
			}

			err := authorizer.CanAccessLocation(context.Background(), principal, tt.target)
			if tt.wantAllow {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrScopeDenied)
			}
		})
	}
}

func TestAuthorizer_CanAccessLocation_DistrictManager(t *testing.T) {
	ctx := context.Background()

	t.Run("location in own district", func(t *testing.T) {
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)
		authorizer := NewAuthorizer(mockLocationRepo)

		mockLocationRepo.EXPECT().DistrictOf(ctx, int64(42)).Return(int64(3), nil)

		principal := &entity.Principal{
			Roles:      entity.Roles{entity.RoleDistrictManager},
			DistrictID: int64Ptr(3),
		}

		err := authorizer.CanAccessLocation(ctx, principal, 42)
		require.NoError(t, err)
	})

	t.Run("location in another district", func(t *testing.T) {
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)
		authorizer := NewAuthorizer(mockLocationRepo)

		mockLocationRepo.EXPECT().DistrictOf(ctx, int64(42)).Return(int64(9), nil)

		principal := &entity.Principal{
			Roles:      entity.Roles{entity.RoleDistrictManager},
			DistrictID: int64Ptr(3),
		}

		err := authorizer.CanAccessLocation(ctx, principal, 42)
		assert.ErrorIs(t, err, domainerrors.ErrScopeDenied)
	})

	t.Run("location does not exist", func(t *testing.T) {
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)
		authorizer := NewAuthorizer(mockLocationRepo)

		mockLocationRepo.EXPECT().
			DistrictOf(ctx, int64(42)).
			Return(int64(0), repository.ErrLocationNotFound)

		principal := &entity.Principal{
			Roles:      entity.Roles{entity.RoleDistrictManager},
			DistrictID: int64Ptr(3),
		}

		err := authorizer.CanAccessLocation(ctx, principal, 42)
		assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
		assert.NotErrorIs(t, err, domainerrors.ErrScopeDenied)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)
		authorizer := NewAuthorizer(mockLocationRepo)

		dbErr := errors.New("connection refused")
		mockLocationRepo.EXPECT().DistrictOf(ctx, int64(42)).Return(int64(0), dbErr)

		principal := &entity.Principal{
			Roles:      entity.Roles{entity.RoleDistrictManager},
			DistrictID: int64Ptr(3),
		}

		err := authorizer.CanAccessLocation(ctx, principal, 42)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("missing district claim denied without lookup", func(t *testing.T) {
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)
		authorizer := NewAuthorizer(mockLocationRepo)

		principal := &entity.Principal{Roles: entity.Roles{entity.RoleDistrictManager}}

		err := authorizer.CanAccessLocation(ctx, principal, 42)
		assert.ErrorIs(t, err, domainerrors.ErrScopeDenied)
	})
}

func TestAuthorizer_CanAccessLocation_NoRecognizedRole(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	authorizer := NewAuthorizer(mockLocationRepo)

	err := authorizer.CanAccessLocation(context.Background(), &entity.Principal{}, 42)
	assert.ErrorIs(t, err, domainerrors.ErrScopeDenied)

	err = authorizer.CanAccessLocation(context.Background(), nil, 42)
	assert.ErrorIs(t, err, domainerrors.ErrScopeDenied)
}

func TestAuthorizer_CanAccessDistrict(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	authorizer := NewAuthorizer(mockLocationRepo)

	admin := &entity.Principal{Roles: entity.Roles{entity.RoleAdmin}}
	require.NoError(t, authorizer.CanAccessDistrict(admin, 5))

	dm := &entity.Principal{
		Roles:      entity.Roles{entity.RoleDistrictManager},
		DistrictID: int64Ptr(5),
	}
	require.NoError(t, authorizer.CanAccessDistrict(dm, 5))
	assert.ErrorIs(t, authorizer.CanAccessDistrict(dm, 6), domainerrors.ErrScopeDenied)

	sm := &entity.Principal{
		Roles:      entity.Roles{entity.RoleStoreManager},
		DistrictID: int64Ptr(5),
		LocationID: int64Ptr(1),
	}
	assert.ErrorIs(t, authorizer.CanAccessDistrict(sm, 5), domainerrors.ErrScopeDenied)
}
