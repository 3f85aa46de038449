package authz

import (
	"testing"

	"backroom/internal/domain/entity"
	domainerrors "backroom/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScope(t *testing.T) {
	tests := []struct {
		name       string
		role       entity.Role
		districtID *int64
		locationID *int64
		wantOk     bool
	}{
		{name: "admin unscoped", role: entity.RoleAdmin, wantOk: true},
		{name: "admin with district", role: entity.RoleAdmin, districtID: int64Ptr(1)},
		{name: "admin with location", role: entity.RoleAdmin, locationID: int64Ptr(1)},
		{name: "district manager with district", role: entity.RoleDistrictManager, districtID: int64Ptr(3), wantOk: true},
		{name: "district manager without district", role: entity.RoleDistrictManager},
		{name: "district manager with zero district", role: entity.RoleDistrictManager, districtID: int64Ptr(0)},
		{name: "district manager with negative district", role: entity.RoleDistrictManager, districtID: int64Ptr(-4)},
		{name: "district manager with location", role: entity.RoleDistrictManager, districtID: int64Ptr(3), locationID: int64Ptr(7)},
		{name: "store manager fully scoped", role: entity.RoleStoreManager, districtID: int64Ptr(3), locationID: int64Ptr(5), wantOk: true},
		{name: "store manager without district", role: entity.RoleStoreManager, locationID: int64Ptr(5)},
		{name: "store manager without location", role: entity.RoleStoreManager, districtID: int64Ptr(3)},
		{name: "store manager with zero location", role: entity.RoleStoreManager, districtID: int64Ptr(3), locationID: int64Ptr(0)},
		{name: "unsupported role", role: entity.Role("Clerk")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScope(tt.role, tt.districtID, tt.locationID)
			if tt.wantOk {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidScope)
			}
		})
	}
}

func TestResolveScope(t *testing.T) {
	t.Run("admin wins over other roles", func(t *testing.T) {
		principal := &entity.Principal{
			Roles:      entity.Roles{entity.RoleStoreManager, entity.RoleAdmin},
			DistrictID: int64Ptr(3),
			LocationID: int64Ptr(5),
		}

		scope, ok := ResolveScope(principal)
		require.True(t, ok)
		assert.Equal(t, entity.RoleAdmin, scope.Role)
		assert.Nil(t, scope.DistrictID)
		assert.Nil(t, scope.LocationID)
	})

	t.Run("district manager before store manager", func(t *testing.T) {
		principal := &entity.Principal{
			Roles:      entity.Roles{entity.RoleStoreManager, entity.RoleDistrictManager},
			DistrictID: int64Ptr(3),
			LocationID: int64Ptr(5),
		}

		scope, ok := ResolveScope(principal)
		require.True(t, ok)
		assert.Equal(t, entity.RoleDistrictManager, scope.Role)
		require.NotNil(t, scope.DistrictID)
		assert.EqualValues(t, 3, *scope.DistrictID)
		assert.Nil(t, scope.LocationID)
	})

	t.Run("store manager keeps both claims", func(t *testing.T) {
		principal := &entity.Principal{
			Roles:      entity.Roles{entity.RoleStoreManager},
			DistrictID: int64Ptr(3),
			LocationID: int64Ptr(5),
		}

		scope, ok := ResolveScope(principal)
		require.True(t, ok)
		assert.Equal(t, entity.RoleStoreManager, scope.Role)
		require.NotNil(t, scope.LocationID)
		assert.EqualValues(t, 5, *scope.LocationID)
	})

	t.Run("no recognized role", func(t *testing.T) {
		_, ok := ResolveScope(&entity.Principal{})
		assert.False(t, ok)
	})
}
