package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestNewOrder_StartsPendingWithoutLines(t *testing.T) {
	order := NewOrder(1)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Empty(t, order.Lines)
}

func TestOrder_AddLine_MergesDuplicateProducts(t *testing.T) {
	order := NewOrder(1)

	require.NoError(t, order.AddLine(9, 2, float64Ptr(4.50)))
	require.NoError(t, order.AddLine(9, 3, nil))

	require.Len(t, order.Lines, 1)
	assert.EqualValues(t, 5, order.Lines[0].Quantity)
	require.NotNil(t, order.Lines[0].UnitPriceAtTime)
	assert.Equal(t, 4.50, *order.Lines[0].UnitPriceAtTime)
}

func TestOrder_AddLine_DistinctProducts(t *testing.T) {
	order := NewOrder(1)

	require.NoError(t, order.AddLine(9, 2, nil))
	require.NoError(t, order.AddLine(10, 1, nil))

	require.Len(t, order.Lines, 2)
}

func TestOrder_AddLine_RejectsNonPositiveQuantity(t *testing.T) {
	order := NewOrder(1)

	assert.ErrorIs(t, order.AddLine(9, 0, nil), ErrQuantityNotPositive)
	assert.ErrorIs(t, order.AddLine(9, -2, nil), ErrQuantityNotPositive)
	assert.Empty(t, order.Lines)
}

func TestOrder_AddLine_RejectsNonPendingOrder(t *testing.T) {
	order := NewOrder(1)
	require.NoError(t, order.MarkFulfilled())

	assert.ErrorIs(t, order.AddLine(9, 1, nil), ErrOrderNotPending)
}

func TestOrder_MarkFulfilled(t *testing.T) {
	order := NewOrder(1)

	require.NoError(t, order.MarkFulfilled())
	assert.Equal(t, OrderStatusFulfilled, order.Status)

	assert.ErrorIs(t, order.MarkFulfilled(), ErrOrderNotFulfillable)
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order cancels", func(t *testing.T) {
		order := NewOrder(1)
		require.NoError(t, order.Cancel())
		assert.Equal(t, OrderStatusCancelled, order.Status)
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		order := NewOrder(1)
		require.NoError(t, order.Cancel())
		require.NoError(t, order.Cancel())
		assert.Equal(t, OrderStatusCancelled, order.Status)
	})

	t.Run("fulfilled order cannot cancel", func(t *testing.T) {
		order := NewOrder(1)
		require.NoError(t, order.MarkFulfilled())

		assert.ErrorIs(t, order.Cancel(), ErrOrderFulfilled)
		assert.Equal(t, OrderStatusFulfilled, order.Status)
	})
}

func TestRoles_Primary(t *testing.T) {
	tests := []struct {
		name     string
		roles    Roles
		want     Role
		wantNone bool
	}{
		{name: "admin wins", roles: Roles{RoleStoreManager, RoleAdmin}, want: RoleAdmin},
		{name: "district manager over store manager", roles: Roles{RoleStoreManager, RoleDistrictManager}, want: RoleDistrictManager},
		{name: "single role", roles: Roles{RoleStoreManager}, want: RoleStoreManager},
		{name: "empty", roles: Roles{}, wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.roles.Primary()
			if tt.wantNone {
				assert.False(t, ok)

				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRolesFromStrings_DropsUnknownRoles(t *testing.T) {
	roles := RolesFromStrings([]string{"Admin", "Clerk", "StoreManager", ""})

	assert.Equal(t, Roles{RoleAdmin, RoleStoreManager}, roles)
}
