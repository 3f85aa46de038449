package impl

import (
	"context"
	"testing"

	"backroom/internal/domain/authz"
	"backroom/internal/domain/entity"
	domainerrors "backroom/internal/domain/errors"
	"backroom/internal/domain/repository"
	mockRepo "backroom/internal/mocks/repository"
	mockService "backroom/internal/mocks/service"
	"backroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locationServiceFixture struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
	productRepo  *mockRepo.MockProductRepository
	qrService    *mockService.MockQRCodeService
}

func newTestLocationService(t *testing.T) *locationServiceFixture {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	qrService := mockService.NewMockQRCodeService(t)

	service := NewLocationService(LocationServiceParams{
		Authorizer:   authz.NewAuthorizer(locationRepo),
		LocationRepo: locationRepo,
		ProductRepo:  productRepo,
		QRService:    qrService,
		Logger:       newDiscardLogger(),
	})

	return &locationServiceFixture{
		service:      service,
		locationRepo: locationRepo,
		productRepo:  productRepo,
		qrService:    qrService,
	}
}

func adminPrincipal() *entity.Principal {
	return &entity.Principal{UserID: uuid.New(), Email: "admin@example.com", Roles: entity.Roles{entity.RoleAdmin}}
}

func storeManagerPrincipal(districtID, locationID int64) *entity.Principal {
	return &entity.Principal{
		UserID:     uuid.New(),
		Email:      "sm@example.com",
		Roles:      entity.Roles{entity.RoleStoreManager},
		DistrictID: int64Ptr(districtID),
		LocationID: int64Ptr(locationID),
	}
}

func districtManagerPrincipal(districtID int64) *entity.Principal {
	return &entity.Principal{
		UserID:     uuid.New(),
		Email:      "dm@example.com",
		Roles:      entity.Roles{entity.RoleDistrictManager},
		DistrictID: int64Ptr(districtID),
	}
}

func TestLocationService_GetLocation_Admin(t *testing.T) {
	fx := newTestLocationService(t)

	ctx := context.Background()
	location := &entity.Location{ID: 5, DistrictID: 3, Name: "Union Square", IsActive: true}

	fx.locationRepo.EXPECT().FindByID(ctx, int64(5)).Return(location, nil)

	view, err := fx.service.GetLocation(ctx, adminPrincipal(), 5)

	require.NoError(t, err)
	assert.EqualValues(t, 5, view.ID)
	assert.EqualValues(t, 3, view.DistrictID)
}

func TestLocationService_GetLocation_StoreManagerOutOfScope(t *testing.T) {
	fx := newTestLocationService(t)

	view, err := fx.service.GetLocation(context.Background(), storeManagerPrincipal(3, 5), 7)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrScopeDenied))
}

func TestLocationService_GetLocation_DistrictManagerCrossDistrict(t *testing.T) {
	fx := newTestLocationService(t)

	ctx := context.Background()

	// The location lives in district 4, the manager covers district 3.
	fx.locationRepo.EXPECT().DistrictOf(ctx, int64(7)).Return(int64(4), nil)

	view, err := fx.service.GetLocation(ctx, districtManagerPrincipal(3), 7)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrScopeDenied))
}

func TestLocationService_GetLocation_NotFound(t *testing.T) {
	fx := newTestLocationService(t)

	ctx := context.Background()

	fx.locationRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrLocationNotFound)

	view, err := fx.service.GetLocation(ctx, adminPrincipal(), 99)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}

func TestLocationService_ListByDistrict(t *testing.T) {
	t.Run("district manager lists own district", func(t *testing.T) {
		fx := newTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().FindDistrictByID(ctx, int64(3)).Return(&entity.District{ID: 3, Name: "Northeast"}, nil)
		fx.locationRepo.EXPECT().ListByDistrict(ctx, int64(3)).Return([]*entity.Location{
			{ID: 5, DistrictID: 3, Name: "Union Square"},
			{ID: 6, DistrictID: 3, Name: "Back Bay"},
		}, nil)

		views, err := fx.service.ListByDistrict(ctx, districtManagerPrincipal(3), 3)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "Union Square", views[0].Name)
	})

	t.Run("district manager denied foreign district", func(t *testing.T) {
		fx := newTestLocationService(t)

		views, err := fx.service.ListByDistrict(context.Background(), districtManagerPrincipal(3), 4)

		assert.Nil(t, views)
		assert.True(t, errors.Is(err, domainerrors.ErrScopeDenied))
	})

	t.Run("store manager denied", func(t *testing.T) {
		fx := newTestLocationService(t)

		views, err := fx.service.ListByDistrict(context.Background(), storeManagerPrincipal(3, 5), 3)

		assert.Nil(t, views)
		assert.True(t, errors.Is(err, domainerrors.ErrScopeDenied))
	})

	t.Run("unknown district", func(t *testing.T) {
		fx := newTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().FindDistrictByID(ctx, int64(99)).Return(nil, repository.ErrDistrictNotFound)

		views, err := fx.service.ListByDistrict(ctx, adminPrincipal(), 99)

		assert.Nil(t, views)
		assert.True(t, errors.Is(err, domainerrors.ErrDistrictNotFound))
	})
}

func TestLocationService_LocationQRCode(t *testing.T) {
	fx := newTestLocationService(t)

	ctx := context.Background()
	location := &entity.Location{ID: 5, DistrictID: 3, Name: "Union Square"}
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.locationRepo.EXPECT().FindByID(ctx, int64(5)).Return(location, nil)
	fx.qrService.EXPECT().GenerateLocationQR(int64(5)).Return(png, nil)

	got, err := fx.service.LocationQRCode(ctx, adminPrincipal(), 5)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestLocationService_ListProducts(t *testing.T) {
	fx := newTestLocationService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: 9, SKU: "WID-001", Name: "Widget", IsActive: true},
		{ID: 10, SKU: "GAD-002", Name: "Gadget", IsActive: true},
	}

	fx.productRepo.EXPECT().List(ctx).Return(products, nil)

	views, err := fx.service.ListProducts(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "WID-001", views[0].SKU)
}
