package impl

import (
	"context"
	"testing"
	"time"

	"backroom/internal/domain/authz"
	"backroom/internal/domain/entity"
	domainerrors "backroom/internal/domain/errors"
	"backroom/internal/domain/repository"
	"backroom/internal/domain/service"
	mockRepo "backroom/internal/mocks/repository"
	mockService "backroom/internal/mocks/service"
	"backroom/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inventoryServiceFixture struct {
	service      usecase.InventoryUsecase
	txManager    *mockRepo.MockTransactionManager
	locationRepo *mockRepo.MockLocationRepository
	stockRepo    *mockRepo.MockStockRepository
	publisher    *mockService.MockEventPublisher
}

func newTestInventoryService(t *testing.T) *inventoryServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	stockRepo := mockRepo.NewMockStockRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewInventoryService(InventoryServiceParams{
		TxManager:  txManager,
		Authorizer: authz.NewAuthorizer(locationRepo),
		StockRepo:  stockRepo,
		Publisher:  publisher,
		Logger:     newDiscardLogger(),
	})

	return &inventoryServiceFixture{
		service:      svc,
		txManager:    txManager,
		locationRepo: locationRepo,
		stockRepo:    stockRepo,
		publisher:    publisher,
	}
}

func TestInventoryService_ListStock(t *testing.T) {
	fx := newTestInventoryService(t)

	ctx := context.Background()
	items := []*repository.StockItem{
		{LocationID: 5, ProductID: 9, SKU: "WID-001", ProductName: "Widget", QuantityOnHand: 12, UpdatedAt: time.Now()},
	}

	fx.stockRepo.EXPECT().ListByLocation(ctx, int64(5)).Return(items, nil)

	views, err := fx.service.ListStock(ctx, storeManagerPrincipal(3, 5), 5)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "WID-001", views[0].SKU)
	assert.EqualValues(t, 12, views[0].QuantityOnHand)
}

func TestInventoryService_ListStock_ScopeDenied(t *testing.T) {
	fx := newTestInventoryService(t)

	views, err := fx.service.ListStock(context.Background(), storeManagerPrincipal(3, 5), 7)

	assert.Nil(t, views)
	assert.True(t, errors.Is(err, domainerrors.ErrScopeDenied))
}

func TestInventoryService_AdjustStock_Delta(t *testing.T) {
	fx := newTestInventoryService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 9, SKU: "WID-001", Name: "Widget"}
	stock, err := entity.NewLocationStock(5, 9, 3)
	require.NoError(t, err)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stockRepo := mockRepo.NewMockStockRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		locationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().NewStockRepository().Return(stockRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)

		productRepo.EXPECT().FindByID(ctx, int64(9)).Return(product, nil)
		stockRepo.EXPECT().FindForUpdate(ctx, int64(5), int64(9)).Return(stock, nil)
		stockRepo.EXPECT().Update(ctx, stock).Return(nil)
	})

	var published []*service.StockEvent
	fx.publisher.EXPECT().
		PublishStockEvent(ctx, mock.AnythingOfType("*service.StockEvent")).
		RunAndReturn(func(_ context.Context, event *service.StockEvent) error {
			published = append(published, event)

			return nil
		})

	view, err := fx.service.AdjustStock(ctx, storeManagerPrincipal(3, 5), 5, 9, &usecase.AdjustStockInput{Delta: int64Ptr(5)})

	require.NoError(t, err)
	assert.EqualValues(t, 8, view.QuantityOnHand)
	assert.Equal(t, "WID-001", view.SKU)

	require.Len(t, published, 1)
	assert.Equal(t, service.StockEventAdjusted, published[0].EventType)
	assert.EqualValues(t, 5, published[0].Delta)
	assert.EqualValues(t, 8, published[0].QuantityOnHand)
}

func TestInventoryService_AdjustStock_CreatesRowOnFirstTouch(t *testing.T) {
	fx := newTestInventoryService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 9, SKU: "WID-001", Name: "Widget"}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stockRepo := mockRepo.NewMockStockRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		locationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().NewStockRepository().Return(stockRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)

		productRepo.EXPECT().FindByID(ctx, int64(9)).Return(product, nil)
		stockRepo.EXPECT().FindForUpdate(ctx, int64(5), int64(9)).Return(nil, repository.ErrStockNotFound)
		locationRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Location{ID: 5, DistrictID: 3}, nil)
		stockRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.LocationStock")).
			Run(func(ctx context.Context, created *entity.LocationStock) {
				assert.EqualValues(t, 10, created.QuantityOnHand)
			}).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishStockEvent(ctx, mock.AnythingOfType("*service.StockEvent")).
		Return(nil)

	view, err := fx.service.AdjustStock(ctx, adminPrincipal(), 5, 9, &usecase.AdjustStockInput{Quantity: int64Ptr(10)})

	require.NoError(t, err)
	assert.EqualValues(t, 10, view.QuantityOnHand)
}

func TestInventoryService_AdjustStock_MissingRowWithoutCreate(t *testing.T) {
	fx := newTestInventoryService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 9, SKU: "WID-001", Name: "Widget"}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stockRepo := mockRepo.NewMockStockRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		locationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().NewStockRepository().Return(stockRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)

		productRepo.EXPECT().FindByID(ctx, int64(9)).Return(product, nil)
		stockRepo.EXPECT().FindForUpdate(ctx, int64(5), int64(9)).Return(nil, repository.ErrStockNotFound)
	})

	view, err := fx.service.AdjustStock(ctx, storeManagerPrincipal(3, 5), 5, 9, &usecase.AdjustStockInput{
		Delta:           int64Ptr(5),
		CreateIfMissing: boolPtr(false),
	})

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrStockNotFound))
}

func TestInventoryService_AdjustStock_ExplicitCreateIfMissing(t *testing.T) {
	fx := newTestInventoryService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 9, SKU: "WID-001", Name: "Widget"}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stockRepo := mockRepo.NewMockStockRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		locationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().NewStockRepository().Return(stockRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)

		productRepo.EXPECT().FindByID(ctx, int64(9)).Return(product, nil)
		stockRepo.EXPECT().FindForUpdate(ctx, int64(5), int64(9)).Return(nil, repository.ErrStockNotFound)
		locationRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Location{ID: 5, DistrictID: 3}, nil)
		stockRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.LocationStock")).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishStockEvent(ctx, mock.AnythingOfType("*service.StockEvent")).
		Return(nil)

	view, err := fx.service.AdjustStock(ctx, storeManagerPrincipal(3, 5), 5, 9, &usecase.AdjustStockInput{
		Delta:           int64Ptr(5),
		CreateIfMissing: boolPtr(true),
	})

	require.NoError(t, err)
	assert.EqualValues(t, 5, view.QuantityOnHand)
}

func TestInventoryService_AdjustStock_CreateRowFails(t *testing.T) {
	fx := newTestInventoryService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 9, SKU: "WID-001", Name: "Widget"}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stockRepo := mockRepo.NewMockStockRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		locationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().NewStockRepository().Return(stockRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)

		productRepo.EXPECT().FindByID(ctx, int64(9)).Return(product, nil)
		stockRepo.EXPECT().FindForUpdate(ctx, int64(5), int64(9)).Return(nil, repository.ErrStockNotFound)
		locationRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Location{ID: 5, DistrictID: 3}, nil)
		stockRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.LocationStock")).
			Return(domainerrors.NewDatabaseExecuteError(errors.New("insert failed"), "failed to create stock row"))
	})

	view, err := fx.service.AdjustStock(ctx, adminPrincipal(), 5, 9, &usecase.AdjustStockInput{Delta: int64Ptr(5)})

	assert.Nil(t, view)
	// An insert failure must surface as a database error, not a missing row.
	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
	assert.False(t, errors.Is(err, domainerrors.ErrStockNotFound))
}

func TestInventoryService_AdjustStock_NegativeStock(t *testing.T) {
	fx := newTestInventoryService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 9, SKU: "WID-001", Name: "Widget"}
	stock, err := entity.NewLocationStock(5, 9, 3)
	require.NoError(t, err)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stockRepo := mockRepo.NewMockStockRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		locationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().NewStockRepository().Return(stockRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)

		productRepo.EXPECT().FindByID(ctx, int64(9)).Return(product, nil)
		stockRepo.EXPECT().FindForUpdate(ctx, int64(5), int64(9)).Return(stock, nil)
	})

	view, err := fx.service.AdjustStock(ctx, storeManagerPrincipal(3, 5), 5, 9, &usecase.AdjustStockInput{Delta: int64Ptr(-5)})

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrNegativeStock))
	assert.EqualValues(t, 3, stock.QuantityOnHand, "failed adjustment must not change the row")
}

func TestInventoryService_AdjustStock_LowStockEvent(t *testing.T) {
	fx := newTestInventoryService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 9, SKU: "WID-001", Name: "Widget"}
	stock, err := entity.NewLocationStock(5, 9, 10)
	require.NoError(t, err)
	stock.SetReorder(int64Ptr(4), int64Ptr(20))

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stockRepo := mockRepo.NewMockStockRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		locationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().NewStockRepository().Return(stockRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)

		productRepo.EXPECT().FindByID(ctx, int64(9)).Return(product, nil)
		stockRepo.EXPECT().FindForUpdate(ctx, int64(5), int64(9)).Return(stock, nil)
		stockRepo.EXPECT().Update(ctx, stock).Return(nil)
	})

	var published []*service.StockEvent
	fx.publisher.EXPECT().
		PublishStockEvent(ctx, mock.AnythingOfType("*service.StockEvent")).
		RunAndReturn(func(_ context.Context, event *service.StockEvent) error {
			published = append(published, event)

			return nil
		}).
		Times(2)

	view, err := fx.service.AdjustStock(ctx, storeManagerPrincipal(3, 5), 5, 9, &usecase.AdjustStockInput{Delta: int64Ptr(-7)})

	require.NoError(t, err)
	assert.EqualValues(t, 3, view.QuantityOnHand)

	require.Len(t, published, 2)
	assert.Equal(t, service.StockEventAdjusted, published[0].EventType)
	assert.Equal(t, service.StockEventLow, published[1].EventType)
}

func TestInventoryService_AdjustStock_InvalidInput(t *testing.T) {
	fx := newTestInventoryService(t)

	t.Run("delta and quantity together", func(t *testing.T) {
		view, err := fx.service.AdjustStock(context.Background(), adminPrincipal(), 5, 9, &usecase.AdjustStockInput{
			Delta:    int64Ptr(1),
			Quantity: int64Ptr(10),
		})

		assert.Nil(t, view)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("no fields at all", func(t *testing.T) {
		view, err := fx.service.AdjustStock(context.Background(), adminPrincipal(), 5, 9, &usecase.AdjustStockInput{})

		assert.Nil(t, view)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestInventoryService_AdjustStock_ProductNotFound(t *testing.T) {
	fx := newTestInventoryService(t)

	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		stockRepo := mockRepo.NewMockStockRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		locationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().NewStockRepository().Return(stockRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)

		productRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrProductNotFound)
	})

	view, err := fx.service.AdjustStock(ctx, adminPrincipal(), 5, 99, &usecase.AdjustStockInput{Delta: int64Ptr(1)})

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
