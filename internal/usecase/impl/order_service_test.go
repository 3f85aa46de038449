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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	service      usecase.OrderUsecase
	txManager    *mockRepo.MockTransactionManager
	locationRepo *mockRepo.MockLocationRepository
	orderRepo    *mockRepo.MockOrderRepository
	publisher    *mockService.MockEventPublisher
}

func newTestOrderService(t *testing.T) *orderServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager:  txManager,
		Authorizer: authz.NewAuthorizer(locationRepo),
		OrderRepo:  orderRepo,
		Publisher:  publisher,
		Logger:     newDiscardLogger(),
	})

	return &orderServiceFixture{
		service:      svc,
		txManager:    txManager,
		locationRepo: locationRepo,
		orderRepo:    orderRepo,
		publisher:    publisher,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := newTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Lines: []*usecase.OrderLineInput{
			{ProductID: 9, Quantity: 2, UnitPriceAtTime: float64Ptr(4.50)},
			{ProductID: 9, Quantity: 3},
			{ProductID: 10, Quantity: 1},
		},
	}
	lineViews := []*repository.OrderLineView{
		{ProductID: 9, SKU: "WID-001", ProductName: "Widget", Quantity: 5, UnitPriceAtTime: float64Ptr(4.50)},
		{ProductID: 10, SKU: "GAD-002", ProductName: "Gadget", Quantity: 1},
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewLocationRepository().Return(locationRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		locationRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Location{ID: 5, DistrictID: 3}, nil)
		productRepo.EXPECT().FilterExisting(ctx, []int64{9, 9, 10}).Return([]int64{9, 10}, nil)
		orderRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				// Duplicate product lines must have been merged before persisting.
				require.Len(t, order.Lines, 2)
				assert.EqualValues(t, 5, order.Lines[0].Quantity)
				order.ID = 42
			}).
			Return(nil)
		orderRepo.EXPECT().LinesWithProducts(ctx, int64(42)).Return(lineViews, nil)
	})

	view, err := fx.service.CreateOrder(ctx, storeManagerPrincipal(3, 5), 5, input)

	require.NoError(t, err)
	assert.EqualValues(t, 42, view.ID)
	assert.Equal(t, string(entity.OrderStatusPending), view.Status)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, "WID-001", view.Lines[0].SKU)
}

func TestOrderService_CreateOrder_Empty(t *testing.T) {
	fx := newTestOrderService(t)

	view, err := fx.service.CreateOrder(context.Background(), adminPrincipal(), 5, &usecase.CreateOrderInput{})

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderEmpty))
}

func TestOrderService_CreateOrder_UnknownProducts(t *testing.T) {
	fx := newTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Lines: []*usecase.OrderLineInput{
			{ProductID: 9, Quantity: 2},
			{ProductID: 98, Quantity: 1},
			{ProductID: 99, Quantity: 1},
		},
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewLocationRepository().Return(locationRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		locationRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Location{ID: 5, DistrictID: 3}, nil)
		productRepo.EXPECT().FilterExisting(ctx, []int64{9, 98, 99}).Return([]int64{9}, nil)
	})

	view, err := fx.service.CreateOrder(ctx, adminPrincipal(), 5, input)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	assert.Contains(t, err.Error(), "98")
	assert.Contains(t, err.Error(), "99")
}

func TestOrderService_GetOrder_WrongLocation(t *testing.T) {
	fx := newTestOrderService(t)

	ctx := context.Background()
	foreign := entity.NewOrder(7)
	foreign.ID = 42

	fx.orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(foreign, nil)

	view, err := fx.service.GetOrder(ctx, adminPrincipal(), 5, 42)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_FulfillOrder_Success(t *testing.T) {
	fx := newTestOrderService(t)

	ctx := context.Background()
	order := entity.NewOrder(5)
	order.ID = 42
	require.NoError(t, order.AddLine(9, 5, nil))
	require.NoError(t, order.AddLine(10, 2, nil))

	existingStock, err := entity.NewLocationStock(5, 9, 3)
	require.NoError(t, err)

	lineViews := []*repository.OrderLineView{
		{ProductID: 9, SKU: "WID-001", ProductName: "Widget", Quantity: 5},
		{ProductID: 10, SKU: "GAD-002", ProductName: "Gadget", Quantity: 2},
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		stockRepo := mockRepo.NewMockStockRepository(t)

		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewStockRepository().Return(stockRepo)

		orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)

		// First line tops up an existing row, second line creates one.
		stockRepo.EXPECT().FindForUpdate(ctx, int64(5), int64(9)).Return(existingStock, nil)
		stockRepo.EXPECT().Update(ctx, existingStock).Return(nil)
		stockRepo.EXPECT().FindForUpdate(ctx, int64(5), int64(10)).Return(nil, repository.ErrStockNotFound)
		stockRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.LocationStock")).
			Run(func(ctx context.Context, created *entity.LocationStock) {
				assert.EqualValues(t, 2, created.QuantityOnHand)
			}).
			Return(nil)

		orderRepo.EXPECT().Update(ctx, order).Return(nil)
		orderRepo.EXPECT().LinesWithProducts(ctx, int64(42)).Return(lineViews, nil)
	})

	fx.publisher.EXPECT().
		PublishStockEvent(ctx, mock.AnythingOfType("*service.StockEvent")).
		Return(nil).
		Times(2)

	view, err := fx.service.FulfillOrder(ctx, storeManagerPrincipal(3, 5), 5, 42)

	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusFulfilled), view.Status)
	assert.EqualValues(t, 8, existingStock.QuantityOnHand)
}

func TestOrderService_FulfillOrder_AlreadyCancelled(t *testing.T) {
	fx := newTestOrderService(t)

	ctx := context.Background()
	order := entity.NewOrder(5)
	order.ID = 42
	require.NoError(t, order.Cancel())

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		stockRepo := mockRepo.NewMockStockRepository(t)

		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewStockRepository().Return(stockRepo)

		orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)
	})

	view, err := fx.service.FulfillOrder(ctx, adminPrincipal(), 5, 42)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderStateConflict))
}

func TestOrderService_CancelOrder(t *testing.T) {
	t.Run("pending order cancels", func(t *testing.T) {
		fx := newTestOrderService(t)
		ctx := context.Background()
		order := entity.NewOrder(5)
		order.ID = 42

		onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)
			orderRepo.EXPECT().Update(ctx, order).Return(nil)
			orderRepo.EXPECT().LinesWithProducts(ctx, int64(42)).Return(nil, nil)
		})

		view, err := fx.service.CancelOrder(ctx, storeManagerPrincipal(3, 5), 5, 42)

		require.NoError(t, err)
		assert.Equal(t, string(entity.OrderStatusCancelled), view.Status)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		fx := newTestOrderService(t)
		ctx := context.Background()
		order := entity.NewOrder(5)
		order.ID = 42
		require.NoError(t, order.Cancel())

		onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)
			orderRepo.EXPECT().LinesWithProducts(ctx, int64(42)).Return(nil, nil)
		})

		view, err := fx.service.CancelOrder(ctx, adminPrincipal(), 5, 42)

		require.NoError(t, err)
		assert.Equal(t, string(entity.OrderStatusCancelled), view.Status)
	})

	t.Run("fulfilled order cannot cancel", func(t *testing.T) {
		fx := newTestOrderService(t)
		ctx := context.Background()
		order := entity.NewOrder(5)
		order.ID = 42
		require.NoError(t, order.MarkFulfilled())

		onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)
		})

		view, err := fx.service.CancelOrder(ctx, adminPrincipal(), 5, 42)

		assert.Nil(t, view)
		assert.True(t, errors.Is(err, domainerrors.ErrOrderStateConflict))
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := newTestOrderService(t)

	ctx := context.Background()
	newer := entity.NewOrder(5)
	newer.ID = 43
	older := entity.NewOrder(5)
	older.ID = 42

	fx.orderRepo.EXPECT().ListByLocation(ctx, int64(5)).Return([]*entity.Order{newer, older}, nil)
	fx.orderRepo.EXPECT().LinesWithProducts(ctx, int64(43)).Return(nil, nil)
	fx.orderRepo.EXPECT().LinesWithProducts(ctx, int64(42)).Return(nil, nil)

	views, err := fx.service.ListOrders(ctx, storeManagerPrincipal(3, 5), 5)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.EqualValues(t, 43, views[0].ID)
}
