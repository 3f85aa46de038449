package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "backroom/internal/delivery/context"
	"backroom/internal/domain/authz"
	"backroom/internal/domain/entity"
	domainerrors "backroom/internal/domain/errors"
	"backroom/internal/domain/repository"
	"backroom/internal/domain/service"
	"backroom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager  repository.TransactionManager
	authorizer *authz.Authorizer
	orderRepo  repository.OrderRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Authorizer *authz.Authorizer
	OrderRepo  repository.OrderRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:  params.TxManager,
		authorizer: params.Authorizer,
		orderRepo:  params.OrderRepo,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places a pending replenishment order for the location.
func (srv *orderService) CreateOrder(ctx context.Context, principal *entity.Principal, locationID int64, input *usecase.CreateOrderInput) (*usecase.OrderView, error) {
	if err := srv.authorizer.CanAccessLocation(ctx, principal, locationID); err != nil {
		return nil, err
	}

	if input == nil || len(input.Lines) == 0 {
		return nil, errors.Wrap(domainerrors.ErrOrderEmpty, "order must contain at least one line")
	}

	srv.log(ctx).Info("Creating order", slog.Int64("locationID", locationID), slog.Int("lines", len(input.Lines)))

	var (
		order *entity.Order
		lines []*repository.OrderLineView
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.NewLocationRepository()
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		if _, err := locationRepo.FindByID(ctx, locationID); err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return errors.Wrap(domainerrors.ErrLocationNotFound, "location not found")
			}

			return errors.Wrap(err, "failed to find location")
		}

		if err := srv.checkProductsExist(ctx, productRepo, input.Lines); err != nil {
			return err
		}

		order = entity.NewOrder(locationID)
		for _, line := range input.Lines {
			if err := order.AddLine(line.ProductID, line.Quantity, line.UnitPriceAtTime); err != nil {
				if errors.Is(err, entity.ErrQuantityNotPositive) {
					return domainerrors.ErrInvalidQuantity.WrapMessage(
						fmt.Sprintf("product %d", line.ProductID))
				}

				return errors.Wrap(err, "failed to add order line")
			}
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		var linesErr error
		lines, linesErr = orderRepo.LinesWithProducts(ctx, order.ID)

		return errors.Wrap(linesErr, "failed to load order lines")
	})

	if err != nil {
		srv.log(ctx).Warn("Order creation failed", slog.Int64("locationID", locationID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created", slog.Int64("orderID", order.ID), slog.Int64("locationID", locationID))

	return orderView(order, lines), nil
}

// checkProductsExist verifies every referenced product, reporting all
// missing IDs at once rather than failing on the first.
func (srv *orderService) checkProductsExist(ctx context.Context, productRepo repository.ProductRepository, lines []*usecase.OrderLineInput) error {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	existing, err := productRepo.FilterExisting(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to check product existence")
	}

	known := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}

	var missing []int64
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		return domainerrors.ErrProductNotFound.WrapMessage(
			fmt.Sprintf("unknown product ids: %v", missing))
	}

	return nil
}

// ListOrders returns the location's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, principal *entity.Principal, locationID int64) ([]*usecase.OrderView, error) {
	if err := srv.authorizer.CanAccessLocation(ctx, principal, locationID); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListByLocation(ctx, locationID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Int64("locationID", locationID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	views := make([]*usecase.OrderView, 0, len(orders))
	for _, order := range orders {
		lines, err := srv.orderRepo.LinesWithProducts(ctx, order.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load order lines")
		}

		views = append(views, orderView(order, lines))
	}

	return views, nil
}

// GetOrder returns one order after verifying it belongs to the location.
func (srv *orderService) GetOrder(ctx context.Context, principal *entity.Principal, locationID, orderID int64) (*usecase.OrderView, error) {
	if err := srv.authorizer.CanAccessLocation(ctx, principal, locationID); err != nil {
		return nil, err
	}

	order, err := srv.findLocationOrder(ctx, srv.orderRepo, locationID, orderID)
	if err != nil {
		return nil, err
	}

	lines, err := srv.orderRepo.LinesWithProducts(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order lines")
	}

	return orderView(order, lines), nil
}

// FulfillOrder transitions a pending order to fulfilled and receives each
// line's quantity into the location's stock ledger in the same transaction.
func (srv *orderService) FulfillOrder(ctx context.Context, principal *entity.Principal, locationID, orderID int64) (*usecase.OrderView, error) {
	if err := srv.authorizer.CanAccessLocation(ctx, principal, locationID); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Fulfilling order", slog.Int64("orderID", orderID), slog.Int64("locationID", locationID))

	var (
		order    *entity.Order
		lines    []*repository.OrderLineView
		received []*entity.LocationStock
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		stockRepo := repoFactory.NewStockRepository()

		var findErr error
		order, findErr = srv.findLocationOrder(ctx, orderRepo, locationID, orderID)
		if findErr != nil {
			return findErr
		}

		if err := order.MarkFulfilled(); err != nil {
			return domainerrors.ErrOrderStateConflict.WrapMessage(
				fmt.Sprintf("order %d is %s and cannot be fulfilled", order.ID, order.Status))
		}

		for _, line := range order.Lines {
			stock, err := srv.receiveLine(ctx, stockRepo, locationID, line)
			if err != nil {
				return err
			}
			received = append(received, stock)
		}

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}

		var linesErr error
		lines, linesErr = orderRepo.LinesWithProducts(ctx, order.ID)

		return errors.Wrap(linesErr, "failed to load order lines")
	})

	if err != nil {
		srv.log(ctx).Warn("Order fulfillment failed", slog.Int64("orderID", orderID), slog.Any("error", err))

		return nil, err
	}

	srv.publishReceiptEvents(ctx, received, lines)

	srv.log(ctx).Info("Order fulfilled", slog.Int64("orderID", orderID), slog.Int64("locationID", locationID))

	return orderView(order, lines), nil
}

// receiveLine adds one fulfilled line's quantity to the ledger, creating
// the stock row on first receipt.
func (srv *orderService) receiveLine(ctx context.Context, stockRepo repository.StockRepository, locationID int64, line *entity.OrderLine) (*entity.LocationStock, error) {
	stock, err := stockRepo.FindForUpdate(ctx, locationID, line.ProductID)
	if errors.Is(err, repository.ErrStockNotFound) {
		stock, err = entity.NewLocationStock(locationID, line.ProductID, line.Quantity)
		if err != nil {
			return nil, errors.Wrap(err, "failed to initialize stock row")
		}

		return stock, errors.Wrap(stockRepo.Create(ctx, stock), "failed to create stock row")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock stock row")
	}

	if err := stock.Adjust(line.Quantity); err != nil {
		return nil, errors.Wrap(err, "failed to receive order line")
	}

	return stock, errors.Wrap(stockRepo.Update(ctx, stock), "failed to update stock row")
}

// publishReceiptEvents emits a stock.adjusted event per received line.
// Publish failures are logged and never fail the request.
func (srv *orderService) publishReceiptEvents(ctx context.Context, received []*entity.LocationStock, lines []*repository.OrderLineView) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	skus := make(map[int64]string, len(lines))
	deltas := make(map[int64]int64, len(lines))
	for _, line := range lines {
		skus[line.ProductID] = line.SKU
		deltas[line.ProductID] = line.Quantity
	}

	for _, stock := range received {
		event := &service.StockEvent{
			RequestID:      requestID,
			EventType:      service.StockEventAdjusted,
			LocationID:     stock.LocationID,
			ProductID:      stock.ProductID,
			SKU:            skus[stock.ProductID],
			Delta:          deltas[stock.ProductID],
			QuantityOnHand: stock.QuantityOnHand,
			ReorderPoint:   stock.ReorderPoint,
		}

		if err := srv.publisher.PublishStockEvent(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to publish stock event", slog.String("eventType", event.EventType), slog.Any("error", err))
		}
	}
}

// CancelOrder cancels a pending order. Cancelling an already cancelled
// order succeeds without change; fulfilled orders cannot be cancelled.
func (srv *orderService) CancelOrder(ctx context.Context, principal *entity.Principal, locationID, orderID int64) (*usecase.OrderView, error) {
	if err := srv.authorizer.CanAccessLocation(ctx, principal, locationID); err != nil {
		return nil, err
	}

	var (
		order *entity.Order
		lines []*repository.OrderLineView
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		var findErr error
		order, findErr = srv.findLocationOrder(ctx, orderRepo, locationID, orderID)
		if findErr != nil {
			return findErr
		}

		alreadyCancelled := order.Status == entity.OrderStatusCancelled

		if err := order.Cancel(); err != nil {
			return domainerrors.ErrOrderStateConflict.WrapMessage(
				fmt.Sprintf("order %d is %s and cannot be cancelled", order.ID, order.Status))
		}

		if !alreadyCancelled {
			if err := orderRepo.Update(ctx, order); err != nil {
				return errors.Wrap(err, "failed to update order")
			}
		}

		var linesErr error
		lines, linesErr = orderRepo.LinesWithProducts(ctx, order.ID)

		return errors.Wrap(linesErr, "failed to load order lines")
	})

	if err != nil {
		srv.log(ctx).Warn("Order cancellation failed", slog.Int64("orderID", orderID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order cancelled", slog.Int64("orderID", orderID), slog.Int64("locationID", locationID))

	return orderView(order, lines), nil
}

// findLocationOrder loads an order and verifies it belongs to the
// location, reporting foreign orders as not found rather than forbidden.
func (srv *orderService) findLocationOrder(ctx context.Context, orderRepo repository.OrderRepository, locationID, orderID int64) (*entity.Order, error) {
	order, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.LocationID != locationID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order does not belong to location")
	}

	return order, nil
}

func orderView(order *entity.Order, lines []*repository.OrderLineView) *usecase.OrderView {
	lineViews := make([]*usecase.OrderLineView, 0, len(lines))
	for _, line := range lines {
		lineViews = append(lineViews, &usecase.OrderLineView{
			ProductID:       line.ProductID,
			SKU:             line.SKU,
			ProductName:     line.ProductName,
			Quantity:        line.Quantity,
			UnitPriceAtTime: line.UnitPriceAtTime,
		})
	}

	return &usecase.OrderView{
		ID:         order.ID,
		LocationID: order.LocationID,
		Status:     string(order.Status),
		Lines:      lineViews,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}
