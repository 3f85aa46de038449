package impl

import (
	"context"
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

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	txManager  repository.TransactionManager
	authorizer *authz.Authorizer
	stockRepo  repository.StockRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Authorizer *authz.Authorizer
	StockRepo  repository.StockRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		txManager:  params.TxManager,
		authorizer: params.Authorizer,
		stockRepo:  params.StockRepo,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStock returns the stock ledger of one location.
func (srv *inventoryService) ListStock(ctx context.Context, principal *entity.Principal, locationID int64) ([]*usecase.StockItemView, error) {
	if err := srv.authorizer.CanAccessLocation(ctx, principal, locationID); err != nil {
		return nil, err
	}

	items, err := srv.stockRepo.ListByLocation(ctx, locationID)
	if err != nil {
		srv.log(ctx).Error("Failed to list stock", slog.Int64("locationID", locationID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list stock")
	}

	views := make([]*usecase.StockItemView, 0, len(items))
	for _, item := range items {
		views = append(views, stockItemView(item))
	}

	return views, nil
}

// AdjustStock applies a relative delta or absolute quantity to one ledger
// row under a row lock. The row is created on first touch unless the
// request carries an explicit createIfMissing=false, which turns a missing
// row into a not-found. Events are published only after the transaction
// commits.
func (srv *inventoryService) AdjustStock(ctx context.Context, principal *entity.Principal, locationID, productID int64, input *usecase.AdjustStockInput) (*usecase.StockItemView, error) {
	if err := validateAdjustInput(input); err != nil {
		return nil, err
	}

	if err := srv.authorizer.CanAccessLocation(ctx, principal, locationID); err != nil {
		return nil, err
	}

	var (
		stock   *entity.LocationStock
		product *entity.Product
		delta   int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stockRepo := repoFactory.NewStockRepository()
		productRepo := repoFactory.NewProductRepository()
		locationRepo := repoFactory.NewLocationRepository()

		var findErr error
		product, findErr = productRepo.FindByID(ctx, productID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(findErr, "failed to find product")
		}

		stock, findErr = stockRepo.FindForUpdate(ctx, locationID, productID)
		switch {
		case errors.Is(findErr, repository.ErrStockNotFound):
			if input.CreateIfMissing != nil && !*input.CreateIfMissing {
				return errors.Wrap(domainerrors.ErrStockNotFound, "no stock row for this product at this location")
			}

			if _, err := locationRepo.FindByID(ctx, locationID); err != nil {
				if errors.Is(err, repository.ErrLocationNotFound) {
					return errors.Wrap(domainerrors.ErrLocationNotFound, "location not found")
				}

				return errors.Wrap(err, "failed to find location")
			}

			stock, findErr = entity.NewLocationStock(locationID, productID, 0)
			if findErr != nil {
				return errors.Wrap(findErr, "failed to initialize stock row")
			}

			if err := srv.applyAdjustment(stock, input, &delta); err != nil {
				return err
			}

			return errors.Wrap(stockRepo.Create(ctx, stock), "failed to create stock row")
		case findErr != nil:
			return errors.Wrap(findErr, "failed to lock stock row")
		}

		if err := srv.applyAdjustment(stock, input, &delta); err != nil {
			return err
		}

		return errors.Wrap(stockRepo.Update(ctx, stock), "failed to update stock row")
	})

	if err != nil {
		srv.log(ctx).Warn("Stock adjustment failed",
			slog.Int64("locationID", locationID),
			slog.Int64("productID", productID),
			slog.Any("error", err))

		return nil, err
	}

	srv.publishStockEvents(ctx, stock, product.SKU, delta)

	return &usecase.StockItemView{
		ProductID:       productID,
		SKU:             product.SKU,
		ProductName:     product.Name,
		QuantityOnHand:  stock.QuantityOnHand,
		ReorderPoint:    stock.ReorderPoint,
		ReorderQuantity: stock.ReorderQuantity,
		UpdatedAt:       stock.UpdatedAt,
	}, nil
}

// applyAdjustment mutates the locked row and records the effective delta.
func (srv *inventoryService) applyAdjustment(stock *entity.LocationStock, input *usecase.AdjustStockInput, delta *int64) error {
	before := stock.QuantityOnHand

	switch {
	case input.Delta != nil:
		if err := stock.Adjust(*input.Delta); err != nil {
			return errors.Wrap(domainerrors.ErrNegativeStock, "adjustment would drive quantity negative")
		}
	case input.Quantity != nil:
		if err := stock.SetQuantity(*input.Quantity); err != nil {
			return errors.Wrap(domainerrors.ErrNegativeStock, "quantity cannot be negative")
		}
	}

	if input.ReorderPoint != nil || input.ReorderQuantity != nil {
		stock.SetReorder(input.ReorderPoint, input.ReorderQuantity)
	}

	*delta = stock.QuantityOnHand - before

	return nil
}

// publishStockEvents emits the adjusted event, plus a low-stock event when
// the row sits at or below its reorder point. Publish failures are logged
// and never fail the request.
func (srv *inventoryService) publishStockEvents(ctx context.Context, stock *entity.LocationStock, sku string, delta int64) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	event := &service.StockEvent{
		RequestID:      requestID,
		EventType:      service.StockEventAdjusted,
		LocationID:     stock.LocationID,
		ProductID:      stock.ProductID,
		SKU:            sku,
		Delta:          delta,
		QuantityOnHand: stock.QuantityOnHand,
		ReorderPoint:   stock.ReorderPoint,
	}

	if err := srv.publisher.PublishStockEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish stock event", slog.String("eventType", event.EventType), slog.Any("error", err))
	}

	if !stock.BelowReorderPoint() {
		return
	}

	lowEvent := *event
	lowEvent.EventType = service.StockEventLow
	if err := srv.publisher.PublishStockEvent(ctx, &lowEvent); err != nil {
		srv.log(ctx).Warn("Failed to publish stock event", slog.String("eventType", lowEvent.EventType), slog.Any("error", err))
	}
}

func validateAdjustInput(input *usecase.AdjustStockInput) error {
	if input == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "request body is required")
	}
	if input.Delta != nil && input.Quantity != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "delta and quantity are mutually exclusive")
	}
	if input.Delta == nil && input.Quantity == nil && input.ReorderPoint == nil && input.ReorderQuantity == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "at least one of delta, quantity or reorder fields must be provided")
	}

	return nil
}

func stockItemView(item *repository.StockItem) *usecase.StockItemView {
	return &usecase.StockItemView{
		ProductID:       item.ProductID,
		SKU:             item.SKU,
		ProductName:     item.ProductName,
		QuantityOnHand:  item.QuantityOnHand,
		ReorderPoint:    item.ReorderPoint,
		ReorderQuantity: item.ReorderQuantity,
		UpdatedAt:       item.UpdatedAt,
	}
}
