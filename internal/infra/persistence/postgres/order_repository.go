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

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves an order together with its lines.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		First(&orderM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByLocation retrieves all orders of a location with their lines,
// newest first.
func (repo *orderRepository) ListByLocation(ctx context.Context, locationID int64) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("location_id = ?", locationID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by location")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// LinesWithProducts retrieves the lines of an order joined with product
// identity, ordered by SKU.
func (repo *orderRepository) LinesWithProducts(ctx context.Context, orderID int64) ([]*repository.OrderLineView, error) {
	var lines []*repository.OrderLineView
	err := repo.db.WithContext(ctx).
		Model(&model.OrderLineModel{}).
		Select("order_lines.product_id",
			"products.sku AS sku",
			"products.name AS product_name",
			"order_lines.quantity",
			"order_lines.unit_price_at_time").
		Joins("JOIN products ON products.id = order_lines.product_id").
		Where("order_lines.order_id = ?", orderID).
		Order("products.sku ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order lines")
	}

	return lines, nil
}

// Create persists a new order together with its lines.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, lineM := range orderM.Lines {
		order.Lines[i].ID = lineM.ID
		order.Lines[i].OrderID = lineM.OrderID
	}

	return nil
}

// Update persists the status of an existing order. Lines are immutable
// after creation; fulfillment and cancellation only move the status.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Update("status", order.Status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	lines := make([]*entity.OrderLine, 0, len(orderM.Lines))
	for _, lineM := range orderM.Lines {
		lines = append(lines, &entity.OrderLine{
			ID:              lineM.ID,
			OrderID:         lineM.OrderID,
			ProductID:       lineM.ProductID,
			Quantity:        lineM.Quantity,
			UnitPriceAtTime: lineM.UnitPriceAtTime,
		})
	}

	return &entity.Order{
		ID:         orderM.ID,
		LocationID: orderM.LocationID,
		Status:     entity.OrderStatus(orderM.Status),
		Lines:      lines,
		CreatedAt:  orderM.CreatedAt,
		UpdatedAt:  orderM.UpdatedAt,
	}
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	lineModels := make([]model.OrderLineModel, 0, len(order.Lines))
	for _, line := range order.Lines {
		lineModels = append(lineModels, model.OrderLineModel{
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			UnitPriceAtTime: line.UnitPriceAtTime,
		})
	}

	return &model.OrderModel{
		ID:         order.ID,
		LocationID: order.LocationID,
		Status:     order.Status.String(),
		Lines:      lineModels,
	}
}
