package postgres

import (
	"context"

	"backroom/internal/domain/entity"
	domainerrors "backroom/internal/domain/errors"
	"backroom/internal/domain/repository"
	"backroom/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// stockRepository implements the domain.StockRepository interface using GORM.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{db: db}
}

// ListByLocation retrieves all stock rows of a location joined with the
// product catalog, ordered by SKU.
func (repo *stockRepository) ListByLocation(ctx context.Context, locationID int64) ([]*repository.StockItem, error) {
	var items []*repository.StockItem
	err := repo.db.WithContext(ctx).
		Model(&model.LocationStockModel{}).
		Select("location_stocks.location_id",
			"location_stocks.product_id",
			"products.sku AS sku",
			"products.name AS product_name",
			"location_stocks.quantity_on_hand",
			"location_stocks.reorder_point",
			"location_stocks.reorder_quantity",
			"location_stocks.updated_at").
		Joins("JOIN products ON products.id = location_stocks.product_id").
		Where("location_stocks.location_id = ?", locationID).
		Order("products.sku ASC").
		Scan(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock by location")
	}

	return items, nil
}

// FindForUpdate retrieves one stock row with a row lock. When called on a
// transaction handle the lock holds until commit, serializing concurrent
// adjustments of the same (location, product) pair.
func (repo *stockRepository) FindForUpdate(ctx context.Context, locationID, productID int64) (*entity.LocationStock, error) {
	var stockM model.LocationStockModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("location_id = ? AND product_id = ?", locationID, productID).
		Take(&stockM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock for update")
	}

	return toStockDomain(&stockM), nil
}

// Create persists a new stock row. Callers verify the location and
// product inside the same transaction, so a constraint violation here is
// a database failure rather than a missing reference.
func (repo *stockRepository) Create(ctx context.Context, stock *entity.LocationStock) error {
	stockM := fromStockDomain(stock)

	if err := repo.db.WithContext(ctx).Create(stockM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create stock row")
	}

	stock.UpdatedAt = stockM.UpdatedAt

	return nil
}

// Update persists quantity and reorder metadata of an existing row.
func (repo *stockRepository) Update(ctx context.Context, stock *entity.LocationStock) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationStockModel{}).
		Where("location_id = ? AND product_id = ?", stock.LocationID, stock.ProductID).
		Updates(map[string]any{
			"quantity_on_hand": stock.QuantityOnHand,
			"reorder_point":    stock.ReorderPoint,
			"reorder_quantity": stock.ReorderQuantity,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update stock row")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStockNotFound
	}

	return nil
}

func toStockDomain(stockM *model.LocationStockModel) *entity.LocationStock {
	return &entity.LocationStock{
		LocationID:      stockM.LocationID,
		ProductID:       stockM.ProductID,
		QuantityOnHand:  stockM.QuantityOnHand,
		ReorderPoint:    stockM.ReorderPoint,
		ReorderQuantity: stockM.ReorderQuantity,
		UpdatedAt:       stockM.UpdatedAt,
	}
}

func fromStockDomain(stock *entity.LocationStock) *model.LocationStockModel {
	return &model.LocationStockModel{
		LocationID:      stock.LocationID,
		ProductID:       stock.ProductID,
		QuantityOnHand:  stock.QuantityOnHand,
		ReorderPoint:    stock.ReorderPoint,
		ReorderQuantity: stock.ReorderQuantity,
	}
}
