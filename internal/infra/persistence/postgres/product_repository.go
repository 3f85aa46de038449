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

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its ID.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List retrieves the full catalog ordered by SKU.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Order("sku ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FilterExisting returns the subset of the given IDs that exist.
func (repo *productRepository) FilterExisting(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var existing []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error; err != nil {
		return nil, errors.Wrap(err, "failed to filter existing products")
	}

	return existing, nil
}

// Create persists a new product. SKUs are unique across the catalog.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateSKU.WrapMessage("sku already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:        productM.ID,
		SKU:       productM.SKU,
		Name:      productM.Name,
		IsActive:  productM.IsActive,
		CreatedAt: productM.CreatedAt,
		UpdatedAt: productM.UpdatedAt,
	}
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:       product.ID,
		SKU:      product.SKU,
		Name:     product.Name,
		IsActive: product.IsActive,
	}
}
