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

// locationService implements the LocationUsecase interface.
type locationService struct {
	authorizer   *authz.Authorizer
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	Authorizer   *authz.Authorizer
	LocationRepo repository.LocationRepository
	ProductRepo  repository.ProductRepository
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		authorizer:   params.Authorizer,
		locationRepo: params.LocationRepo,
		productRepo:  params.ProductRepo,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetLocation returns a single store after the scope check passes.
func (srv *locationService) GetLocation(ctx context.Context, principal *entity.Principal, locationID int64) (*usecase.LocationView, error) {
	if err := srv.authorizer.CanAccessLocation(ctx, principal, locationID); err != nil {
		return nil, err
	}

	location, err := srv.findLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	return locationView(location), nil
}

// ListByDistrict returns the stores of one district.
func (srv *locationService) ListByDistrict(ctx context.Context, principal *entity.Principal, districtID int64) ([]*usecase.LocationView, error) {
	if err := srv.authorizer.CanAccessDistrict(principal, districtID); err != nil {
		return nil, err
	}

	if _, err := srv.locationRepo.FindDistrictByID(ctx, districtID); err != nil {
		if errors.Is(err, repository.ErrDistrictNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDistrictNotFound, "district not found")
		}

		srv.log(ctx).Error("Failed to find district", slog.Int64("districtID", districtID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find district")
	}

	locations, err := srv.locationRepo.ListByDistrict(ctx, districtID)
	if err != nil {
		srv.log(ctx).Error("Failed to list locations", slog.Int64("districtID", districtID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list locations by district")
	}

	views := make([]*usecase.LocationView, 0, len(locations))
	for _, location := range locations {
		views = append(views, locationView(location))
	}

	return views, nil
}

// LocationQRCode renders the store's QR label as a PNG.
func (srv *locationService) LocationQRCode(ctx context.Context, principal *entity.Principal, locationID int64) ([]byte, error) {
	if err := srv.authorizer.CanAccessLocation(ctx, principal, locationID); err != nil {
		return nil, err
	}

	if _, err := srv.findLocation(ctx, locationID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateLocationQR(locationID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate QR code", slog.Int64("locationID", locationID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate location QR code")
	}

	return png, nil
}

// ListProducts returns the full catalog.
func (srv *locationService) ListProducts(ctx context.Context) ([]*usecase.ProductView, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	views := make([]*usecase.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, productView(product))
	}

	return views, nil
}

func (srv *locationService) findLocation(ctx context.Context, locationID int64) (*entity.Location, error) {
	location, err := srv.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLocationNotFound, "location not found")
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return location, nil
}

func locationView(location *entity.Location) *usecase.LocationView {
	return &usecase.LocationView{
		ID:         location.ID,
		DistrictID: location.DistrictID,
		Name:       location.Name,
		Code:       location.Code,
		Street:     location.Address.Street,
		City:       location.Address.City,
		State:      location.Address.State,
		Zip:        location.Address.Zip,
		IsActive:   location.IsActive,
	}
}

func productView(product *entity.Product) *usecase.ProductView {
	return &usecase.ProductView{
		ID:        product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		IsActive:  product.IsActive,
		CreatedAt: product.CreatedAt,
	}
}
