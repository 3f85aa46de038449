package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "backroom/internal/delivery/context"
	"backroom/internal/domain/authz"
	"backroom/internal/domain/entity"
	domainerrors "backroom/internal/domain/errors"
	"backroom/internal/domain/repository"
	"backroom/internal/domain/service"
	"backroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	hasher       service.PasswordHasher
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	LocationRepo repository.LocationRepository
	ProductRepo  repository.ProductRepository
	Hasher       service.PasswordHasher
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		locationRepo: params.LocationRepo,
		productRepo:  params.ProductRepo,
		hasher:       params.Hasher,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every provisioned account.
func (srv *adminService) ListUsers(ctx context.Context) ([]*usecase.UserView, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	views := make([]*usecase.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, userView(user))
	}

	return views, nil
}

// CreateUser provisions a scoped account. The account is created first and
// the scope assigned second; if the assignment fails the half-provisioned
// account is deleted so no unscoped login is left behind.
func (srv *adminService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.UserView, error) {
	srv.log(ctx).Info("Starting user provisioning", slog.String("email", input.Email), slog.String("role", input.Role))

	role := entity.Role(strings.TrimSpace(input.Role))
	if err := authz.ValidateScope(role, input.DistrictID, input.LocationID); err != nil {
		srv.log(ctx).Warn("Scope validation failed during provisioning", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, errors.Wrap(domainerrors.ErrEmailInUse, "email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during provisioning", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrEmailInUse) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, "failed to create user")
	}

	if err := srv.userRepo.AssignScope(ctx, newUser.ID, entity.Roles{role}, input.DistrictID, input.LocationID); err != nil {
		srv.log(ctx).Error("Failed to assign scope, rolling back user", slog.Any("userID", newUser.ID), slog.Any("error", err))

		if deleteErr := srv.userRepo.Delete(ctx, newUser.ID); deleteErr != nil {
			srv.log(ctx).Error("Failed to delete half-provisioned user", slog.Any("userID", newUser.ID), slog.Any("error", deleteErr))
		}

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, "failed to assign scope")
	}

	newUser.Roles = entity.Roles{role}
	newUser.DistrictID = input.DistrictID
	newUser.LocationID = input.LocationID

	srv.log(ctx).Info("User provisioned", slog.Any("userID", newUser.ID), slog.String("role", string(role)))

	return userView(newUser), nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (srv *adminService) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return errors.Wrap(domainerrors.ErrSelfDeletion, "cannot delete own account")
	}

	if err := srv.userRepo.Delete(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		srv.log(ctx).Error("Failed to delete user", slog.Any("userID", targetID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", targetID))

	return nil
}

// CreateLocation provisions a store inside an existing district.
func (srv *adminService) CreateLocation(ctx context.Context, input *usecase.CreateLocationInput) (*usecase.LocationView, error) {
	srv.log(ctx).Info("Creating location", slog.Int64("districtID", input.DistrictID), slog.String("name", input.Name))

	var created *entity.Location
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.NewLocationRepository()

		if _, err := locationRepo.FindDistrictByID(ctx, input.DistrictID); err != nil {
			if errors.Is(err, repository.ErrDistrictNotFound) {
				return errors.Wrap(domainerrors.ErrDistrictNotFound, "district not found")
			}

			return errors.Wrap(err, "failed to find district")
		}

		now := time.Now().UTC()
		location := &entity.Location{
			DistrictID: input.DistrictID,
			Name:       strings.TrimSpace(input.Name),
			Code:       strings.TrimSpace(input.Code),
			Address: entity.Address{
				Street: input.Street,
				City:   input.City,
				State:  input.State,
				Zip:    input.Zip,
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := locationRepo.Create(ctx, location); err != nil {
			return errors.Wrap(err, "failed to create location")
		}

		created = location

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute location creation transaction", slog.Any("error", err))

		return nil, err
	}

	return locationView(created), nil
}

// CreateProduct adds a catalog entry. SKUs are unique across the catalog.
func (srv *adminService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*usecase.ProductView, error) {
	srv.log(ctx).Info("Creating product", slog.String("sku", input.SKU))

	product := entity.NewProduct(input.SKU, input.Name)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateSKU) {
			return nil, err
		}

		srv.log(ctx).Error("Failed to create product", slog.String("sku", input.SKU), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	return productView(product), nil
}

func userView(user *entity.User) *usecase.UserView {
	return &usecase.UserView{
		ID:         user.ID,
		Email:      user.Email,
		Roles:      user.Roles.ToStrings(),
		DistrictID: user.DistrictID,
		LocationID: user.LocationID,
		CreatedAt:  user.CreatedAt,
	}
}
