package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "backroom/internal/delivery/context"
	"backroom/internal/delivery/http/response"
	"backroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for administrative handlers.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// CreateUserRequest represents the request body for provisioning a user.
type CreateUserRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"required"`
	DistrictID *int64 `json:"districtId,omitempty"`
	LocationID *int64 `json:"locationId,omitempty"`
}

// CreateLocationRequest represents the request body for creating a store.
type CreateLocationRequest struct {
	DistrictID int64  `json:"districtId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Code       string `json:"code,omitempty"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	Zip        string `json:"zip" validate:"required"`
}

// CreateProductRequest represents the request body for a catalog entry.
type CreateProductRequest struct {
	SKU  string `json:"sku" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// ListUsers handles listing every directory user.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// CreateUser handles provisioning a scoped user account.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.adminUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		DistrictID: req.DistrictID,
		LocationID: req.LocationID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// DeleteUser handles removing a user account.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), principal.UserID, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted successfully"}, "User deleted successfully")
}

// CreateLocation handles provisioning a store in a district.
func (h *AdminHandler) CreateLocation(c echo.Context) error {
	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	location, err := h.adminUC.CreateLocation(c.Request().Context(), &usecase.CreateLocationInput{
		DistrictID: req.DistrictID,
		Name:       req.Name,
		Code:       req.Code,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		Zip:        req.Zip,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, location, "Location created successfully")
}

// CreateProduct handles adding a product to the catalog.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.adminUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		SKU:  req.SKU,
		Name: req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}
