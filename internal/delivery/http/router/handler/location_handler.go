package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "backroom/internal/delivery/context"
	"backroom/internal/delivery/http/response"
	"backroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for store and catalog handlers.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// GetLocation handles retrieving a single store.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	locationID, err := parseIDParam(c, "locationId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), principal, locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location retrieved successfully")
}

// ListByDistrict handles listing the stores of one district.
func (h *LocationHandler) ListByDistrict(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	districtID, err := parseIDParam(c, "districtId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid district ID")
	}

	locations, err := h.locationUC.ListByDistrict(c.Request().Context(), principal, districtID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// LocationQRCode renders the store's QR code as a PNG image.
func (h *LocationHandler) LocationQRCode(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	locationID, err := parseIDParam(c, "locationId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	png, err := h.locationUC.LocationQRCode(c.Request().Context(), principal, locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListProducts handles listing the product catalog.
func (h *LocationHandler) ListProducts(c echo.Context) error {
	products, err := h.locationUC.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid %s", name)
	}

	return id, nil
}
