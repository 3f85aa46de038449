package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "backroom/internal/delivery/context"
	"backroom/internal/delivery/http/response"
	"backroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler holds dependencies for stock ledger handlers.
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler.
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// AdjustStockRequest represents the request body for a ledger adjustment.
// Delta and Quantity are mutually exclusive; a reorder-only update may
// omit both. CreateIfMissing defaults to true; sending false makes a
// missing row a not-found instead of creating it.
type AdjustStockRequest struct {
	Delta           *int64 `json:"delta,omitempty"`
	Quantity        *int64 `json:"quantity,omitempty" validate:"omitempty,min=0"`
	ReorderPoint    *int64 `json:"reorderPoint,omitempty" validate:"omitempty,min=0"`
	ReorderQuantity *int64 `json:"reorderQuantity,omitempty" validate:"omitempty,min=0"`
	CreateIfMissing *bool  `json:"createIfMissing,omitempty"`
}

// ListStock handles listing the full stock ledger of a location.
func (h *InventoryHandler) ListStock(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	locationID, err := parseIDParam(c, "locationId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	items, err := h.inventoryUC.ListStock(c.Request().Context(), principal, locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Stock retrieved successfully")
}

// AdjustStock handles a single-row stock adjustment.
func (h *InventoryHandler) AdjustStock(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	locationID, err := parseIDParam(c, "locationId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req AdjustStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.inventoryUC.AdjustStock(c.Request().Context(), principal, locationID, productID, &usecase.AdjustStockInput{
		Delta:           req.Delta,
		Quantity:        req.Quantity,
		ReorderPoint:    req.ReorderPoint,
		ReorderQuantity: req.ReorderQuantity,
		CreateIfMissing: req.CreateIfMissing,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Stock adjusted successfully")
}
