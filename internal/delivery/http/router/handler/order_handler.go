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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for replenishment order handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderLineRequest is one requested line of a replenishment order.
type OrderLineRequest struct {
	ProductID       int64    `json:"productId" validate:"required"`
	Quantity        int64    `json:"quantity" validate:"required,min=1"`
	UnitPriceAtTime *float64 `json:"unitPriceAtTime,omitempty" validate:"omitempty,min=0"`
}

// CreateOrderRequest represents the request body for placing an order.
type CreateOrderRequest struct {
	Lines []*OrderLineRequest `json:"lines" validate:"required,min=1,dive,required"`
}

// CreateOrder handles placing a replenishment order for a location.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	locationID, err := parseIDParam(c, "locationId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	lines := make([]*usecase.OrderLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, &usecase.OrderLineInput{
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			UnitPriceAtTime: line.UnitPriceAtTime,
		})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), principal, locationID, &usecase.CreateOrderInput{Lines: lines})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// ListOrders handles listing a location's orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	locationID, err := parseIDParam(c, "locationId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), principal, locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder handles retrieving one order of a location.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	locationID, orderID, err := h.orderParams(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), principal, locationID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// FulfillOrder handles fulfilling a pending order and receiving its
// lines into stock.
func (h *OrderHandler) FulfillOrder(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	locationID, orderID, err := h.orderParams(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.FulfillOrder(c.Request().Context(), principal, locationID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order fulfilled successfully")
}

// CancelOrder handles cancelling a pending order.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	locationID, orderID, err := h.orderParams(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), principal, locationID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled successfully")
}

// orderParams parses the location and order path parameters.
func (h *OrderHandler) orderParams(c echo.Context) (int64, int64, error) {
	locationID, err := parseIDParam(c, "locationId")
	if err != nil {
		return 0, 0, response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return 0, 0, response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	return locationID, orderID, nil
}
