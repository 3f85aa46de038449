// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backroom/internal/delivery/http/middleware"
	"backroom/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	AdminHandler     *handler.AdminHandler
	LocationHandler  *handler.LocationHandler
	InventoryHandler *handler.InventoryHandler
	OrderHandler     *handler.OrderHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	adminHandler     *handler.AdminHandler
	locationHandler  *handler.LocationHandler
	inventoryHandler *handler.InventoryHandler
	orderHandler     *handler.OrderHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		adminHandler:     params.AdminHandler,
		locationHandler:  params.LocationHandler,
		inventoryHandler: params.InventoryHandler,
		orderHandler:     params.OrderHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Admin routes require authentication and the Admin role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.DELETE("/users/:userId", r.adminHandler.DeleteUser)
		adminGroup.POST("/locations", r.adminHandler.CreateLocation)
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
	}

	// Catalog browsing is open to any authenticated principal
	api.GET("/products", r.locationHandler.ListProducts, r.authMiddleware.Authenticate)

	// District routes; scope checks happen in the use cases
	districtGroup := api.Group("/districts")
	districtGroup.Use(r.authMiddleware.Authenticate)
	{
		districtGroup.GET("/:districtId/locations", r.locationHandler.ListByDistrict)
	}

	// Location routes: store lookups, the stock ledger, and orders
	locationGroup := api.Group("/locations")
	locationGroup.Use(r.authMiddleware.Authenticate)
	{
		locationGroup.GET("/:locationId", r.locationHandler.GetLocation)
		locationGroup.GET("/:locationId/qrcode", r.locationHandler.LocationQRCode)

		locationGroup.GET("/:locationId/inventory", r.inventoryHandler.ListStock)
		locationGroup.PATCH("/:locationId/inventory/:productId", r.inventoryHandler.AdjustStock)

		locationGroup.GET("/:locationId/orders", r.orderHandler.ListOrders)
		locationGroup.POST("/:locationId/orders", r.orderHandler.CreateOrder)
		locationGroup.GET("/:locationId/orders/:orderId", r.orderHandler.GetOrder)
		locationGroup.POST("/:locationId/orders/:orderId/fulfill", r.orderHandler.FulfillOrder)
		locationGroup.POST("/:locationId/orders/:orderId/cancel", r.orderHandler.CancelOrder)
	}
}
