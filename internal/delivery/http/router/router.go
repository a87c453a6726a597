// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agriatoo/internal/delivery/http/middleware"
	"agriatoo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UploadHandler       *handler.UploadHandler
	OrderHandler        *handler.OrderHandler
	ProductHandler      *handler.ProductHandler
	NotificationHandler *handler.NotificationHandler
	AlertStreamHandler  *handler.AlertStreamHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	uploadHandler       *handler.UploadHandler
	orderHandler        *handler.OrderHandler
	productHandler      *handler.ProductHandler
	notificationHandler *handler.NotificationHandler
	alertStreamHandler  *handler.AlertStreamHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		uploadHandler:       params.UploadHandler,
		orderHandler:        params.OrderHandler,
		productHandler:      params.ProductHandler,
		notificationHandler: params.NotificationHandler,
		alertStreamHandler:  params.AlertStreamHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/login/token", r.authHandler.TokenLogin)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
	}

	// Seller routes require authentication and the "seller" role
	sellerGroup := e.Group("/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	sellerGroup.Use(r.authMiddleware.RequireRole("seller"))
	{
		sellerGroup.POST("/logout", r.authHandler.Logout)
		sellerGroup.GET("/profile", r.authHandler.GetProfile)

		sellerGroup.POST("/uploads/image", r.uploadHandler.UploadImage)
		sellerGroup.POST("/uploads/validate-url", r.uploadHandler.ValidateImageURL)

		sellerGroup.GET("/orders", r.orderHandler.ListOrders)
		sellerGroup.GET("/orders/:orderId", r.orderHandler.GetOrder)
		sellerGroup.PATCH("/orders/:orderId/status", r.orderHandler.UpdateOrderStatus)
		sellerGroup.GET("/orders/:orderId/qrcode", r.orderHandler.OrderQRCode)

		sellerGroup.GET("/products", r.productHandler.ListProducts)
		sellerGroup.POST("/products", r.productHandler.CreateProduct)

		sellerGroup.GET("/alerts", r.notificationHandler.VisibleAlerts)
		sellerGroup.DELETE("/alerts/:orderId", r.notificationHandler.DismissAlert)
		sellerGroup.GET("/alerts/stream", r.alertStreamHandler.Stream)

		sellerGroup.GET("/notifications", r.notificationHandler.Feed)
		sellerGroup.PATCH("/notifications/:notificationId/read", r.notificationHandler.MarkRead)
		sellerGroup.POST("/notifications/read-all", r.notificationHandler.MarkAllRead)
	}
}
