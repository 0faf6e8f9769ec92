// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"localfarm/internal/delivery/http/middleware"
	"localfarm/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler     *handler.ProductHandler
	UserHandler        *handler.UserHandler
	FarmerHandler      *handler.FarmerHandler
	TestimonialHandler *handler.TestimonialHandler
	OrderHandler       *handler.OrderHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler     *handler.ProductHandler
	userHandler        *handler.UserHandler
	farmerHandler      *handler.FarmerHandler
	testimonialHandler *handler.TestimonialHandler
	orderHandler       *handler.OrderHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:     params.ProductHandler,
		userHandler:        params.UserHandler,
		farmerHandler:      params.FarmerHandler,
		testimonialHandler: params.TestimonialHandler,
		orderHandler:       params.OrderHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Home)
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Product catalog
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct)
		productGroup.PATCH("/:id/approve", r.productHandler.ApproveProduct)
		productGroup.GET("/:id/qrcode", r.productHandler.ShareQRCode)
	}

	// Accounts
	userGroup := e.Group("/api/users")
	{
		userGroup.POST("/signup", r.userHandler.Signup)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("/me", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	// Seller applications
	farmerGroup := e.Group("/farmers")
	{
		farmerGroup.POST("", r.farmerHandler.Apply)
		farmerGroup.GET("", r.farmerHandler.ListApplications)
	}

	// Testimonials
	testimonialGroup := e.Group("/testimonials")
	{
		testimonialGroup.GET("", r.testimonialHandler.ListTestimonials)
		testimonialGroup.POST("", r.testimonialHandler.SubmitTestimonial)
	}

	// Orders
	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus)
	}
}
