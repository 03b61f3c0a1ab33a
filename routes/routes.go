package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wearsaintpaul/admin-backend-go/handlers"
	customMiddleware "github.com/wearsaintpaul/admin-backend-go/middleware"
)

func SetupRoutes(e *echo.Echo, h *handlers.Handler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Public routes
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)

	// Protected API routes
	api := e.Group("/api")
	api.Use(customMiddleware.AuthMiddleware)

	// User routes
	api.GET("/users", h.GetUsers)
	api.GET("/users/:id", h.GetUser)
	api.DELETE("/users/:id", h.DeleteUser)

	// Order routes
	api.GET("/orders", h.GetOrders)
	api.GET("/orders/:id", h.GetOrder)
	api.GET("/orders/:id/status", h.GetOrderStatus)
	api.PUT("/orders/:id/status", h.UpdateOrderStatus)
	api.DELETE("/orders/:id", h.DeleteOrder)

	// Product routes
	api.GET("/products", h.GetProducts)
	api.GET("/products/:id", h.GetProduct)
	api.POST("/products", h.CreateProduct)
	api.PUT("/products/:id", h.UpdateProduct)
	api.DELETE("/products/:id", h.DeleteProduct)

	// Banner routes
	api.GET("/banners", h.GetBanners)
	api.GET("/banners/:id", h.GetBanner)
	api.POST("/banners", h.CreateBanner)
	api.PUT("/banners/:id", h.UpdateBanner)
	api.PATCH("/banners/:id/active", h.SetBannerActive)
	api.DELETE("/banners/:id", h.DeleteBanner)

	// Admin routes
	admin := api.Group("/admin")
	admin.GET("/summary", h.GetSummary)
	admin.GET("/delivery-fee", h.GetDeliveryFees)
	admin.POST("/delivery-fee", h.SetDeliveryFees)
	admin.GET("/subscribers", h.GetSubscribers)
	admin.POST("/newsletter/send", h.SendNewsletter)
}
