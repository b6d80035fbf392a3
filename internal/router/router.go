package router

import (
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/http/handlers"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with all API routes
func SetupRouter(container *provider.Container) *gin.Engine {
	if container.Config.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware())
	r.Use(CORSMiddleware(&container.Config.CORS))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h := handlers.New(container)
	api := r.Group("/api/v1")

	orders := api.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.DELETE("/:id", h.DeleteOrder)
		orders.PATCH("/:id/status", h.UpdateOrderStatus)
		orders.POST("/:id/cancel", h.CancelOrder)
		orders.GET("/:id/payment", h.GetOrderPayment)
	}

	payments := api.Group("/payments")
	{
		payments.POST("/:id/paid", h.MarkPaymentPaid)
	}

	rentals := api.Group("/rentals")
	{
		rentals.GET("", h.ListRentals)
		rentals.GET("/:id", h.GetRental)
		rentals.GET("/:id/late-fee", h.GetRentalLateFee)
		rentals.POST("/:id/extend", h.ExtendRental)
		rentals.PUT("/:id", h.UpdateRental)
		rentals.POST("/:id/return", h.RecordRentalReturn)
	}

	replacements := api.Group("/replacements")
	{
		replacements.POST("", h.CreateReplacementRequest)
		replacements.GET("", h.ListReplacementRequests)
		replacements.GET("/:id", h.GetReplacementRequest)
		replacements.POST("/:id/review", h.ReviewReplacementRequest)
		replacements.POST("/:id/assign", h.AssignReplacementStaff)
		replacements.POST("/:id/verify", h.VerifyReplacementEquipment)
		replacements.POST("/:id/complete", h.CompleteReplacementRequest)
		replacements.POST("/:id/cancel", h.CancelReplacementRequest)
	}

	discounts := api.Group("/discounts")
	{
		discounts.POST("", h.CreateDiscount)
		discounts.GET("", h.ListDiscounts)
		discounts.GET("/:id", h.GetDiscount)
		discounts.PUT("/:id", h.UpdateDiscount)
		discounts.DELETE("/:id", h.DeleteDiscount)
	}

	inventory := api.Group("/inventory")
	{
		inventory.GET("/types/:id/availability", h.GetTypeAvailability)
		inventory.GET("/units", h.ListUnits)
		inventory.GET("/units/:id", h.GetUnit)
		inventory.POST("/units", h.OnboardUnits)
		inventory.POST("/units/:id/maintenance", h.SendUnitToMaintenance)
		inventory.GET("/units/:id/maintenance-logs", h.ListMaintenanceLogs)
		inventory.POST("/maintenance-logs/:id/complete", h.CompleteMaintenance)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.POST("/:id/read", h.MarkNotificationRead)
	}

	return r
}
