package reservations

import (
	"camply/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupReservationRoutes configures all reservation-related routes
func SetupReservationRoutes(rg *gin.RouterGroup, controller *Controller) {
	reservations := rg.Group("/reservations")
	reservations.Use(middleware.JWTAuth(), middleware.RequireRoles("USER", "ADMIN"))
	{
		reservations.POST("/quote", controller.Quote)
		reservations.POST("", controller.Create)
		reservations.GET("/:id", controller.GetReservation)
		reservations.POST("/:id/cancel", controller.Cancel)
		reservations.POST("/:id/refund-request", controller.RequestRefund)
	}

	// Administrative lifecycle operations
	admin := rg.Group("/reservations")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("/:id/confirm", controller.ConfirmPayment)
		admin.POST("/:id/refund", controller.ProcessRefund)
		admin.POST("/:id/complete", controller.Complete)
		admin.POST("/sweep", controller.Sweep)
	}

	users := rg.Group("/users")
	users.Use(middleware.JWTAuth(), middleware.RequireRoles("USER", "ADMIN"))
	{
		users.GET("/reservations", controller.GetUserReservations)
	}
}
