package pricing

import (
	"camply/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPricingRoutes configures all pricing-related routes
func SetupPricingRoutes(rg *gin.RouterGroup, controller *Controller) {
	pricing := rg.Group("/pricing")
	{
		// Public quote endpoint, used by the booking form
		pricing.GET("/quote", controller.GetQuote)

		// Admin rate-table management
		admin := pricing.Group("/config")
		admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		{
			admin.GET("", controller.GetConfig)
			admin.PUT("", controller.UpdateConfig)
		}
	}
}
