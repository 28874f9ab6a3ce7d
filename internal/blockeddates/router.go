package blockeddates

import (
	"camply/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBlockedDateRoutes configures all blocked-date routes
func SetupBlockedDateRoutes(rg *gin.RouterGroup, controller *Controller) {
	blocked := rg.Group("/blocked-dates")
	blocked.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		blocked.GET("", controller.ListRange)
		blocked.POST("", controller.Block)
		blocked.DELETE("/:id", controller.Unblock)
	}
}
