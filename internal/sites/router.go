package sites

import (
	"camply/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupSiteRoutes configures all site catalog routes
func SetupSiteRoutes(rg *gin.RouterGroup, controller *Controller) {
	sites := rg.Group("/sites")
	{
		sites.GET("", controller.ListSites)
		sites.GET("/:id", controller.GetSite)
	}

	admin := rg.Group("/sites")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateSite)
		admin.PUT("/:id", controller.UpdateSite)
	}
}
