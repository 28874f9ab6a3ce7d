// api/routes/router.go
package routes

import (
	"camply/internal/auth"
	"camply/internal/availability"
	"camply/internal/blockeddates"
	"camply/internal/notifications"
	"camply/internal/pricing"
	"camply/internal/refund"
	"camply/internal/reservations"
	"camply/internal/shared/config"
	"camply/internal/shared/database"
	"camply/internal/sites"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer

	// Wired during SetupRoutes, consumed across modules
	siteService        sites.Service
	pricingService     pricing.Service
	blockedService     blockeddates.Service
	reservationService reservations.Service
}

// NewRouter creates a new router instance. The producer may be nil when
// Kafka is disabled.
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// Catalog and rules come before the reservation flow that
		// depends on them.
		r.setupSiteRoutes(api)
		r.setupPricingRoutes(api)
		r.setupBlockedDateRoutes(api)

		r.setupReservationRoutes(api)
	}
}

// ReservationService exposes the wired reservation service so main can
// attach the background sweep job. Only valid after SetupRoutes.
func (r *Router) ReservationService() reservations.Service {
	return r.reservationService
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "camply-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "camply-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController)

	authRouter.SetupRoutes(rg)
}

// setupSiteRoutes configures the site catalog routes
func (r *Router) setupSiteRoutes(rg *gin.RouterGroup) {
	siteRepo := sites.NewRepository(r.db.GetPostgreSQL())
	r.siteService = sites.NewService(siteRepo, r.db.GetRedisClient())
	siteController := sites.NewController(r.siteService)

	sites.SetupSiteRoutes(rg, siteController)
}

// setupPricingRoutes configures the rate table and quote routes
func (r *Router) setupPricingRoutes(rg *gin.RouterGroup) {
	pricingRepo := pricing.NewRepository(r.db.GetPostgreSQL())
	r.pricingService = pricing.NewService(pricingRepo, r.db.GetRedisClient())
	pricingController := pricing.NewController(r.pricingService)

	pricing.SetupPricingRoutes(rg, pricingController)
}

// setupBlockedDateRoutes configures the administrative calendar routes
func (r *Router) setupBlockedDateRoutes(rg *gin.RouterGroup) {
	blockedRepo := blockeddates.NewRepository(r.db.GetPostgreSQL())
	r.blockedService = blockeddates.NewService(blockedRepo, r.db.GetRedisClient())
	blockedController := blockeddates.NewController(r.blockedService)

	blockeddates.SetupBlockedDateRoutes(rg, blockedController)
}

// setupReservationRoutes configures the reservation flow
func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL())

	availabilityService := availability.NewService(r.blockedService, reservationRepo, r.siteService)
	siteCatalog := sites.NewReservationCatalogAdapter(r.siteService)

	opts := []reservations.Option{
		reservations.WithPaymentDeadline(r.config.Sweep.PaymentDeadline),
	}
	if r.producer != nil {
		opts = append(opts, reservations.WithProducer(r.producer))
	}

	r.reservationService = reservations.NewService(
		reservationRepo,
		r.pricingService,
		availabilityService,
		siteCatalog,
		refund.Amount,
		opts...,
	)
	reservationController := reservations.NewController(r.reservationService)

	reservations.SetupReservationRoutes(rg, reservationController)
}
