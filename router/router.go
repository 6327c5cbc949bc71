package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tripline/tripline-backend/config"
	"github.com/tripline/tripline-backend/handlers"
	"github.com/tripline/tripline-backend/logger"
	"github.com/tripline/tripline-backend/middleware"
)

// Dependencies holds everything required for setting up routes.
type Dependencies struct {
	Config            *config.Config
	WebhookHandler    *handlers.WebhookHandler
	UserHandler       *handlers.UserHandler
	TripHandler       *handlers.TripHandler
	TripDetailHandler *handlers.TripDetailHandler
	LockerHandler     *handlers.LockerHandler
	PlacesHandler     *handlers.PlacesHandler
	HealthHandler     *handlers.HealthHandler
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Config.Server.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	if err := r.SetTrustedProxies(deps.Config.Server.TrustedProxies); err != nil {
		logger.GetLogger().Warnw("Failed to set trusted proxies", "error", err)
	}

	// Platform webhook plus console liveness probe
	r.GET("/", deps.WebhookHandler.Index)
	r.POST("/", deps.WebhookHandler.HandleWebhook)

	// Observability
	r.GET("/health", deps.HealthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Itinerary API
	line := r.Group("/line")
	{
		line.POST("/user", deps.UserHandler.UpsertUser)

		line.POST("/trip", deps.TripHandler.CreateTrip)
		line.GET("/trip/:user_id", deps.TripHandler.ListTrips)
		line.PUT("/trip/:trip_id", deps.TripHandler.UpdateTrip)
		line.DELETE("/trip/:trip_id", deps.TripHandler.DeleteTrip)
		line.POST("/trip/share", deps.TripHandler.ShareTrip)

		line.POST("/trip_detail", deps.TripDetailHandler.CreateDetail)
		line.GET("/trip_detail/:trip_id", deps.TripDetailHandler.ListDetails)
		line.PUT("/trip_detail/:detail_id", deps.TripDetailHandler.UpdateDetail)
		line.DELETE("/trip_detail/:detail_id", deps.TripDetailHandler.DeleteDetail)
	}

	// Locker rental search
	r.POST("/search-lockers", deps.LockerHandler.SearchLockers)

	// Places autocomplete proxy
	r.GET("/api/google-autocomplete", deps.PlacesHandler.Autocomplete)

	return r
}
