package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/simlane/bay-booking-backend/internal/availability"
	availabilityHttp "github.com/simlane/bay-booking-backend/internal/availability/http"
	"github.com/simlane/bay-booking-backend/internal/booking"
	bookingHttp "github.com/simlane/bay-booking-backend/internal/booking/http"
	"github.com/simlane/bay-booking-backend/internal/favorites"
	favoritesHttp "github.com/simlane/bay-booking-backend/internal/favorites/http"
	"github.com/simlane/bay-booking-backend/internal/location"
	locationHttp "github.com/simlane/bay-booking-backend/internal/location/http"
	"github.com/simlane/bay-booking-backend/internal/resource"
	resourceHttp "github.com/simlane/bay-booking-backend/internal/resource/http"
	selectionHttp "github.com/simlane/bay-booking-backend/internal/selection/http"
)

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Recovery) and registers routes for
// each module.
func NewRouter(
	locationService location.Service,
	resourceService resource.Service,
	bookingService booking.Service,
	availabilityService availability.Service,
	favoritesService favorites.Service,
	sessionHandler *selectionHttp.Handler,
	allowedOrigins []string,
) *gin.Engine {

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	locationHandler := locationHttp.NewHandler(locationService, resourceService)
	resourceHandler := resourceHttp.NewHandler(resourceService)
	bookingHandler := bookingHttp.NewHandler(bookingService)
	availabilityHandler := availabilityHttp.NewHandler(availabilityService)
	favoritesHandler := favoritesHttp.NewHandler(favoritesService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		locationHttp.RegisterRoutes(v1, locationHandler)
		resourceHttp.RegisterRoutes(v1, resourceHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		availabilityHttp.RegisterRoutes(v1, availabilityHandler)
		favoritesHttp.RegisterRoutes(v1, favoritesHandler)
		selectionHttp.RegisterRoutes(v1, sessionHandler)
	}

	return r
}
