package app

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/simlane/bay-booking-backend/internal/api"
	"github.com/simlane/bay-booking-backend/internal/availability"
	"github.com/simlane/bay-booking-backend/internal/booking"
	"github.com/simlane/bay-booking-backend/internal/favorites"
	"github.com/simlane/bay-booking-backend/internal/location"
	"github.com/simlane/bay-booking-backend/internal/pricing"
	"github.com/simlane/bay-booking-backend/internal/resource"
	"github.com/simlane/bay-booking-backend/internal/selection"
	selectionHttp "github.com/simlane/bay-booking-backend/internal/selection/http"
	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Redis        redis.UniversalClient
	Logger       *zap.Logger

	SlotGranularity        time.Duration
	OfferedDurations       []int
	MaxSelectable          int
	FavoriteDebounceWindow time.Duration
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
	// Favorites is exposed so shutdown can flush pending debounced writes.
	Favorites favorites.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Location Module
	locRepo := location.NewPgxRepository(cfg.DBPool)
	locService := location.NewService(locRepo)

	// Resource Module
	resRepo := resource.NewPgxRepository(cfg.DBPool)
	resService := resource.NewService(resRepo, locService)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, resService, locService, cfg.SlotGranularity)

	// Availability Module
	rateCard := pricing.DefaultTable()
	validator := availability.NewDurationValidator(cfg.OfferedDurations, rateCard.Quote)
	availabilityService := availability.NewService(
		bookingService, resService, locService, cfg.SlotGranularity, validator, cfg.Logger,
	)

	// Favorites Module
	favoritesStore := favorites.NewRedisStore(cfg.Redis)
	favoritesService := favorites.NewService(
		favoritesStore, bookingService, resService, cfg.FavoriteDebounceWindow, cfg.Logger,
	)

	// Selection sessions, backed by the availability conflict check.
	checkFunc := selection.CheckFunc(func(ctx context.Context, locationID string, window timeslot.Range) (*availability.ConflictCheckResult, error) {
		return availabilityService.CheckConflicts(ctx, availability.ConflictRequest{
			LocationID: locationID,
			Start:      window.Start,
			End:        window.End,
		})
	})
	sessionHandler := selectionHttp.NewHandler(
		selectionHttp.NewRegistry(), resService, checkFunc, cfg.MaxSelectable, cfg.Logger,
	)

	// Router
	router := api.NewRouter(
		locService,
		resService,
		bookingService,
		availabilityService,
		favoritesService,
		sessionHandler,
		allowedOrigins(cfg),
	)

	return &Container{
		Router:    router,
		Favorites: favoritesService,
	}
}

func allowedOrigins(cfg Config) []string {
	if cfg.IsProduction {
		origins := strings.Split(cfg.ProdOrigins, ",")
		out := make([]string, 0, len(origins))
		for _, origin := range origins {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
		return out
	}
	return []string{"http://localhost:3000", "http://localhost:8081"}
}
