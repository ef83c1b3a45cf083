// internal/wire/wire.go
package wire

import (
	"net/http"
	"truck-booking/internal/adaptor"
	"truck-booking/internal/data/repository"
	"truck-booking/internal/usecase"
	"truck-booking/pkg/mailer"
	"truck-booking/pkg/maps"
	"truck-booking/pkg/middleware"
	"truck-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// External adapters: distance provider + notification mailer
	distance := maps.NewClient(config.Maps, logger)
	notifier := mailer.New(config.Email, logger)

	// Initialize services and handlers
	service := usecase.NewService(repo, config, distance, notifier, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, config, logger)
	wireBooking(r, handler.Booking, config, logger)
	wireTruck(r, handler.Truck, config, logger)
	wireDriver(r, handler.Driver, config, logger)
	wireDashboard(r, handler.Dashboard, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
