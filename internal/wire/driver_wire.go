package wire

import (
	"truck-booking/internal/adaptor"
	"truck-booking/pkg/middleware"
	"truck-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDriver(
	r chi.Router,
	driverHandler *adaptor.DriverHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/drivers", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/drivers - Register a new driver
		r.Post("/", driverHandler.CreateDriver)

		// GET /api/admin/drivers - List all drivers
		r.Get("/", driverHandler.GetDrivers)

		// GET /api/admin/drivers/{id} - Driver details
		r.Get("/{id}", driverHandler.GetDriverByID)

		// PUT /api/admin/drivers/{id} - Update driver
		r.Put("/{id}", driverHandler.UpdateDriver)

		// DELETE /api/admin/drivers/{id} - Remove driver
		r.Delete("/{id}", driverHandler.DeleteDriver)
	})
}
