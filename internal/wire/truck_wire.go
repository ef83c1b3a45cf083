package wire

import (
	"truck-booking/internal/adaptor"
	"truck-booking/pkg/middleware"
	"truck-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTruck(
	r chi.Router,
	truckHandler *adaptor.TruckHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/trucks", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/trucks - Register a new truck
		r.Post("/", truckHandler.CreateTruck)

		// GET /api/admin/trucks - List trucks (optional ?status= filter)
		r.Get("/", truckHandler.GetTrucks)

		// GET /api/admin/trucks/{id} - Truck details
		r.Get("/{id}", truckHandler.GetTruckByID)

		// PUT /api/admin/trucks/{id} - Update truck
		r.Put("/{id}", truckHandler.UpdateTruck)

		// DELETE /api/admin/trucks/{id} - Remove truck
		r.Delete("/{id}", truckHandler.DeleteTruck)
	})
}
