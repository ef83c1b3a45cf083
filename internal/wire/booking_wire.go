package wire

import (
	"truck-booking/internal/adaptor"
	"truck-booking/pkg/middleware"
	"truck-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/bookings - Create new booking
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings/my-bookings - View own booking history
		r.Get("/my-bookings", bookingHandler.GetMyBookings)

		// GET /api/bookings/{id} - View booking details
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PUT /api/bookings/{id}/pay - Complete payment for a booking
		r.Put("/{id}/pay", bookingHandler.ProcessPayment)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/bookings - List all bookings (paginated)
		r.Get("/", bookingHandler.GetAllBookings)

		// PUT /api/admin/bookings/{id}/assign - Assign driver and truck
		r.Put("/{id}/assign", bookingHandler.AssignTransport)

		// PUT /api/admin/bookings/{id}/status - Update booking status
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
