package wire

import (
	"truck-booking/internal/adaptor"
	"truck-booking/pkg/middleware"
	"truck-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// GET /api/admin/dashboard - Aggregated platform statistics
	r.With(
		middleware.Auth(config.JWT.Secret, log),
		middleware.Admin(log),
	).Get("/api/admin/dashboard", dashboardHandler.GetStats)
}
