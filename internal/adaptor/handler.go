package adaptor

import (
	"truck-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Booking   *BookingHandler
	Truck     *TruckHandler
	Driver    *DriverHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Truck:     NewTruckHandler(service.Truck, log),
		Driver:    NewDriverHandler(service.Driver, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}
