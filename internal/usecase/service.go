package usecase

import (
	"truck-booking/internal/data/repository"
	"truck-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Booking   BookingService
	Truck     TruckService
	Driver    DriverService
	Dashboard DashboardService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	distance DistanceProvider,
	notifier Notifier,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(repo.User, config, log),
		Booking:   NewBookingService(repo, distance, notifier, log),
		Truck:     NewTruckService(repo.Truck, log),
		Driver:    NewDriverService(repo.Driver, repo.Truck, log),
		Dashboard: NewDashboardService(repo, log),
	}
}
