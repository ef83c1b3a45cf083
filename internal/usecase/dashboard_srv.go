package usecase

import (
	"context"
	"fmt"

	"truck-booking/internal/data/entity"
	"truck-booking/internal/data/repository"
	"truck-booking/internal/dto/response"

	"go.uber.org/zap"
)

type DashboardService interface {
	Stats(ctx context.Context) (*response.DashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

// Stats aggregates counts and delivered revenue. Pure read; reflects store
// state at call time.
func (s *dashboardService) Stats(ctx context.Context) (*response.DashboardResponse, error) {
	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalBookings, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	// Revenue counts DELIVERED bookings only; zero when there are none.
	totalRevenue, err := s.repo.Booking.SumPriceByStatus(ctx, entity.BookingDelivered)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	pendingBookings, err := s.repo.Booking.CountByStatus(ctx, entity.BookingPending)
	if err != nil {
		return nil, fmt.Errorf("count pending bookings: %w", err)
	}

	completedBookings, err := s.repo.Booking.CountByStatus(ctx, entity.BookingDelivered)
	if err != nil {
		return nil, fmt.Errorf("count completed bookings: %w", err)
	}

	s.log.Debug("Dashboard stats computed",
		zap.Int64("total_users", totalUsers),
		zap.Int64("total_bookings", totalBookings),
	)

	return &response.DashboardResponse{
		TotalUsers:        totalUsers,
		TotalBookings:     totalBookings,
		TotalRevenue:      totalRevenue,
		PendingBookings:   pendingBookings,
		CompletedBookings: completedBookings,
	}, nil
}
