package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"truck-booking/internal/data/entity"
	"truck-booking/internal/data/repository"
	"truck-booking/internal/dto/request"
	"truck-booking/internal/dto/response"
	"truck-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Pricing contract: price = baseRate + distance*perKmRate + weight*perTonRate.
// Prices are fixed at booking creation and never recomputed.
var (
	baseRate   = decimal.RequireFromString("50.00")
	perKmRate  = decimal.RequireFromString("2.50")
	perTonRate = decimal.RequireFromString("0.50")
)

// Fallback distance bounds in km when the external lookup fails. The
// substitution is a business rule; callers cannot tell a fallback value
// from a real one. Rounding to 2 decimals means a draw at the top of the
// span can land on exactly 100.00.
const (
	fallbackMinKm  = 10.0
	fallbackSpanKm = 90.0
)

// DistanceProvider resolves road distance in kilometers between two
// locations. It may fail; the fallback policy is owned by this service.
type DistanceProvider interface {
	Estimate(ctx context.Context, origin, destination string) (decimal.Decimal, error)
}

// Notifier delivers a booking confirmation. Best-effort: failures are
// logged by the caller and never propagated.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, toEmail string, booking *entity.Booking) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, userEmail string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userEmail string) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	AssignTransport(ctx context.Context, bookingID string, req *request.AssignTransportRequest) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)

	ProcessPayment(ctx context.Context, bookingID string) (*response.PaymentResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	distance DistanceProvider
	notifier Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, distance DistanceProvider, notifier Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		distance: distance,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userEmail string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidArgument)
	}

	if !req.Weight.IsPositive() {
		return nil, fmt.Errorf("weight must be positive: %w", utils.ErrInvalidArgument)
	}

	user, err := s.repo.User.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userEmail, utils.ErrNotFound)
	}

	distance := s.estimateDistance(ctx, req.PickupLocation, req.DropLocation)

	price := baseRate.
		Add(distance.Mul(perKmRate)).
		Add(req.Weight.Mul(perTonRate)).
		Round(2)

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:         user.ID,
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		LoadType:       req.LoadType,
		Weight:         req.Weight,
		Distance:       distance,
		Price:          price,
		Status:         entity.BookingPending,
		BookingDate:    now,
	}

	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID: booking.ID,
		Amount:    price,
		Status:    entity.PaymentPending,
	}

	if err := s.repo.Booking.CreateWithPayment(ctx, booking, payment); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", user.ID.String()),
		zap.String("distance_km", distance.String()),
		zap.String("price", price.String()),
	)

	// Best-effort notification; booking creation succeeds regardless.
	if err := s.notifier.SendBookingConfirmation(ctx, user.Email, booking); err != nil {
		s.log.Error("Failed to send booking confirmation",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("email", user.Email),
		)
	}

	resp := s.toResponse(ctx, booking)
	return &resp, nil
}

// estimateDistance tries the external provider and degrades to a bounded
// pseudo-random estimate on any failure.
func (s *bookingService) estimateDistance(ctx context.Context, pickup, drop string) decimal.Decimal {
	distance, err := s.distance.Estimate(ctx, pickup, drop)
	if err == nil {
		return distance
	}

	fallback := decimal.NewFromFloat(fallbackMinKm + rand.Float64()*fallbackSpanKm).Round(2)

	s.log.Warn("Distance lookup failed, using fallback estimate",
		zap.Error(err),
		zap.String("pickup", pickup),
		zap.String("drop", drop),
		zap.String("distance_km", fallback.String()),
	)

	return fallback
}

func (s *bookingService) GetUserBookings(ctx context.Context, userEmail string) ([]response.BookingResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userEmail, utils.ErrNotFound)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = s.toResponse(ctx, booking)
	}

	return responses, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(ctx, booking)
	return &resp, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = s.toResponse(ctx, booking)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}

// AssignTransport binds a driver and truck to a booking. Resolution order is
// booking, driver, truck; the first missing record is the NotFound reported.
// A truck that is already ASSIGNED is re-assigned silently; there is no
// availability guard.
func (s *bookingService) AssignTransport(ctx context.Context, bookingID string, req *request.AssignTransportRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Assign transport validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidArgument)
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return nil, fmt.Errorf("driver ID %s: %w", req.DriverID, utils.ErrInvalidArgument)
	}

	driver, err := s.repo.Driver.FindByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("resolve driver: %w", err)
	}
	if driver == nil {
		return nil, fmt.Errorf("driver %s: %w", req.DriverID, utils.ErrNotFound)
	}

	truckID, err := uuid.Parse(req.TruckID)
	if err != nil {
		return nil, fmt.Errorf("truck ID %s: %w", req.TruckID, utils.ErrInvalidArgument)
	}

	truck, err := s.repo.Truck.FindByID(ctx, truckID)
	if err != nil {
		return nil, fmt.Errorf("resolve truck: %w", err)
	}
	if truck == nil {
		return nil, fmt.Errorf("truck %s: %w", req.TruckID, utils.ErrNotFound)
	}

	now := time.Now()
	booking.TruckID = &truck.ID
	booking.DriverID = &driver.ID
	booking.Status = entity.BookingAssigned
	booking.UpdatedAt = now

	truck.AvailabilityStatus = entity.TruckAssigned
	truck.UpdatedAt = now

	if err := s.repo.Booking.AssignTransport(ctx, booking, truck); err != nil {
		s.log.Error("Failed to assign transport",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("truck_id", truck.ID.String()),
			zap.String("driver_id", driver.ID.String()),
		)
		return nil, fmt.Errorf("assign transport: %w", err)
	}

	s.log.Info("Transport assigned",
		zap.String("booking_id", booking.ID.String()),
		zap.String("truck_number", truck.TruckNumber),
		zap.String("driver_name", driver.Name),
	)

	resp := s.toResponse(ctx, booking)
	return &resp, nil
}

// UpdateBookingStatus sets the booking status. DELIVERED releases an
// assigned truck back to AVAILABLE in the same transaction; no other
// transition touches the truck (CANCELLED keeps it assigned). There is no
// enforced transition graph.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	status, err := entity.ParseBookingStatus(req.Status)
	if err != nil {
		return nil, err
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking.Status = status
	booking.UpdatedAt = now

	var truck *entity.Truck
	if status == entity.BookingDelivered && booking.TruckID != nil {
		truck, err = s.repo.Truck.FindByID(ctx, *booking.TruckID)
		if err != nil {
			return nil, fmt.Errorf("resolve assigned truck: %w", err)
		}
		if truck != nil {
			truck.AvailabilityStatus = entity.TruckAvailable
			truck.UpdatedAt = now
		}
	}

	if err := s.repo.Booking.UpdateStatusWithTruck(ctx, booking, truck); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("status", string(status)),
		zap.Bool("truck_released", truck != nil),
	)

	resp := s.toResponse(ctx, booking)
	return &resp, nil
}

func (s *bookingService) ProcessPayment(ctx context.Context, bookingID string) (*response.PaymentResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment for booking %s: %w", bookingID, utils.ErrNotFound)
	}

	if payment.Status == entity.PaymentCompleted {
		return nil, fmt.Errorf("payment already completed: %w", utils.ErrInvalidArgument)
	}

	if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentCompleted); err != nil {
		s.log.Error("Failed to complete payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
		return nil, fmt.Errorf("complete payment: %w", err)
	}

	payment.Status = entity.PaymentCompleted

	s.log.Info("Payment completed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", booking.ID.String()),
		zap.String("amount", payment.Amount.String()),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking ID %s: %w", bookingID, utils.ErrInvalidArgument)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, utils.ErrNotFound)
	}

	return booking, nil
}

// toResponse denormalizes user/truck/driver names into the projection.
// Lookup failures are logged and leave the corresponding name empty rather
// than failing the whole read.
func (s *bookingService) toResponse(ctx context.Context, booking *entity.Booking) response.BookingResponse {
	user, err := s.repo.User.FindByID(ctx, booking.UserID)
	if err != nil {
		s.log.Warn("Failed to resolve booking user for projection",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}

	var truck *entity.Truck
	if booking.TruckID != nil {
		truck, err = s.repo.Truck.FindByID(ctx, *booking.TruckID)
		if err != nil {
			s.log.Warn("Failed to resolve booking truck for projection",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
		}
	}

	var driver *entity.Driver
	if booking.DriverID != nil {
		driver, err = s.repo.Driver.FindByID(ctx, *booking.DriverID)
		if err != nil {
			s.log.Warn("Failed to resolve booking driver for projection",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
		}
	}

	return response.BookingToResponse(booking, user, truck, driver)
}
