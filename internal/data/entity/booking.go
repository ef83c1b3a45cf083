package entity

import (
	"fmt"
	"time"

	"truck-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingAssigned  BookingStatus = "ASSIGNED"
	BookingInTransit BookingStatus = "IN_TRANSIT"
	BookingDelivered BookingStatus = "DELIVERED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// ParseBookingStatus validates a status token against the closed set.
// There is no enforced transition graph; any valid token is accepted.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch status := BookingStatus(s); status {
	case BookingPending, BookingAssigned, BookingInTransit, BookingDelivered, BookingCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("booking status %q: %w", s, utils.ErrInvalidArgument)
	}
}

type Booking struct {
	Base
	UserID         uuid.UUID       `db:"user_id"`
	TruckID        *uuid.UUID      `db:"truck_id"`
	DriverID       *uuid.UUID      `db:"driver_id"`
	PickupLocation string          `db:"pickup_location"`
	DropLocation   string          `db:"drop_location"`
	LoadType       string          `db:"load_type"`
	Weight         decimal.Decimal `db:"weight"`
	Distance       decimal.Decimal `db:"distance"`
	Price          decimal.Decimal `db:"price"`
	Status         BookingStatus   `db:"status"`
	BookingDate    time.Time       `db:"booking_date"`
}
