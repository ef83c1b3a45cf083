package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Payment is created exactly once per booking, at booking-creation time,
// with amount mirroring the booking price.
type Payment struct {
	Base
	BookingID uuid.UUID       `db:"booking_id"`
	Amount    decimal.Decimal `db:"amount"`
	Status    PaymentStatus   `db:"status"`
}
