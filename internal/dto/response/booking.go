package response

import (
	"time"

	"truck-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

// BookingResponse is the read projection for a booking, with denormalized
// user/truck/driver names. Entities never leave the service layer raw.
type BookingResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	UserName       string          `json:"user_name"`
	TruckID        *string         `json:"truck_id,omitempty"`
	TruckNumber    *string         `json:"truck_number,omitempty"`
	DriverID       *string         `json:"driver_id,omitempty"`
	DriverName     *string         `json:"driver_name,omitempty"`
	PickupLocation string          `json:"pickup_location"`
	DropLocation   string          `json:"drop_location"`
	LoadType       string          `json:"load_type"`
	Weight         decimal.Decimal `json:"weight"`
	Distance       decimal.Decimal `json:"distance"`
	Price          decimal.Decimal `json:"price"`
	Status         string          `json:"status"`
	BookingDate    time.Time       `json:"booking_date"`
}

type PaymentResponse struct {
	ID        string          `json:"id"`
	BookingID string          `json:"booking_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// BookingToResponse builds the projection; truck and driver may be nil when
// the booking has not been assigned yet.
func BookingToResponse(booking *entity.Booking, user *entity.User, truck *entity.Truck, driver *entity.Driver) BookingResponse {
	resp := BookingResponse{
		ID:             booking.ID.String(),
		UserID:         booking.UserID.String(),
		PickupLocation: booking.PickupLocation,
		DropLocation:   booking.DropLocation,
		LoadType:       booking.LoadType,
		Weight:         booking.Weight,
		Distance:       booking.Distance,
		Price:          booking.Price,
		Status:         string(booking.Status),
		BookingDate:    booking.BookingDate,
	}

	if user != nil {
		resp.UserName = user.Name
	}

	if truck != nil {
		id := truck.ID.String()
		number := truck.TruckNumber
		resp.TruckID = &id
		resp.TruckNumber = &number
	}

	if driver != nil {
		id := driver.ID.String()
		name := driver.Name
		resp.DriverID = &id
		resp.DriverName = &name
	}

	return resp
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID.String(),
		BookingID: payment.BookingID.String(),
		Amount:    payment.Amount,
		Status:    string(payment.Status),
		CreatedAt: payment.CreatedAt,
	}
}
