package request

import "github.com/shopspring/decimal"

type CreateBookingRequest struct {
	PickupLocation string          `json:"pickup_location" validate:"required"`
	DropLocation   string          `json:"drop_location" validate:"required"`
	LoadType       string          `json:"load_type" validate:"required,max=100"`
	Weight         decimal.Decimal `json:"weight"`
}

type AssignTransportRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid4"`
	TruckID  string `json:"truck_id" validate:"required,uuid4"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
