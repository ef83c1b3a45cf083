package request

import "github.com/shopspring/decimal"

type TruckRequest struct {
	TruckNumber string          `json:"truck_number" validate:"required,max=50"`
	Type        string          `json:"type" validate:"required,max=50"`
	Capacity    decimal.Decimal `json:"capacity"`
	// Optional on update; ignored on create (new trucks start AVAILABLE).
	AvailabilityStatus *string `json:"availability_status,omitempty"`
}
