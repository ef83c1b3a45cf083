package response

import (
	"truck-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type TruckResponse struct {
	ID                 string          `json:"id"`
	TruckNumber        string          `json:"truck_number"`
	Type               string          `json:"type"`
	Capacity           decimal.Decimal `json:"capacity"`
	AvailabilityStatus string          `json:"availability_status"`
}

func TruckToResponse(truck *entity.Truck) TruckResponse {
	return TruckResponse{
		ID:                 truck.ID.String(),
		TruckNumber:        truck.TruckNumber,
		Type:               truck.Type,
		Capacity:           truck.Capacity,
		AvailabilityStatus: string(truck.AvailabilityStatus),
	}
}
