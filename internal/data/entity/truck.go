package entity

import (
	"fmt"

	"truck-booking/pkg/utils"

	"github.com/shopspring/decimal"
)

type AvailabilityStatus string

const (
	TruckAvailable   AvailabilityStatus = "AVAILABLE"
	TruckAssigned    AvailabilityStatus = "ASSIGNED"
	TruckMaintenance AvailabilityStatus = "MAINTENANCE"
)

// ParseAvailabilityStatus validates a status token against the closed set.
func ParseAvailabilityStatus(s string) (AvailabilityStatus, error) {
	switch status := AvailabilityStatus(s); status {
	case TruckAvailable, TruckAssigned, TruckMaintenance:
		return status, nil
	default:
		return "", fmt.Errorf("availability status %q: %w", s, utils.ErrInvalidArgument)
	}
}

type Truck struct {
	Base
	TruckNumber        string             `db:"truck_number"`
	Type               string             `db:"type"`
	Capacity           decimal.Decimal    `db:"capacity"`
	AvailabilityStatus AvailabilityStatus `db:"availability_status"`
}
