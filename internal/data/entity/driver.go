package entity

import (
	"github.com/google/uuid"
)

type Driver struct {
	Base
	Name            string     `db:"name"`
	Phone           string     `db:"phone"`
	LicenseNumber   string     `db:"license_number"`
	AssignedTruckID *uuid.UUID `db:"assigned_truck_id"`
}
