package response

import (
	"truck-booking/internal/data/entity"
)

type DriverResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Phone               string  `json:"phone"`
	LicenseNumber       string  `json:"license_number"`
	AssignedTruckID     *string `json:"assigned_truck_id,omitempty"`
	AssignedTruckNumber *string `json:"assigned_truck_number,omitempty"`
}

// DriverToResponse builds the projection; truck is the driver's assigned
// truck, nil when unassigned.
func DriverToResponse(driver *entity.Driver, truck *entity.Truck) DriverResponse {
	resp := DriverResponse{
		ID:            driver.ID.String(),
		Name:          driver.Name,
		Phone:         driver.Phone,
		LicenseNumber: driver.LicenseNumber,
	}

	if driver.AssignedTruckID != nil {
		id := driver.AssignedTruckID.String()
		resp.AssignedTruckID = &id
	}

	if truck != nil {
		number := truck.TruckNumber
		resp.AssignedTruckNumber = &number
	}

	return resp
}
