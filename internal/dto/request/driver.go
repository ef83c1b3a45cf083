package request

type DriverRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	Phone         string `json:"phone" validate:"required,max=20"`
	LicenseNumber string `json:"license_number" validate:"required,max=50"`
	// Absent on update clears any existing assignment.
	AssignedTruckID *string `json:"assigned_truck_id,omitempty" validate:"omitempty,uuid4"`
}
