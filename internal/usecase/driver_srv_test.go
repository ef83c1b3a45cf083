package usecase

import (
	"context"
	"testing"

	"truck-booking/internal/data/entity"
	"truck-booking/internal/dto/request"
	"truck-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDriverService(f *fixture) DriverService {
	return NewDriverService(f.drivers, f.trucks, zap.NewNop())
}

func TestDriverService_CreateDriver(t *testing.T) {
	f := newFixture()
	truck := f.seedTruck("TN-01", entity.TruckAvailable)
	svc := newDriverService(f)

	truckID := truck.ID.String()
	resp, err := svc.CreateDriver(context.Background(), &request.DriverRequest{
		Name:            "Pat Doe",
		Phone:           "555-0100",
		LicenseNumber:   "DL-100",
		AssignedTruckID: &truckID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Pat Doe", resp.Name)
	require.NotNil(t, resp.AssignedTruckID)
	assert.Equal(t, truckID, *resp.AssignedTruckID)
	require.NotNil(t, resp.AssignedTruckNumber)
	assert.Equal(t, "TN-01", *resp.AssignedTruckNumber)
}

func TestDriverService_CreateDriver_DuplicateLicense(t *testing.T) {
	f := newFixture()
	f.seedDriver("DL-100")
	svc := newDriverService(f)

	_, err := svc.CreateDriver(context.Background(), &request.DriverRequest{
		Name:          "Pat Doe",
		Phone:         "555-0100",
		LicenseNumber: "DL-100",
	})

	assert.ErrorIs(t, err, utils.ErrAlreadyExists)
	assert.Len(t, f.drivers.drivers, 1)
}

func TestDriverService_CreateDriver_UnknownTruck(t *testing.T) {
	f := newFixture()
	svc := newDriverService(f)

	missing := "00000000-0000-4000-8000-000000000001"
	_, err := svc.CreateDriver(context.Background(), &request.DriverRequest{
		Name:            "Pat Doe",
		Phone:           "555-0100",
		LicenseNumber:   "DL-100",
		AssignedTruckID: &missing,
	})

	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Empty(t, f.drivers.drivers)
}

func TestDriverService_UpdateDriver_AbsentTruckClearsAssignment(t *testing.T) {
	f := newFixture()
	truck := f.seedTruck("TN-01", entity.TruckAvailable)
	driver := f.seedDriver("DL-100")

	assigned := f.drivers.drivers[driver.ID]
	assigned.AssignedTruckID = &truck.ID
	f.drivers.drivers[driver.ID] = assigned

	svc := newDriverService(f)

	resp, err := svc.UpdateDriver(context.Background(), driver.ID.String(), &request.DriverRequest{
		Name:          "Pat Doe",
		Phone:         "555-0199",
		LicenseNumber: "DL-100",
	})

	require.NoError(t, err)
	assert.Nil(t, resp.AssignedTruckID)
	assert.Nil(t, f.drivers.drivers[driver.ID].AssignedTruckID)
}

func TestDriverService_UpdateDriver_LicenseCollision(t *testing.T) {
	f := newFixture()
	driver := f.seedDriver("DL-100")
	f.seedDriver("DL-200")
	svc := newDriverService(f)

	_, err := svc.UpdateDriver(context.Background(), driver.ID.String(), &request.DriverRequest{
		Name:          "Pat Doe",
		Phone:         "555-0100",
		LicenseNumber: "DL-200",
	})

	assert.ErrorIs(t, err, utils.ErrAlreadyExists)
	assert.Equal(t, "DL-100", f.drivers.drivers[driver.ID].LicenseNumber)
}

func TestDriverService_DeleteDriver_Missing(t *testing.T) {
	f := newFixture()
	svc := newDriverService(f)

	err := svc.DeleteDriver(context.Background(), "00000000-0000-4000-8000-000000000001")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestDriverService_GetDrivers(t *testing.T) {
	f := newFixture()
	f.seedDriver("DL-100")
	f.seedDriver("DL-200")
	svc := newDriverService(f)

	drivers, err := svc.GetDrivers(context.Background())
	require.NoError(t, err)
	assert.Len(t, drivers, 2)
}
