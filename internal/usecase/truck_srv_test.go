package usecase

import (
	"context"
	"testing"

	"truck-booking/internal/data/entity"
	"truck-booking/internal/dto/request"
	"truck-booking/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTruckService(f *fixture) TruckService {
	return NewTruckService(f.trucks, zap.NewNop())
}

func TestTruckService_CreateTruck(t *testing.T) {
	f := newFixture()
	svc := newTruckService(f)

	resp, err := svc.CreateTruck(context.Background(), &request.TruckRequest{
		TruckNumber: "TN-01",
		Type:        "Flatbed",
		Capacity:    decimal.RequireFromString("20.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "TN-01", resp.TruckNumber)
	// New trucks always start AVAILABLE
	assert.Equal(t, string(entity.TruckAvailable), resp.AvailabilityStatus)
}

func TestTruckService_CreateTruck_DuplicateNumber(t *testing.T) {
	f := newFixture()
	f.seedTruck("TN-01", entity.TruckAvailable)
	svc := newTruckService(f)

	_, err := svc.CreateTruck(context.Background(), &request.TruckRequest{
		TruckNumber: "TN-01",
		Type:        "Box",
		Capacity:    decimal.RequireFromString("10.00"),
	})

	assert.ErrorIs(t, err, utils.ErrAlreadyExists)
	assert.Len(t, f.trucks.trucks, 1)
}

func TestTruckService_CreateTruck_RejectsNonPositiveCapacity(t *testing.T) {
	f := newFixture()
	svc := newTruckService(f)

	_, err := svc.CreateTruck(context.Background(), &request.TruckRequest{
		TruckNumber: "TN-01",
		Type:        "Flatbed",
		Capacity:    decimal.Zero,
	})

	assert.ErrorIs(t, err, utils.ErrInvalidArgument)
}

func TestTruckService_GetTrucks_FiltersByStatus(t *testing.T) {
	f := newFixture()
	f.seedTruck("TN-01", entity.TruckAvailable)
	f.seedTruck("TN-02", entity.TruckAssigned)
	f.seedTruck("TN-03", entity.TruckAvailable)
	svc := newTruckService(f)

	all, err := svc.GetTrucks(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	available, err := svc.GetTrucks(context.Background(), "AVAILABLE")
	require.NoError(t, err)
	assert.Len(t, available, 2)

	_, err = svc.GetTrucks(context.Background(), "PARKED")
	assert.ErrorIs(t, err, utils.ErrInvalidArgument)
}

func TestTruckService_UpdateTruck(t *testing.T) {
	f := newFixture()
	truck := f.seedTruck("TN-01", entity.TruckAvailable)
	svc := newTruckService(f)

	maintenance := "MAINTENANCE"
	resp, err := svc.UpdateTruck(context.Background(), truck.ID.String(), &request.TruckRequest{
		TruckNumber:        "TN-01",
		Type:               "Refrigerated",
		Capacity:           decimal.RequireFromString("15.00"),
		AvailabilityStatus: &maintenance,
	})

	require.NoError(t, err)
	assert.Equal(t, "Refrigerated", resp.Type)
	assert.Equal(t, string(entity.TruckMaintenance), resp.AvailabilityStatus)
	assert.Equal(t, entity.TruckMaintenance, f.trucks.trucks[truck.ID].AvailabilityStatus)
}

func TestTruckService_UpdateTruck_NumberCollision(t *testing.T) {
	f := newFixture()
	truck := f.seedTruck("TN-01", entity.TruckAvailable)
	f.seedTruck("TN-02", entity.TruckAvailable)
	svc := newTruckService(f)

	_, err := svc.UpdateTruck(context.Background(), truck.ID.String(), &request.TruckRequest{
		TruckNumber: "TN-02",
		Type:        "Flatbed",
		Capacity:    decimal.RequireFromString("20.00"),
	})

	assert.ErrorIs(t, err, utils.ErrAlreadyExists)
	assert.Equal(t, "TN-01", f.trucks.trucks[truck.ID].TruckNumber)
}

func TestTruckService_DeleteTruck_Missing(t *testing.T) {
	f := newFixture()
	svc := newTruckService(f)

	err := svc.DeleteTruck(context.Background(), "00000000-0000-4000-8000-000000000001")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	err = svc.DeleteTruck(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrInvalidArgument)
}

func TestTruckService_GetTruckByID_Missing(t *testing.T) {
	f := newFixture()
	svc := newTruckService(f)

	_, err := svc.GetTruckByID(context.Background(), "00000000-0000-4000-8000-000000000001")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
