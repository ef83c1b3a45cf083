package usecase

import (
	"context"
	"fmt"
	"time"

	"truck-booking/internal/data/entity"
	"truck-booking/internal/data/repository"
	"truck-booking/internal/dto/request"
	"truck-booking/internal/dto/response"
	"truck-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DriverService interface {
	CreateDriver(ctx context.Context, req *request.DriverRequest) (*response.DriverResponse, error)
	GetDriverByID(ctx context.Context, driverID string) (*response.DriverResponse, error)
	GetDrivers(ctx context.Context) ([]response.DriverResponse, error)
	UpdateDriver(ctx context.Context, driverID string, req *request.DriverRequest) (*response.DriverResponse, error)
	DeleteDriver(ctx context.Context, driverID string) error
}

type driverService struct {
	drivers repository.DriverRepository
	trucks  repository.TruckRepository
	log     *zap.Logger
}

func NewDriverService(drivers repository.DriverRepository, trucks repository.TruckRepository, log *zap.Logger) DriverService {
	return &driverService{
		drivers: drivers,
		trucks:  trucks,
		log:     log.With(zap.String("service", "driver")),
	}
}

func (s *driverService) CreateDriver(ctx context.Context, req *request.DriverRequest) (*response.DriverResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create driver validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidArgument)
	}

	existing, err := s.drivers.FindByLicenseNumber(ctx, req.LicenseNumber)
	if err != nil {
		return nil, fmt.Errorf("check license number: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("license number %s: %w", req.LicenseNumber, utils.ErrAlreadyExists)
	}

	assignedTruckID, err := s.resolveAssignedTruck(ctx, req.AssignedTruckID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	driver := &entity.Driver{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            req.Name,
		Phone:           req.Phone,
		LicenseNumber:   req.LicenseNumber,
		AssignedTruckID: assignedTruckID,
	}

	if err := s.drivers.Create(ctx, driver); err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}

	s.log.Info("Driver created",
		zap.String("driver_id", driver.ID.String()),
		zap.String("license_number", driver.LicenseNumber),
	)

	return s.toResponse(ctx, driver), nil
}

func (s *driverService) GetDriverByID(ctx context.Context, driverID string) (*response.DriverResponse, error) {
	driver, err := s.findDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, driver), nil
}

func (s *driverService) GetDrivers(ctx context.Context) ([]response.DriverResponse, error) {
	drivers, err := s.drivers.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list drivers", zap.Error(err))
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	responses := make([]response.DriverResponse, len(drivers))
	for i, driver := range drivers {
		responses[i] = *s.toResponse(ctx, driver)
	}

	return responses, nil
}

// UpdateDriver overwrites driver fields. An absent assigned_truck_id clears
// any existing assignment rather than leaving it untouched.
func (s *driverService) UpdateDriver(ctx context.Context, driverID string, req *request.DriverRequest) (*response.DriverResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update driver validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidArgument)
	}

	driver, err := s.findDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if req.LicenseNumber != driver.LicenseNumber {
		existing, err := s.drivers.FindByLicenseNumber(ctx, req.LicenseNumber)
		if err != nil {
			return nil, fmt.Errorf("check license number: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("license number %s: %w", req.LicenseNumber, utils.ErrAlreadyExists)
		}
	}

	assignedTruckID, err := s.resolveAssignedTruck(ctx, req.AssignedTruckID)
	if err != nil {
		return nil, err
	}

	driver.Name = req.Name
	driver.Phone = req.Phone
	driver.LicenseNumber = req.LicenseNumber
	driver.AssignedTruckID = assignedTruckID
	driver.UpdatedAt = time.Now()

	if err := s.drivers.Update(ctx, driver); err != nil {
		return nil, fmt.Errorf("update driver: %w", err)
	}

	s.log.Info("Driver updated", zap.String("driver_id", driver.ID.String()))

	return s.toResponse(ctx, driver), nil
}

func (s *driverService) DeleteDriver(ctx context.Context, driverID string) error {
	id, err := uuid.Parse(driverID)
	if err != nil {
		return fmt.Errorf("driver ID %s: %w", driverID, utils.ErrInvalidArgument)
	}

	if err := s.drivers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete driver: %w", err)
	}

	return nil
}

// resolveAssignedTruck returns the truck id when requested, nil to clear.
// The referenced truck must exist.
func (s *driverService) resolveAssignedTruck(ctx context.Context, truckID *string) (*uuid.UUID, error) {
	if truckID == nil {
		return nil, nil
	}

	id, err := uuid.Parse(*truckID)
	if err != nil {
		return nil, fmt.Errorf("truck ID %s: %w", *truckID, utils.ErrInvalidArgument)
	}

	truck, err := s.trucks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve truck: %w", err)
	}
	if truck == nil {
		return nil, fmt.Errorf("truck %s: %w", *truckID, utils.ErrNotFound)
	}

	return &truck.ID, nil
}

func (s *driverService) findDriver(ctx context.Context, driverID string) (*entity.Driver, error) {
	id, err := uuid.Parse(driverID)
	if err != nil {
		return nil, fmt.Errorf("driver ID %s: %w", driverID, utils.ErrInvalidArgument)
	}

	driver, err := s.drivers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve driver: %w", err)
	}
	if driver == nil {
		return nil, fmt.Errorf("driver %s: %w", driverID, utils.ErrNotFound)
	}

	return driver, nil
}

func (s *driverService) toResponse(ctx context.Context, driver *entity.Driver) *response.DriverResponse {
	var truck *entity.Truck
	if driver.AssignedTruckID != nil {
		truck, _ = s.trucks.FindByID(ctx, *driver.AssignedTruckID)
	}

	resp := response.DriverToResponse(driver, truck)
	return &resp
}
