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

type TruckService interface {
	CreateTruck(ctx context.Context, req *request.TruckRequest) (*response.TruckResponse, error)
	GetTruckByID(ctx context.Context, truckID string) (*response.TruckResponse, error)
	GetTrucks(ctx context.Context, statusFilter string) ([]response.TruckResponse, error)
	UpdateTruck(ctx context.Context, truckID string, req *request.TruckRequest) (*response.TruckResponse, error)
	DeleteTruck(ctx context.Context, truckID string) error
}

type truckService struct {
	repo repository.TruckRepository
	log  *zap.Logger
}

func NewTruckService(repo repository.TruckRepository, log *zap.Logger) TruckService {
	return &truckService{
		repo: repo,
		log:  log.With(zap.String("service", "truck")),
	}
}

func (s *truckService) CreateTruck(ctx context.Context, req *request.TruckRequest) (*response.TruckResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create truck validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidArgument)
	}

	if !req.Capacity.IsPositive() {
		return nil, fmt.Errorf("capacity must be positive: %w", utils.ErrInvalidArgument)
	}

	existing, err := s.repo.FindByNumber(ctx, req.TruckNumber)
	if err != nil {
		return nil, fmt.Errorf("check truck number: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("truck number %s: %w", req.TruckNumber, utils.ErrAlreadyExists)
	}

	now := time.Now()
	truck := &entity.Truck{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TruckNumber:        req.TruckNumber,
		Type:               req.Type,
		Capacity:           req.Capacity,
		AvailabilityStatus: entity.TruckAvailable,
	}

	if err := s.repo.Create(ctx, truck); err != nil {
		return nil, fmt.Errorf("create truck: %w", err)
	}

	s.log.Info("Truck created",
		zap.String("truck_id", truck.ID.String()),
		zap.String("truck_number", truck.TruckNumber),
	)

	resp := response.TruckToResponse(truck)
	return &resp, nil
}

func (s *truckService) GetTruckByID(ctx context.Context, truckID string) (*response.TruckResponse, error) {
	truck, err := s.findTruck(ctx, truckID)
	if err != nil {
		return nil, err
	}

	resp := response.TruckToResponse(truck)
	return &resp, nil
}

func (s *truckService) GetTrucks(ctx context.Context, statusFilter string) ([]response.TruckResponse, error) {
	var status *entity.AvailabilityStatus
	if statusFilter != "" {
		parsed, err := entity.ParseAvailabilityStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}

	trucks, err := s.repo.FindAll(ctx, status)
	if err != nil {
		s.log.Error("Failed to list trucks", zap.Error(err))
		return nil, fmt.Errorf("list trucks: %w", err)
	}

	responses := make([]response.TruckResponse, len(trucks))
	for i, truck := range trucks {
		responses[i] = response.TruckToResponse(truck)
	}

	return responses, nil
}

func (s *truckService) UpdateTruck(ctx context.Context, truckID string, req *request.TruckRequest) (*response.TruckResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update truck validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidArgument)
	}

	if !req.Capacity.IsPositive() {
		return nil, fmt.Errorf("capacity must be positive: %w", utils.ErrInvalidArgument)
	}

	truck, err := s.findTruck(ctx, truckID)
	if err != nil {
		return nil, err
	}

	// New truck number must stay unique across the fleet
	if req.TruckNumber != truck.TruckNumber {
		existing, err := s.repo.FindByNumber(ctx, req.TruckNumber)
		if err != nil {
			return nil, fmt.Errorf("check truck number: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("truck number %s: %w", req.TruckNumber, utils.ErrAlreadyExists)
		}
	}

	truck.TruckNumber = req.TruckNumber
	truck.Type = req.Type
	truck.Capacity = req.Capacity
	truck.UpdatedAt = time.Now()

	if req.AvailabilityStatus != nil {
		status, err := entity.ParseAvailabilityStatus(*req.AvailabilityStatus)
		if err != nil {
			return nil, err
		}
		truck.AvailabilityStatus = status
	}

	if err := s.repo.Update(ctx, truck); err != nil {
		return nil, fmt.Errorf("update truck: %w", err)
	}

	s.log.Info("Truck updated",
		zap.String("truck_id", truck.ID.String()),
		zap.String("truck_number", truck.TruckNumber),
	)

	resp := response.TruckToResponse(truck)
	return &resp, nil
}

func (s *truckService) DeleteTruck(ctx context.Context, truckID string) error {
	id, err := uuid.Parse(truckID)
	if err != nil {
		return fmt.Errorf("truck ID %s: %w", truckID, utils.ErrInvalidArgument)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete truck: %w", err)
	}

	return nil
}

func (s *truckService) findTruck(ctx context.Context, truckID string) (*entity.Truck, error) {
	id, err := uuid.Parse(truckID)
	if err != nil {
		return nil, fmt.Errorf("truck ID %s: %w", truckID, utils.ErrInvalidArgument)
	}

	truck, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve truck: %w", err)
	}
	if truck == nil {
		return nil, fmt.Errorf("truck %s: %w", truckID, utils.ErrNotFound)
	}

	return truck, nil
}
