package repository

import (
	"context"
	"fmt"

	"truck-booking/internal/data/entity"
	"truck-booking/pkg/database"
	"truck-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TruckRepository interface {
	Create(ctx context.Context, truck *entity.Truck) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Truck, error)
	FindByNumber(ctx context.Context, truckNumber string) (*entity.Truck, error)
	FindAll(ctx context.Context, status *entity.AvailabilityStatus) ([]*entity.Truck, error)
	Update(ctx context.Context, truck *entity.Truck) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type truckRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTruckRepository(db database.PgxIface, log *zap.Logger) TruckRepository {
	return &truckRepository{
		db:  db,
		log: log.With(zap.String("repository", "truck")),
	}
}

func (r *truckRepository) Create(ctx context.Context, truck *entity.Truck) error {
	query := `
		INSERT INTO trucks (id, truck_number, type, capacity, availability_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		truck.ID,
		truck.TruckNumber,
		truck.Type,
		truck.Capacity,
		truck.AvailabilityStatus,
		truck.CreatedAt,
		truck.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create truck",
			zap.Error(err),
			zap.String("truck_number", truck.TruckNumber),
		)
		return fmt.Errorf("create truck %s: %w", truck.TruckNumber, err)
	}

	return nil
}

func (r *truckRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Truck, error) {
	query := `
		SELECT id, truck_number, type, capacity, availability_status, created_at, updated_at
		FROM trucks
		WHERE id = $1
	`

	var truck entity.Truck
	err := r.db.QueryRow(ctx, query, id).Scan(
		&truck.ID,
		&truck.TruckNumber,
		&truck.Type,
		&truck.Capacity,
		&truck.AvailabilityStatus,
		&truck.CreatedAt,
		&truck.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find truck by ID",
			zap.Error(err),
			zap.String("truck_id", id.String()),
		)
		return nil, fmt.Errorf("find truck by ID %s: %w", id.String(), err)
	}

	return &truck, nil
}

func (r *truckRepository) FindByNumber(ctx context.Context, truckNumber string) (*entity.Truck, error) {
	query := `
		SELECT id, truck_number, type, capacity, availability_status, created_at, updated_at
		FROM trucks
		WHERE truck_number = $1
	`

	var truck entity.Truck
	err := r.db.QueryRow(ctx, query, truckNumber).Scan(
		&truck.ID,
		&truck.TruckNumber,
		&truck.Type,
		&truck.Capacity,
		&truck.AvailabilityStatus,
		&truck.CreatedAt,
		&truck.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find truck by number",
			zap.Error(err),
			zap.String("truck_number", truckNumber),
		)
		return nil, fmt.Errorf("find truck by number %s: %w", truckNumber, err)
	}

	return &truck, nil
}

// FindAll lists trucks, optionally filtered by availability status.
func (r *truckRepository) FindAll(ctx context.Context, status *entity.AvailabilityStatus) ([]*entity.Truck, error) {
	query := `
		SELECT id, truck_number, type, capacity, availability_status, created_at, updated_at
		FROM trucks
		ORDER BY truck_number
	`
	args := []any{}

	if status != nil {
		query = `
			SELECT id, truck_number, type, capacity, availability_status, created_at, updated_at
			FROM trucks
			WHERE availability_status = $1
			ORDER BY truck_number
		`
		args = append(args, *status)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list trucks", zap.Error(err))
		return nil, fmt.Errorf("list trucks: %w", err)
	}
	defer rows.Close()

	var trucks []*entity.Truck
	for rows.Next() {
		var truck entity.Truck
		err := rows.Scan(
			&truck.ID,
			&truck.TruckNumber,
			&truck.Type,
			&truck.Capacity,
			&truck.AvailabilityStatus,
			&truck.CreatedAt,
			&truck.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan truck row", zap.Error(err))
			return nil, fmt.Errorf("scan truck row: %w", err)
		}
		trucks = append(trucks, &truck)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate truck rows: %w", err)
	}

	return trucks, nil
}

func (r *truckRepository) Update(ctx context.Context, truck *entity.Truck) error {
	query := `
		UPDATE trucks
		SET truck_number = $2, type = $3, capacity = $4, availability_status = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		truck.ID,
		truck.TruckNumber,
		truck.Type,
		truck.Capacity,
		truck.AvailabilityStatus,
		truck.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update truck",
			zap.Error(err),
			zap.String("truck_id", truck.ID.String()),
		)
		return fmt.Errorf("update truck %s: %w", truck.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("truck %s: %w", truck.ID.String(), utils.ErrNotFound)
	}

	return nil
}

func (r *truckRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM trucks WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete truck",
			zap.Error(err),
			zap.String("truck_id", id.String()),
		)
		return fmt.Errorf("delete truck %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("truck %s: %w", id.String(), utils.ErrNotFound)
	}

	r.log.Info("Truck deleted", zap.String("truck_id", id.String()))
	return nil
}
