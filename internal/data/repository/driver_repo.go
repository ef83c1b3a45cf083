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

type DriverRepository interface {
	Create(ctx context.Context, driver *entity.Driver) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error)
	FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.Driver, error)
	FindAll(ctx context.Context) ([]*entity.Driver, error)
	Update(ctx context.Context, driver *entity.Driver) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type driverRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDriverRepository(db database.PgxIface, log *zap.Logger) DriverRepository {
	return &driverRepository{
		db:  db,
		log: log.With(zap.String("repository", "driver")),
	}
}

func (r *driverRepository) Create(ctx context.Context, driver *entity.Driver) error {
	query := `
		INSERT INTO drivers (id, name, phone, license_number, assigned_truck_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		driver.ID,
		driver.Name,
		driver.Phone,
		driver.LicenseNumber,
		driver.AssignedTruckID,
		driver.CreatedAt,
		driver.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create driver",
			zap.Error(err),
			zap.String("license_number", driver.LicenseNumber),
		)
		return fmt.Errorf("create driver %s: %w", driver.LicenseNumber, err)
	}

	return nil
}

func (r *driverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	query := `
		SELECT id, name, phone, license_number, assigned_truck_id, created_at, updated_at
		FROM drivers
		WHERE id = $1
	`

	var driver entity.Driver
	err := r.db.QueryRow(ctx, query, id).Scan(
		&driver.ID,
		&driver.Name,
		&driver.Phone,
		&driver.LicenseNumber,
		&driver.AssignedTruckID,
		&driver.CreatedAt,
		&driver.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find driver by ID",
			zap.Error(err),
			zap.String("driver_id", id.String()),
		)
		return nil, fmt.Errorf("find driver by ID %s: %w", id.String(), err)
	}

	return &driver, nil
}

func (r *driverRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.Driver, error) {
	query := `
		SELECT id, name, phone, license_number, assigned_truck_id, created_at, updated_at
		FROM drivers
		WHERE license_number = $1
	`

	var driver entity.Driver
	err := r.db.QueryRow(ctx, query, licenseNumber).Scan(
		&driver.ID,
		&driver.Name,
		&driver.Phone,
		&driver.LicenseNumber,
		&driver.AssignedTruckID,
		&driver.CreatedAt,
		&driver.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find driver by license number",
			zap.Error(err),
			zap.String("license_number", licenseNumber),
		)
		return nil, fmt.Errorf("find driver by license number %s: %w", licenseNumber, err)
	}

	return &driver, nil
}

func (r *driverRepository) FindAll(ctx context.Context) ([]*entity.Driver, error) {
	query := `
		SELECT id, name, phone, license_number, assigned_truck_id, created_at, updated_at
		FROM drivers
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list drivers", zap.Error(err))
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []*entity.Driver
	for rows.Next() {
		var driver entity.Driver
		err := rows.Scan(
			&driver.ID,
			&driver.Name,
			&driver.Phone,
			&driver.LicenseNumber,
			&driver.AssignedTruckID,
			&driver.CreatedAt,
			&driver.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan driver row", zap.Error(err))
			return nil, fmt.Errorf("scan driver row: %w", err)
		}
		drivers = append(drivers, &driver)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate driver rows: %w", err)
	}

	return drivers, nil
}

func (r *driverRepository) Update(ctx context.Context, driver *entity.Driver) error {
	query := `
		UPDATE drivers
		SET name = $2, phone = $3, license_number = $4, assigned_truck_id = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		driver.ID,
		driver.Name,
		driver.Phone,
		driver.LicenseNumber,
		driver.AssignedTruckID,
		driver.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update driver",
			zap.Error(err),
			zap.String("driver_id", driver.ID.String()),
		)
		return fmt.Errorf("update driver %s: %w", driver.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("driver %s: %w", driver.ID.String(), utils.ErrNotFound)
	}

	return nil
}

func (r *driverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM drivers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete driver",
			zap.Error(err),
			zap.String("driver_id", id.String()),
		)
		return fmt.Errorf("delete driver %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("driver %s: %w", id.String(), utils.ErrNotFound)
	}

	r.log.Info("Driver deleted", zap.String("driver_id", id.String()))
	return nil
}
