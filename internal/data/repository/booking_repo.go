package repository

import (
	"context"
	"fmt"

	"truck-booking/internal/data/entity"
	"truck-booking/pkg/database"
	"truck-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const bookingColumns = `id, user_id, truck_id, driver_id, pickup_location, drop_location,
	load_type, weight, distance, price, status, booking_date, created_at, updated_at`

type BookingRepository interface {
	// CreateWithPayment persists the booking and its payment record as one
	// transaction.
	CreateWithPayment(ctx context.Context, booking *entity.Booking, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error)
	SumPriceByStatus(ctx context.Context, status entity.BookingStatus) (decimal.Decimal, error)

	// AssignTransport commits the booking assignment and the truck status
	// flip as one transaction. A failure must leave neither side applied.
	AssignTransport(ctx context.Context, booking *entity.Booking, truck *entity.Truck) error

	// UpdateStatusWithTruck commits the booking status and, when truck is
	// non-nil, the truck release as one transaction.
	UpdateStatusWithTruck(ctx context.Context, booking *entity.Booking, truck *entity.Truck) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) CreateWithPayment(ctx context.Context, booking *entity.Booking, payment *entity.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	bookingQuery := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = tx.Exec(ctx, bookingQuery,
		booking.ID,
		booking.UserID,
		booking.TruckID,
		booking.DriverID,
		booking.PickupLocation,
		booking.DropLocation,
		booking.LoadType,
		booking.Weight,
		booking.Distance,
		booking.Price,
		booking.Status,
		booking.BookingDate,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	paymentQuery := `
		INSERT INTO payments (id, booking_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = tx.Exec(ctx, paymentQuery,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("create payment for booking %s: %w", booking.ID.String(), err)
	}

	return tx.Commit(ctx)
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE status = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count bookings by status %s: %w", string(status), err)
	}

	return count, nil
}

func (r *bookingRepository) SumPriceByStatus(ctx context.Context, status entity.BookingStatus) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(price), 0) FROM bookings WHERE status = $1`

	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, status).Scan(&sum); err != nil {
		r.log.Error("Failed to sum booking prices by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return decimal.Zero, fmt.Errorf("sum booking prices by status %s: %w", string(status), err)
	}

	return sum, nil
}

func (r *bookingRepository) AssignTransport(ctx context.Context, booking *entity.Booking, truck *entity.Truck) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin assign tx: %w", err)
	}
	defer tx.Rollback(ctx)

	bookingQuery := `
		UPDATE bookings
		SET truck_id = $2, driver_id = $3, status = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, bookingQuery,
		booking.ID,
		booking.TruckID,
		booking.DriverID,
		booking.Status,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update booking assignment",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("assign booking %s: %w", booking.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", booking.ID.String(), utils.ErrNotFound)
	}

	truckQuery := `UPDATE trucks SET availability_status = $2, updated_at = $3 WHERE id = $1`

	result, err = tx.Exec(ctx, truckQuery, truck.ID, truck.AvailabilityStatus, truck.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update truck availability",
			zap.Error(err),
			zap.String("truck_id", truck.ID.String()),
		)
		return fmt.Errorf("update truck %s availability: %w", truck.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("truck %s: %w", truck.ID.String(), utils.ErrNotFound)
	}

	return tx.Commit(ctx)
}

func (r *bookingRepository) UpdateStatusWithTruck(ctx context.Context, booking *entity.Booking, truck *entity.Truck) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin status tx: %w", err)
	}
	defer tx.Rollback(ctx)

	bookingQuery := `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := tx.Exec(ctx, bookingQuery, booking.ID, booking.Status, booking.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("status", string(booking.Status)),
		)
		return fmt.Errorf("update booking %s status: %w", booking.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", booking.ID.String(), utils.ErrNotFound)
	}

	if truck != nil {
		truckQuery := `UPDATE trucks SET availability_status = $2, updated_at = $3 WHERE id = $1`

		if _, err := tx.Exec(ctx, truckQuery, truck.ID, truck.AvailabilityStatus, truck.UpdatedAt); err != nil {
			r.log.Error("Failed to release truck",
				zap.Error(err),
				zap.String("truck_id", truck.ID.String()),
			)
			return fmt.Errorf("release truck %s: %w", truck.ID.String(), err)
		}
	}

	return tx.Commit(ctx)
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TruckID,
		&booking.DriverID,
		&booking.PickupLocation,
		&booking.DropLocation,
		&booking.LoadType,
		&booking.Weight,
		&booking.Distance,
		&booking.Price,
		&booking.Status,
		&booking.BookingDate,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}
