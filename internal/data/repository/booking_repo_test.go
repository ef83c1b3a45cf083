package repository

import (
	"errors"
	"testing"
	"time"

	"truck-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRows replays a fixed set of bookings and can report a mid-iteration
// error the way a dropped connection would: Next() stops returning rows and
// the failure only surfaces through Err().
type stubRows struct {
	bookings []entity.Booking
	iterErr  error
	idx      int
}

func (r *stubRows) Next() bool {
	if r.idx < len(r.bookings) {
		r.idx++
		return true
	}
	return false
}

func (r *stubRows) Scan(dest ...any) error {
	b := r.bookings[r.idx-1]
	*(dest[0].(*uuid.UUID)) = b.ID
	*(dest[1].(*uuid.UUID)) = b.UserID
	*(dest[2].(**uuid.UUID)) = b.TruckID
	*(dest[3].(**uuid.UUID)) = b.DriverID
	*(dest[4].(*string)) = b.PickupLocation
	*(dest[5].(*string)) = b.DropLocation
	*(dest[6].(*string)) = b.LoadType
	*(dest[7].(*decimal.Decimal)) = b.Weight
	*(dest[8].(*decimal.Decimal)) = b.Distance
	*(dest[9].(*decimal.Decimal)) = b.Price
	*(dest[10].(*entity.BookingStatus)) = b.Status
	*(dest[11].(*time.Time)) = b.BookingDate
	*(dest[12].(*time.Time)) = b.CreatedAt
	*(dest[13].(*time.Time)) = b.UpdatedAt
	return nil
}

func (r *stubRows) Err() error                                   { return r.iterErr }
func (r *stubRows) Close()                                       {}
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Values() ([]any, error)                       { return nil, nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

func testBooking() entity.Booking {
	now := time.Now()
	return entity.Booking{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:         uuid.New(),
		PickupLocation: "Chicago",
		DropLocation:   "Denver",
		LoadType:       "Steel",
		Weight:         decimal.RequireFromString("10.00"),
		Distance:       decimal.RequireFromString("20.00"),
		Price:          decimal.RequireFromString("150.00"),
		Status:         entity.BookingPending,
		BookingDate:    now,
	}
}

func TestCollectBookings(t *testing.T) {
	first := testBooking()
	second := testBooking()

	bookings, err := collectBookings(&stubRows{bookings: []entity.Booking{first, second}})
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, first.ID, bookings[0].ID)
	assert.Equal(t, second.ID, bookings[1].ID)
}

func TestCollectBookings_IterationErrorIsNotATruncatedResult(t *testing.T) {
	rows := &stubRows{
		bookings: []entity.Booking{testBooking()},
		iterErr:  errors.New("connection reset"),
	}

	bookings, err := collectBookings(rows)
	require.Error(t, err)
	assert.Nil(t, bookings)
}
