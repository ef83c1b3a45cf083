package usecase

import (
	"context"
	"testing"

	"truck-booking/internal/data/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardService_Stats(t *testing.T) {
	f := newFixture()
	user := f.seedUser("one@example.com")
	f.seedUser("two@example.com")

	f.seedBooking(user.ID, entity.BookingPending, "100.00")
	f.seedBooking(user.ID, entity.BookingDelivered, "150.50")
	f.seedBooking(user.ID, entity.BookingDelivered, "200.00")
	f.seedBooking(user.ID, entity.BookingCancelled, "999.00")

	svc := NewDashboardService(f.repo, zap.NewNop())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(4), stats.TotalBookings)
	assert.Equal(t, int64(1), stats.PendingBookings)
	assert.Equal(t, int64(2), stats.CompletedBookings)
	// Revenue counts DELIVERED bookings only
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("350.50")),
		"revenue = %s", stats.TotalRevenue)
}

func TestDashboardService_Stats_EmptyStore(t *testing.T) {
	f := newFixture()
	svc := NewDashboardService(f.repo, zap.NewNop())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalUsers)
	assert.Equal(t, int64(0), stats.TotalBookings)
	assert.True(t, stats.TotalRevenue.IsZero())
}
