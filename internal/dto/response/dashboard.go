package response

import "github.com/shopspring/decimal"

type DashboardResponse struct {
	TotalUsers        int64           `json:"total_users"`
	TotalBookings     int64           `json:"total_bookings"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	PendingBookings   int64           `json:"pending_bookings"`
	CompletedBookings int64           `json:"completed_bookings"`
}
