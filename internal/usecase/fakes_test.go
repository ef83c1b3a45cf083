package usecase

import (
	"context"
	"fmt"
	"time"

	"truck-booking/internal/data/entity"
	"truck-booking/internal/data/repository"
	"truck-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory fakes for the repository interfaces. They return copies so that
// a service mutating an entity in memory does not leak into the store before
// the repository write commits.

type fakeUserRepo struct {
	users map[uuid.UUID]entity.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.users)), nil
}

type fakeTruckRepo struct {
	trucks map[uuid.UUID]entity.Truck
	err    error
}

func newFakeTruckRepo() *fakeTruckRepo {
	return &fakeTruckRepo{trucks: make(map[uuid.UUID]entity.Truck)}
}

func (f *fakeTruckRepo) Create(ctx context.Context, truck *entity.Truck) error {
	if f.err != nil {
		return f.err
	}
	f.trucks[truck.ID] = *truck
	return nil
}

func (f *fakeTruckRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Truck, error) {
	if f.err != nil {
		return nil, f.err
	}
	truck, ok := f.trucks[id]
	if !ok {
		return nil, nil
	}
	return &truck, nil
}

func (f *fakeTruckRepo) FindByNumber(ctx context.Context, truckNumber string) (*entity.Truck, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, truck := range f.trucks {
		if truck.TruckNumber == truckNumber {
			t := truck
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeTruckRepo) FindAll(ctx context.Context, status *entity.AvailabilityStatus) ([]*entity.Truck, error) {
	if f.err != nil {
		return nil, f.err
	}
	var trucks []*entity.Truck
	for _, truck := range f.trucks {
		if status != nil && truck.AvailabilityStatus != *status {
			continue
		}
		t := truck
		trucks = append(trucks, &t)
	}
	return trucks, nil
}

func (f *fakeTruckRepo) Update(ctx context.Context, truck *entity.Truck) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.trucks[truck.ID]; !ok {
		return notFoundErr("truck")
	}
	f.trucks[truck.ID] = *truck
	return nil
}

func (f *fakeTruckRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.trucks[id]; !ok {
		return notFoundErr("truck")
	}
	delete(f.trucks, id)
	return nil
}

type fakeDriverRepo struct {
	drivers map[uuid.UUID]entity.Driver
	err     error
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{drivers: make(map[uuid.UUID]entity.Driver)}
}

func (f *fakeDriverRepo) Create(ctx context.Context, driver *entity.Driver) error {
	if f.err != nil {
		return f.err
	}
	f.drivers[driver.ID] = *driver
	return nil
}

func (f *fakeDriverRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	if f.err != nil {
		return nil, f.err
	}
	driver, ok := f.drivers[id]
	if !ok {
		return nil, nil
	}
	return &driver, nil
}

func (f *fakeDriverRepo) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.Driver, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, driver := range f.drivers {
		if driver.LicenseNumber == licenseNumber {
			d := driver
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDriverRepo) FindAll(ctx context.Context) ([]*entity.Driver, error) {
	if f.err != nil {
		return nil, f.err
	}
	var drivers []*entity.Driver
	for _, driver := range f.drivers {
		d := driver
		drivers = append(drivers, &d)
	}
	return drivers, nil
}

func (f *fakeDriverRepo) Update(ctx context.Context, driver *entity.Driver) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.drivers[driver.ID]; !ok {
		return notFoundErr("driver")
	}
	f.drivers[driver.ID] = *driver
	return nil
}

func (f *fakeDriverRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.drivers[id]; !ok {
		return notFoundErr("driver")
	}
	delete(f.drivers, id)
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]entity.Payment
	err      error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]entity.Payment)}
}

func (f *fakePaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, payment := range f.payments {
		if payment.BookingID == bookingID {
			p := payment
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	if f.err != nil {
		return f.err
	}
	payment, ok := f.payments[id]
	if !ok {
		return notFoundErr("payment")
	}
	payment.Status = status
	payment.UpdatedAt = time.Now()
	f.payments[id] = payment
	return nil
}

// fakeBookingRepo shares the truck and payment stores so its transactional
// methods can apply (or, on an injected error, withhold) the cross-entity
// writes the real repository commits atomically.
type fakeBookingRepo struct {
	bookings map[uuid.UUID]entity.Booking
	trucks   *fakeTruckRepo
	payments *fakePaymentRepo

	createErr error
	assignErr error
	updateErr error
}

func newFakeBookingRepo(trucks *fakeTruckRepo, payments *fakePaymentRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uuid.UUID]entity.Booking),
		trucks:   trucks,
		payments: payments,
	}
}

func (f *fakeBookingRepo) CreateWithPayment(ctx context.Context, booking *entity.Booking, payment *entity.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings[booking.ID] = *booking
	f.payments.payments[payment.ID] = *payment
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			b := booking
			bookings = append(bookings, &b)
		}
	}
	return bookings, nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, booking := range f.bookings {
		b := booking
		bookings = append(bookings, &b)
	}
	if offset >= len(bookings) {
		return nil, nil
	}
	bookings = bookings[offset:]
	if limit < len(bookings) {
		bookings = bookings[:limit]
	}
	return bookings, nil
}

func (f *fakeBookingRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if booking.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) SumPriceByStatus(ctx context.Context, status entity.BookingStatus) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, booking := range f.bookings {
		if booking.Status == status {
			sum = sum.Add(booking.Price)
		}
	}
	return sum, nil
}

func (f *fakeBookingRepo) AssignTransport(ctx context.Context, booking *entity.Booking, truck *entity.Truck) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	f.bookings[booking.ID] = *booking
	f.trucks.trucks[truck.ID] = *truck
	return nil
}

func (f *fakeBookingRepo) UpdateStatusWithTruck(ctx context.Context, booking *entity.Booking, truck *entity.Truck) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.bookings[booking.ID] = *booking
	if truck != nil {
		f.trucks.trucks[truck.ID] = *truck
	}
	return nil
}

// notFoundErr mirrors the repository contract for writes against missing
// rows.
func notFoundErr(what string) error {
	return fmt.Errorf("%s: %w", what, utils.ErrNotFound)
}

// fixture bundles the fakes behind a *repository.Repository the services
// accept.
type fixture struct {
	repo     *repository.Repository
	users    *fakeUserRepo
	trucks   *fakeTruckRepo
	drivers  *fakeDriverRepo
	bookings *fakeBookingRepo
	payments *fakePaymentRepo
}

func newFixture() *fixture {
	users := newFakeUserRepo()
	trucks := newFakeTruckRepo()
	drivers := newFakeDriverRepo()
	payments := newFakePaymentRepo()
	bookings := newFakeBookingRepo(trucks, payments)

	return &fixture{
		repo: &repository.Repository{
			User:    users,
			Truck:   trucks,
			Driver:  drivers,
			Booking: bookings,
			Payment: payments,
		},
		users:    users,
		trucks:   trucks,
		drivers:  drivers,
		bookings: bookings,
		payments: payments,
	}
}

func (f *fixture) seedUser(email string) *entity.User {
	now := time.Now()
	user := entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$invalidhashforseededusers000000000000000000000000000",
		Role:         entity.RoleUser,
	}
	f.users.users[user.ID] = user
	return &user
}

func (f *fixture) seedTruck(number string, status entity.AvailabilityStatus) *entity.Truck {
	now := time.Now()
	truck := entity.Truck{
		Base:               entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		TruckNumber:        number,
		Type:               "Flatbed",
		Capacity:           decimal.RequireFromString("20.00"),
		AvailabilityStatus: status,
	}
	f.trucks.trucks[truck.ID] = truck
	return &truck
}

func (f *fixture) seedDriver(license string) *entity.Driver {
	now := time.Now()
	driver := entity.Driver{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:          "Test Driver",
		Phone:         "555-0100",
		LicenseNumber: license,
	}
	f.drivers.drivers[driver.ID] = driver
	return &driver
}

func (f *fixture) seedBooking(userID uuid.UUID, status entity.BookingStatus, price string) *entity.Booking {
	now := time.Now()
	booking := entity.Booking{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:         userID,
		PickupLocation: "Chicago",
		DropLocation:   "Denver",
		LoadType:       "Steel",
		Weight:         decimal.RequireFromString("10.00"),
		Distance:       decimal.RequireFromString("20.00"),
		Price:          decimal.RequireFromString(price),
		Status:         status,
		BookingDate:    now,
	}
	f.bookings.bookings[booking.ID] = booking
	return &booking
}

func (f *fixture) seedPayment(bookingID uuid.UUID, amount string, status entity.PaymentStatus) *entity.Payment {
	now := time.Now()
	payment := entity.Payment{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		BookingID: bookingID,
		Amount:    decimal.RequireFromString(amount),
		Status:    status,
	}
	f.payments.payments[payment.ID] = payment
	return &payment
}

// stubDistance is a DistanceProvider returning a fixed value or error.
type stubDistance struct {
	km  decimal.Decimal
	err error
}

func (s *stubDistance) Estimate(ctx context.Context, origin, destination string) (decimal.Decimal, error) {
	if s.err != nil {
		return decimal.Zero, s.err
	}
	return s.km, nil
}

// stubNotifier records confirmation attempts and can fail on demand.
type stubNotifier struct {
	err       error
	calls     int
	lastEmail string
}

func (s *stubNotifier) SendBookingConfirmation(ctx context.Context, toEmail string, booking *entity.Booking) error {
	s.calls++
	s.lastEmail = toEmail
	return s.err
}
