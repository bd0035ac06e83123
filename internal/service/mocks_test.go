package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Each method is a function
// field; set only the ones a test needs. Calling an unset one panics, which
// doubles as an assertion that the method was not expected to be called.

type mockDestinationRepo struct {
	create  func(ctx context.Context, d domain.Destination) (domain.Destination, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Destination, error)
	list    func(ctx context.Context, limit int) ([]domain.Destination, error)
}

func (m *mockDestinationRepo) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	return m.create(ctx, d)
}
func (m *mockDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	return m.getByID(ctx, id)
}
func (m *mockDestinationRepo) List(ctx context.Context, limit int) ([]domain.Destination, error) {
	return m.list(ctx, limit)
}

var _ repo.DestinationRepo = (*mockDestinationRepo)(nil)

type mockPackageRepo struct {
	create                     func(ctx context.Context, p domain.Package) (domain.Package, error)
	getByID                    func(ctx context.Context, id uuid.UUID) (domain.Package, error)
	listPaged                  func(ctx context.Context, f domain.PackageFilter, p domain.PaginationParams) ([]domain.Package, int64, error)
	listAvailableByDestination func(ctx context.Context, destinationID uuid.UUID) ([]domain.Package, error)
	listRelated                func(ctx context.Context, p domain.Package, limit int) ([]domain.Package, error)
	listUpcoming               func(ctx context.Context, limit int) ([]domain.Package, error)
}

func (m *mockPackageRepo) Create(ctx context.Context, p domain.Package) (domain.Package, error) {
	return m.create(ctx, p)
}
func (m *mockPackageRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error) {
	return m.getByID(ctx, id)
}
func (m *mockPackageRepo) ListPaged(ctx context.Context, f domain.PackageFilter, p domain.PaginationParams) ([]domain.Package, int64, error) {
	return m.listPaged(ctx, f, p)
}
func (m *mockPackageRepo) ListAvailableByDestination(ctx context.Context, destinationID uuid.UUID) ([]domain.Package, error) {
	return m.listAvailableByDestination(ctx, destinationID)
}
func (m *mockPackageRepo) ListRelated(ctx context.Context, p domain.Package, limit int) ([]domain.Package, error) {
	return m.listRelated(ctx, p, limit)
}
func (m *mockPackageRepo) ListUpcoming(ctx context.Context, limit int) ([]domain.Package, error) {
	return m.listUpcoming(ctx, limit)
}

var _ repo.PackageRepo = (*mockPackageRepo)(nil)

type mockBookingRepo struct {
	reserve         func(ctx context.Context, req domain.ReserveRequest) (domain.Booking, error)
	getByIDForUser  func(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error)
	listByUserPaged func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Booking, int64, error)
	cancel          func(ctx context.Context, id, userID uuid.UUID, from domain.BookingStatus) (domain.Booking, error)
}

func (m *mockBookingRepo) Reserve(ctx context.Context, req domain.ReserveRequest) (domain.Booking, error) {
	return m.reserve(ctx, req)
}
func (m *mockBookingRepo) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error) {
	return m.getByIDForUser(ctx, id, userID)
}
func (m *mockBookingRepo) ListByUserPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Booking, int64, error) {
	return m.listByUserPaged(ctx, userID, p)
}
func (m *mockBookingRepo) Cancel(ctx context.Context, id, userID uuid.UUID, from domain.BookingStatus) (domain.Booking, error) {
	return m.cancel(ctx, id, userID, from)
}

var _ repo.BookingRepo = (*mockBookingRepo)(nil)

type mockUserRepo struct {
	create        func(ctx context.Context, u domain.User) (domain.User, error)
	getByID       func(ctx context.Context, id uuid.UUID) (domain.User, error)
	getByUsername func(ctx context.Context, username string) (domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.create(ctx, u)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return m.getByUsername(ctx, username)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

type mockProfileRepo struct {
	getOrCreate func(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	update      func(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

func (m *mockProfileRepo) GetOrCreate(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	return m.getOrCreate(ctx, userID)
}
func (m *mockProfileRepo) Update(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	return m.update(ctx, p)
}

var _ repo.ProfileRepo = (*mockProfileRepo)(nil)
