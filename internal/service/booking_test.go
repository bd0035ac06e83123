package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/service"
)

// ---- helpers ---------------------------------------------------------------

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func packageWithSeats(seats int) domain.Package {
	return domain.Package{
		ID:             uuid.New(),
		Name:           "Fjord Cruise",
		Price:          10000, // 100.00
		AvailableSeats: seats,
		DepartureDate:  day(2030, time.June, 1),
		ReturnDate:     day(2030, time.June, 10),
	}
}

func reserveRequest(pkg domain.Package, travelers int) domain.ReserveRequest {
	return domain.ReserveRequest{
		PackageID:    pkg.ID,
		UserID:       uuid.New(),
		TravelDate:   day(2030, time.June, 5),
		Travelers:    travelers,
		ContactPhone: "555-0100",
		ContactEmail: "a@example.com",
	}
}

// inventory is an in-memory stand-in for the package and booking tables,
// applying the same guarded updates the Postgres repo does.
type inventory struct {
	pkg      domain.Package
	bookings map[uuid.UUID]domain.Booking
}

func newInventory(pkg domain.Package) *inventory {
	return &inventory{pkg: pkg, bookings: map[uuid.UUID]domain.Booking{}}
}

func (inv *inventory) packages() *mockPackageRepo {
	return &mockPackageRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Package, error) {
			if id != inv.pkg.ID {
				return domain.Package{}, domain.ErrNotFound
			}
			return inv.pkg, nil
		},
	}
}

func (inv *inventory) bookingRepo() *mockBookingRepo {
	return &mockBookingRepo{
		reserve: func(_ context.Context, req domain.ReserveRequest) (domain.Booking, error) {
			if inv.pkg.AvailableSeats < req.Travelers {
				return domain.Booking{}, fmt.Errorf("%w: not enough seats available", domain.ErrValidation)
			}
			inv.pkg.AvailableSeats -= req.Travelers
			b := domain.Booking{
				ID:                uuid.New(),
				UserID:            req.UserID,
				PackageID:         req.PackageID,
				BookingDate:       time.Now(),
				TravelDate:        req.TravelDate,
				NumberOfTravelers: req.Travelers,
				TotalPrice:        inv.pkg.Price.Times(req.Travelers),
				Status:            domain.BookingPending,
			}
			inv.bookings[b.ID] = b
			return b, nil
		},
		getByIDForUser: func(_ context.Context, id, userID uuid.UUID) (domain.Booking, error) {
			b, ok := inv.bookings[id]
			if !ok || b.UserID != userID {
				return domain.Booking{}, domain.ErrNotFound
			}
			return b, nil
		},
		cancel: func(_ context.Context, id, userID uuid.UUID, from domain.BookingStatus) (domain.Booking, error) {
			b, ok := inv.bookings[id]
			if !ok || b.UserID != userID || b.Status != from {
				return domain.Booking{}, domain.ErrInvalidState
			}
			b.Status = domain.BookingCancelled
			inv.bookings[id] = b
			inv.pkg.AvailableSeats += b.NumberOfTravelers
			return b, nil
		},
	}
}

func (inv *inventory) service() *service.BookingService {
	return service.NewBookingService(inv.packages(), inv.bookingRepo())
}

// ---- Reserve ---------------------------------------------------------------

// Package with 10 seats at 100.00; reserve 3; cancel restores all 10.
func TestBookingService_ReserveThenCancel(t *testing.T) {
	inv := newInventory(packageWithSeats(10))
	svc := inv.service()
	ctx := context.Background()
	req := reserveRequest(inv.pkg, 3)

	b, err := svc.Reserve(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, "300.00", b.TotalPrice.String())
	assert.Equal(t, 7, inv.pkg.AvailableSeats)

	cancelled, err := svc.Cancel(ctx, b.ID, req.UserID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, cancelled.Status)
	assert.Equal(t, "300.00", cancelled.TotalPrice.String(), "total price is not recomputed")
	assert.Equal(t, 10, inv.pkg.AvailableSeats)
}

// Package with 2 seats; reserving 5 is rejected before touching inventory.
func TestBookingService_Reserve_MoreThanAvailable(t *testing.T) {
	pkg := packageWithSeats(2)
	reserveCalled := false
	svc := service.NewBookingService(
		&mockPackageRepo{getByID: func(context.Context, uuid.UUID) (domain.Package, error) { return pkg, nil }},
		&mockBookingRepo{reserve: func(context.Context, domain.ReserveRequest) (domain.Booking, error) {
			reserveCalled = true
			return domain.Booking{}, nil
		}},
	)

	_, err := svc.Reserve(context.Background(), reserveRequest(pkg, 5))

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "only 2 seats available for this package")
	assert.False(t, reserveCalled, "no booking may be created")
}

func TestBookingService_Reserve_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ReserveRequest)
		message string
	}{
		{"zero travelers", func(r *domain.ReserveRequest) { r.Travelers = 0 }, "at least 1"},
		{"negative travelers", func(r *domain.ReserveRequest) { r.Travelers = -2 }, "at least 1"},
		{"before departure", func(r *domain.ReserveRequest) { r.TravelDate = day(2030, time.May, 31) },
			"travel date must be between 2030-06-01 and 2030-06-10"},
		{"after return", func(r *domain.ReserveRequest) { r.TravelDate = day(2030, time.June, 11) }, "travel date"},
		{"missing phone", func(r *domain.ReserveRequest) { r.ContactPhone = "   " }, "contact phone is required"},
		{"long phone", func(r *domain.ReserveRequest) { r.ContactPhone = "123456789012345678901" }, "at most 20"},
		{"missing email", func(r *domain.ReserveRequest) { r.ContactEmail = "" }, "contact email is required"},
		{"long special requests", func(r *domain.ReserveRequest) { r.SpecialRequests = strings.Repeat("é", 501) },
			"special requests must be at most 500"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv := newInventory(packageWithSeats(10))
			req := reserveRequest(inv.pkg, 2)
			tc.mutate(&req)

			_, err := inv.service().Reserve(context.Background(), req)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.message)
			assert.Equal(t, 10, inv.pkg.AvailableSeats, "seats unchanged on rejection")
		})
	}
}

func TestBookingService_Reserve_BoundaryDates(t *testing.T) {
	for _, d := range []time.Time{day(2030, time.June, 1), day(2030, time.June, 10)} {
		inv := newInventory(packageWithSeats(10))
		req := reserveRequest(inv.pkg, 1)
		req.TravelDate = d

		_, err := inv.service().Reserve(context.Background(), req)

		assert.NoError(t, err, "travel on %s should be accepted", d.Format(time.DateOnly))
	}
}

func TestBookingService_Reserve_LongestSpecialRequests(t *testing.T) {
	inv := newInventory(packageWithSeats(10))
	req := reserveRequest(inv.pkg, 1)
	req.SpecialRequests = strings.Repeat("é", 500)

	_, err := inv.service().Reserve(context.Background(), req)

	assert.NoError(t, err)
}

func TestBookingService_Reserve_AllRemainingSeats(t *testing.T) {
	inv := newInventory(packageWithSeats(4))

	_, err := inv.service().Reserve(context.Background(), reserveRequest(inv.pkg, 4))

	require.NoError(t, err)
	assert.Equal(t, 0, inv.pkg.AvailableSeats)
}

func TestBookingService_Reserve_PackageNotFound(t *testing.T) {
	inv := newInventory(packageWithSeats(4))
	req := reserveRequest(inv.pkg, 1)
	req.PackageID = uuid.New()

	_, err := inv.service().Reserve(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// The repo's guard rejects a reservation that raced past the service check.
func TestBookingService_Reserve_LostRace(t *testing.T) {
	pkg := packageWithSeats(3)
	svc := service.NewBookingService(
		&mockPackageRepo{getByID: func(context.Context, uuid.UUID) (domain.Package, error) { return pkg, nil }},
		&mockBookingRepo{reserve: func(context.Context, domain.ReserveRequest) (domain.Booking, error) {
			return domain.Booking{}, fmt.Errorf("%w: not enough seats available", domain.ErrValidation)
		}},
	)

	_, err := svc.Reserve(context.Background(), reserveRequest(pkg, 3))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Cancel ----------------------------------------------------------------

func TestBookingService_Cancel_Twice(t *testing.T) {
	inv := newInventory(packageWithSeats(10))
	svc := inv.service()
	ctx := context.Background()
	req := reserveRequest(inv.pkg, 3)
	b, err := svc.Reserve(ctx, req)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, b.ID, req.UserID)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, b.ID, req.UserID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, 10, inv.pkg.AvailableSeats, "seats restored once")
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	inv := newInventory(packageWithSeats(10))
	svc := inv.service()
	ctx := context.Background()
	b, err := svc.Reserve(ctx, reserveRequest(inv.pkg, 3))
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, b.ID, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 7, inv.pkg.AvailableSeats)
}

func TestBookingService_Cancel_NonPendingStates(t *testing.T) {
	for _, st := range []domain.BookingStatus{domain.BookingConfirmed, domain.BookingCompleted, domain.BookingCancelled} {
		t.Run(string(st), func(t *testing.T) {
			userID := uuid.New()
			svc := service.NewBookingService(&mockPackageRepo{}, &mockBookingRepo{
				getByIDForUser: func(_ context.Context, id, _ uuid.UUID) (domain.Booking, error) {
					return domain.Booking{ID: id, UserID: userID, Status: st}, nil
				},
				// cancel left nil: calling it would panic
			})

			_, err := svc.Cancel(context.Background(), uuid.New(), userID)

			assert.ErrorIs(t, err, domain.ErrInvalidState)
		})
	}
}

func TestBookingService_Cancel_PassesCurrentStatusAsGuard(t *testing.T) {
	var gotFrom domain.BookingStatus
	svc := service.NewBookingService(&mockPackageRepo{}, &mockBookingRepo{
		getByIDForUser: func(_ context.Context, id, userID uuid.UUID) (domain.Booking, error) {
			return domain.Booking{ID: id, UserID: userID, Status: domain.BookingPending}, nil
		},
		cancel: func(_ context.Context, id, _ uuid.UUID, from domain.BookingStatus) (domain.Booking, error) {
			gotFrom = from
			return domain.Booking{ID: id, Status: domain.BookingCancelled}, nil
		},
	})

	_, err := svc.Cancel(context.Background(), uuid.New(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, gotFrom)
}

// ---- reads -----------------------------------------------------------------

func TestBookingService_ListByUser_NilBecomesEmpty(t *testing.T) {
	svc := service.NewBookingService(&mockPackageRepo{}, &mockBookingRepo{
		listByUserPaged: func(context.Context, uuid.UUID, domain.PaginationParams) ([]domain.Booking, int64, error) {
			return nil, 0, nil
		},
	})

	got, total, err := svc.ListByUser(context.Background(), uuid.New(), domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Zero(t, total)
}

func TestBookingService_GetByID_RepoError(t *testing.T) {
	dbErr := errors.New("connection refused")
	svc := service.NewBookingService(&mockPackageRepo{}, &mockBookingRepo{
		getByIDForUser: func(context.Context, uuid.UUID, uuid.UUID) (domain.Booking, error) {
			return domain.Booking{}, dbErr
		},
	})

	_, err := svc.GetByID(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, dbErr)
}
