package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/repo"
)

const (
	maxContactPhone    = 20
	maxSpecialRequests = 500
	dateLayout         = "2006-01-02"
)

// BookingService owns the booking lifecycle and the seat inventory tied to it.
type BookingService struct {
	packages repo.PackageRepo
	bookings repo.BookingRepo
}

// NewBookingService constructs a BookingService backed by the provided repos.
func NewBookingService(packages repo.PackageRepo, bookings repo.BookingRepo) *BookingService {
	return &BookingService{packages: packages, bookings: bookings}
}

// Reserve validates the request against the package and creates a pending
// booking, decrementing the package's seats in the same statement.
// Returns domain.ErrNotFound if the package does not exist and
// domain.ErrValidation if the request cannot be satisfied.
func (s *BookingService) Reserve(ctx context.Context, req domain.ReserveRequest) (domain.Booking, error) {
	pkg, err := s.packages.GetByID(ctx, req.PackageID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Reserve: %w", err)
	}

	req.ContactPhone = strings.TrimSpace(req.ContactPhone)
	req.ContactEmail = strings.TrimSpace(req.ContactEmail)
	if err := validateReservation(pkg, req); err != nil {
		return domain.Booking{}, err
	}

	// The seat count above may be stale by now; the repo re-checks it atomically.
	b, err := s.bookings.Reserve(ctx, req)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Reserve: %w", err)
	}
	return b, nil
}

// GetByID returns one of the user's bookings.
// Returns domain.ErrNotFound if it does not exist or belongs to someone else.
func (s *BookingService) GetByID(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error) {
	b, err := s.bookings.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.GetByID: %w", err)
	}
	return b, nil
}

// ListByUser returns one page of the user's bookings, newest first, and the total count.
func (s *BookingService) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Booking, int64, error) {
	bookings, total, err := s.bookings.ListByUserPaged(ctx, userID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.BookingService.ListByUser: %w", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, total, nil
}

// Cancel moves one of the user's bookings to cancelled and returns its seats.
// Returns domain.ErrNotFound if the booking is not the user's and
// domain.ErrInvalidState if its status does not allow cancellation.
func (s *BookingService) Cancel(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error) {
	b, err := s.bookings.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Cancel: %w", err)
	}
	if !b.Status.CanTransitionTo(domain.BookingCancelled) {
		return domain.Booking{}, fmt.Errorf("%w: a %s booking cannot be cancelled", domain.ErrInvalidState, b.Status)
	}

	cancelled, err := s.bookings.Cancel(ctx, id, userID, b.Status)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Cancel: %w", err)
	}
	return cancelled, nil
}

// validateReservation enforces the booking form rules against pkg.
//   - At least one traveller, and no more than the seats left.
//   - Travel date within the package's departure and return dates.
//   - Contact phone (at most 20 characters) and e-mail are required.
func validateReservation(pkg domain.Package, req domain.ReserveRequest) error {
	if req.Travelers < 1 {
		return fmt.Errorf("%w: number of travelers must be at least 1", domain.ErrValidation)
	}
	if req.Travelers > pkg.AvailableSeats {
		return fmt.Errorf("%w: only %d seats available for this package", domain.ErrValidation, pkg.AvailableSeats)
	}
	if !pkg.Covers(req.TravelDate) {
		return fmt.Errorf("%w: travel date must be between %s and %s", domain.ErrValidation,
			pkg.DepartureDate.Format(dateLayout), pkg.ReturnDate.Format(dateLayout))
	}
	if req.ContactPhone == "" {
		return fmt.Errorf("%w: contact phone is required", domain.ErrValidation)
	}
	if len([]rune(req.ContactPhone)) > maxContactPhone {
		return fmt.Errorf("%w: contact phone must be at most %d characters", domain.ErrValidation, maxContactPhone)
	}
	if req.ContactEmail == "" {
		return fmt.Errorf("%w: contact email is required", domain.ErrValidation)
	}
	if len([]rune(req.SpecialRequests)) > maxSpecialRequests {
		return fmt.Errorf("%w: special requests must be at most %d characters", domain.ErrValidation, maxSpecialRequests)
	}
	return nil
}
