package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-booking/internal/domain"
)

// BookingRepo defines the persistence operations for Bookings.
// It is the only writer of packages.available_seats: Reserve and Cancel each
// change a booking and the seat inventory in a single statement.
type BookingRepo interface {
	// Reserve takes req.Travelers seats from the package and inserts a pending
	// booking priced at the package's current price × travellers.
	// The seat decrement is guarded by available_seats >= travellers; if the
	// guard fails (or the package does not exist) nothing is written and
	// domain.ErrValidation is returned.
	Reserve(ctx context.Context, req domain.ReserveRequest) (domain.Booking, error)

	// GetByIDForUser retrieves a booking owned by userID.
	// Returns domain.ErrNotFound if it does not exist or belongs to someone else.
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error)

	// ListByUserPaged returns one page of a user's bookings, newest first, and the total count.
	ListByUserPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Booking, int64, error)

	// Cancel moves a booking owned by userID from status from to cancelled and
	// gives its seats back to the package. If the booking is no longer in
	// status from, nothing is written and domain.ErrInvalidState is returned.
	Cancel(ctx context.Context, id, userID uuid.UUID, from domain.BookingStatus) (domain.Booking, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

// bookingColumns expects bookings aliased as b, the package name as pkg_name
// and the destination name as dest_name.
const bookingColumns = `
	b.id, b.user_id, b.package_id, b.booking_date, b.travel_date,
	b.number_of_travelers, b.total_price_cents, b.status, b.special_requests,
	b.contact_phone, b.contact_email, b.updated_at, pkg_name, dest_name`

// bookingFrom joins the package and destination names for reads.
const bookingFrom = `
	FROM (
		SELECT b.*, p.name AS pkg_name, d.name AS dest_name
		FROM bookings b
		JOIN packages p ON p.id = b.package_id
		JOIN destinations d ON d.id = p.destination_id
	) b`

// Reserve is one statement: the package row lock taken by the UPDATE
// serialises concurrent reservations, and the re-checked guard means the
// second of two racing requests sees the already-decremented count.
func (r *pgBookingRepo) Reserve(ctx context.Context, req domain.ReserveRequest) (domain.Booking, error) {
	const q = `
		WITH seat AS (
			UPDATE packages
			SET available_seats = available_seats - @travelers,
			    updated_at      = now()
			WHERE id = @package_id
			  AND available_seats >= @travelers
			RETURNING id, name, destination_id, price_cents
		), b AS (
			INSERT INTO bookings (
				user_id, package_id, travel_date, number_of_travelers, total_price_cents,
				status, special_requests, contact_phone, contact_email)
			SELECT @user_id::uuid, seat.id, @travel_date::date, @travelers, seat.price_cents * @travelers,
			       @status::text, @special_requests::text, @contact_phone::text, @contact_email::text
			FROM seat
			RETURNING *
		)
		SELECT b.id, b.user_id, b.package_id, b.booking_date, b.travel_date,
		       b.number_of_travelers, b.total_price_cents, b.status, b.special_requests,
		       b.contact_phone, b.contact_email, b.updated_at, seat.name, d.name
		FROM b
		JOIN seat ON seat.id = b.package_id
		JOIN destinations d ON d.id = seat.destination_id`

	args := pgx.NamedArgs{
		"package_id":       req.PackageID,
		"user_id":          req.UserID,
		"travel_date":      req.TravelDate,
		"travelers":        req.Travelers,
		"status":           string(domain.BookingPending),
		"special_requests": req.SpecialRequests,
		"contact_phone":    req.ContactPhone,
		"contact_email":    req.ContactEmail,
	}

	result, err := scanBooking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Reserve: %w: not enough seats available", domain.ErrValidation)
		}
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Reserve: %w", err)
	}
	return result, nil
}

func (r *pgBookingRepo) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + bookingFrom + `
		WHERE b.id = @id AND b.user_id = @user_id`

	result, err := scanBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID}))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.GetByIDForUser: %w", err)
	}
	return result, nil
}

func (r *pgBookingRepo) ListByUserPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Booking, int64, error) {
	var total int64
	const countQ = `SELECT count(*) FROM bookings WHERE user_id = @user_id`
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.BookingRepo.ListByUserPaged: count: %w", err)
	}

	const q = `SELECT ` + bookingColumns + bookingFrom + `
		WHERE b.user_id = @user_id
		ORDER BY b.booking_date DESC, b.id
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{"user_id": userID, "limit": p.Limit, "offset": p.Offset()}
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.BookingRepo.ListByUserPaged: %w", err)
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.BookingRepo.ListByUserPaged: scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.BookingRepo.ListByUserPaged: rows: %w", err)
	}
	return bookings, total, nil
}

// Cancel guards on the current status, so of two concurrent cancels only the
// first restores seats; the second blocks on the booking row lock, then
// finds the status changed and matches no row.
func (r *pgBookingRepo) Cancel(ctx context.Context, id, userID uuid.UUID, from domain.BookingStatus) (domain.Booking, error) {
	const q = `
		WITH b AS (
			UPDATE bookings
			SET status     = @to,
			    updated_at = now()
			WHERE id = @id
			  AND user_id = @user_id
			  AND status = @from
			RETURNING *
		), seat AS (
			UPDATE packages p
			SET available_seats = p.available_seats + b.number_of_travelers,
			    updated_at      = now()
			FROM b
			WHERE p.id = b.package_id
			RETURNING p.id, p.name, p.destination_id
		)
		SELECT b.id, b.user_id, b.package_id, b.booking_date, b.travel_date,
		       b.number_of_travelers, b.total_price_cents, b.status, b.special_requests,
		       b.contact_phone, b.contact_email, b.updated_at, seat.name, d.name
		FROM b
		JOIN seat ON seat.id = b.package_id
		JOIN destinations d ON d.id = seat.destination_id`

	args := pgx.NamedArgs{
		"id":      id,
		"user_id": userID,
		"from":    string(from),
		"to":      string(domain.BookingCancelled),
	}

	result, err := scanBooking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Cancel: %w: booking is no longer %s", domain.ErrInvalidState, from)
		}
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Cancel: %w", err)
	}
	return result, nil
}

// scanBooking maps a single database row (bookingColumns) into a domain.Booking.
func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b                 domain.Booking
		id, userID, pkgID pgtype.UUID
		travelDate        pgtype.Date
		total             int64
		status            string
	)

	err := s.Scan(
		&id, &userID, &pkgID, &b.BookingDate, &travelDate,
		&b.NumberOfTravelers, &total, &status, &b.SpecialRequests,
		&b.ContactPhone, &b.ContactEmail, &b.UpdatedAt, &b.PackageName, &b.DestinationName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}

	st, err := domain.ParseBookingStatus(status)
	if err != nil {
		return domain.Booking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.UserID = uuid.UUID(userID.Bytes)
	b.PackageID = uuid.UUID(pkgID.Bytes)
	b.TravelDate = travelDate.Time
	b.TotalPrice = domain.Money(total)
	b.Status = st
	return b, nil
}
