package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-booking/internal/domain"
)

// PackageRepo defines the persistence operations for travel packages.
// Seat inventory is not writable here: it only changes through BookingRepo.
type PackageRepo interface {
	// Create inserts a new package and returns the persisted record.
	// The API has no catalogue write route; Create is the hook for loading
	// the catalogue from fixtures or an operator-run seed.
	// Returns domain.ErrNotFound if the destination does not exist.
	Create(ctx context.Context, p domain.Package) (domain.Package, error)

	// GetByID retrieves a package by primary key, with its destination name.
	// Returns domain.ErrNotFound if no package with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error)

	// ListPaged returns one page of bookable packages (available_seats > 0)
	// matching every set field of f, ordered by departure date, and the total count.
	ListPaged(ctx context.Context, f domain.PackageFilter, p domain.PaginationParams) ([]domain.Package, int64, error)

	// ListAvailableByDestination returns the bookable packages of one destination.
	ListAvailableByDestination(ctx context.Context, destinationID uuid.UUID) ([]domain.Package, error)

	// ListRelated returns up to limit other packages to the same destination as p.
	ListRelated(ctx context.Context, p domain.Package, limit int) ([]domain.Package, error)

	// ListUpcoming returns the limit soonest-departing bookable packages.
	ListUpcoming(ctx context.Context, limit int) ([]domain.Package, error)
}

// pgPackageRepo is the Postgres implementation of PackageRepo.
type pgPackageRepo struct {
	db db
}

// NewPackageRepo constructs a PackageRepo backed by the provided db connection.
func NewPackageRepo(db db) PackageRepo {
	return &pgPackageRepo{db: db}
}

// packageColumns expects packages aliased as p and destinations as d.
const packageColumns = `
	p.id, p.destination_id, d.name, p.name, p.description, p.package_type,
	p.duration_days, p.price_cents, p.max_travelers, p.available_seats,
	p.departure_date, p.return_date,
	p.includes_flight, p.includes_hotel, p.includes_meals, p.includes_transport,
	p.created_at, p.updated_at`

const packageFrom = `
	FROM packages p
	JOIN destinations d ON d.id = p.destination_id`

// Create inserts through a CTE so the returned row carries the destination
// name like every other read.
func (r *pgPackageRepo) Create(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	const q = `
		WITH p AS (
			INSERT INTO packages (
				destination_id, name, description, package_type, duration_days,
				price_cents, max_travelers, available_seats, departure_date, return_date,
				includes_flight, includes_hotel, includes_meals, includes_transport)
			VALUES (
				@destination_id, @name, @description, @package_type, @duration_days,
				@price_cents, @max_travelers, @available_seats, @departure_date, @return_date,
				@includes_flight, @includes_hotel, @includes_meals, @includes_transport)
			RETURNING *
		)
		SELECT ` + packageColumns + `
		FROM p
		JOIN destinations d ON d.id = p.destination_id`

	args := pgx.NamedArgs{
		"destination_id":     pkg.DestinationID,
		"name":               pkg.Name,
		"description":        pkg.Description,
		"package_type":       string(pkg.Type),
		"duration_days":      pkg.DurationDays,
		"price_cents":        int64(pkg.Price),
		"max_travelers":      pkg.MaxTravelers,
		"available_seats":    pkg.AvailableSeats,
		"departure_date":     pkg.DepartureDate,
		"return_date":        pkg.ReturnDate,
		"includes_flight":    pkg.IncludesFlight,
		"includes_hotel":     pkg.IncludesHotel,
		"includes_meals":     pkg.IncludesMeals,
		"includes_transport": pkg.IncludesTransport,
	}

	result, err := scanPackage(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return domain.Package{}, fmt.Errorf("repo.PackageRepo.Create: destination: %w", domain.ErrNotFound)
		}
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgPackageRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error) {
	const q = `SELECT ` + packageColumns + packageFrom + ` WHERE p.id = @id`

	result, err := scanPackage(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgPackageRepo) ListPaged(ctx context.Context, f domain.PackageFilter, p domain.PaginationParams) ([]domain.Package, int64, error) {
	where, args := packageFilterClause(f)

	var total int64
	countQ := `SELECT count(*)` + packageFrom + ` WHERE ` + where
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.PackageRepo.ListPaged: count: %w", err)
	}

	args["limit"] = p.Limit
	args["offset"] = p.Offset()
	q := `SELECT ` + packageColumns + packageFrom + `
		WHERE ` + where + `
		ORDER BY p.departure_date, p.id
		LIMIT @limit OFFSET @offset`

	pkgs, err := r.list(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.PackageRepo.ListPaged: %w", err)
	}
	return pkgs, total, nil
}

func (r *pgPackageRepo) ListAvailableByDestination(ctx context.Context, destinationID uuid.UUID) ([]domain.Package, error) {
	const q = `SELECT ` + packageColumns + packageFrom + `
		WHERE p.destination_id = @destination_id AND p.available_seats > 0
		ORDER BY p.departure_date, p.id`

	pkgs, err := r.list(ctx, q, pgx.NamedArgs{"destination_id": destinationID})
	if err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.ListAvailableByDestination: %w", err)
	}
	return pkgs, nil
}

// ListRelated does not filter on seats: a sold-out sibling is still shown.
func (r *pgPackageRepo) ListRelated(ctx context.Context, pkg domain.Package, limit int) ([]domain.Package, error) {
	const q = `SELECT ` + packageColumns + packageFrom + `
		WHERE p.destination_id = @destination_id AND p.id <> @id
		ORDER BY p.departure_date, p.id
		LIMIT @limit`

	args := pgx.NamedArgs{"destination_id": pkg.DestinationID, "id": pkg.ID, "limit": limit}
	pkgs, err := r.list(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.ListRelated: %w", err)
	}
	return pkgs, nil
}

func (r *pgPackageRepo) ListUpcoming(ctx context.Context, limit int) ([]domain.Package, error) {
	const q = `SELECT ` + packageColumns + packageFrom + `
		WHERE p.available_seats > 0
		ORDER BY p.departure_date, p.id
		LIMIT @limit`

	pkgs, err := r.list(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.ListUpcoming: %w", err)
	}
	return pkgs, nil
}

// list runs q and scans every row. Always returns a non-nil slice on success.
func (r *pgPackageRepo) list(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Package, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pkgs := []domain.Package{}
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		pkgs = append(pkgs, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return pkgs, nil
}

// packageFilterClause builds the WHERE clause for a catalogue listing.
// Only bookable packages are listed; each set filter field adds one AND term.
func packageFilterClause(f domain.PackageFilter) (string, pgx.NamedArgs) {
	terms := []string{"p.available_seats > 0"}
	args := pgx.NamedArgs{}

	if f.Destination != "" {
		terms = append(terms, "(d.name ILIKE @destination OR d.city ILIKE @destination OR d.country ILIKE @destination)")
		args["destination"] = containsPattern(f.Destination)
	}
	if f.Type != "" {
		terms = append(terms, "p.package_type = @package_type")
		args["package_type"] = string(f.Type)
	}
	if f.MinPrice != nil {
		terms = append(terms, "p.price_cents >= @min_price")
		args["min_price"] = int64(*f.MinPrice)
	}
	if f.MaxPrice != nil {
		terms = append(terms, "p.price_cents <= @max_price")
		args["max_price"] = int64(*f.MaxPrice)
	}
	if f.DepartureAfter != nil {
		terms = append(terms, "p.departure_date >= @departure_after")
		args["departure_after"] = *f.DepartureAfter
	}
	if f.MinDuration != nil {
		terms = append(terms, "p.duration_days >= @duration_min")
		args["duration_min"] = *f.MinDuration
	}
	if f.MaxDuration != nil {
		terms = append(terms, "p.duration_days <= @duration_max")
		args["duration_max"] = *f.MaxDuration
	}

	return strings.Join(terms, " AND "), args
}

// scanPackage maps a single database row (packageColumns) into a domain.Package.
func scanPackage(s scanner) (domain.Package, error) {
	var (
		p             domain.Package
		id, destID    pgtype.UUID
		pkgType       string
		price         int64
		departure, rt pgtype.Date
	)

	err := s.Scan(
		&id, &destID, &p.DestinationName, &p.Name, &p.Description, &pkgType,
		&p.DurationDays, &price, &p.MaxTravelers, &p.AvailableSeats,
		&departure, &rt,
		&p.IncludesFlight, &p.IncludesHotel, &p.IncludesMeals, &p.IncludesTransport,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Package{}, domain.ErrNotFound
		}
		return domain.Package{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.DestinationID = uuid.UUID(destID.Bytes)
	p.Type = domain.PackageType(pkgType)
	p.Price = domain.Money(price)
	p.DepartureDate = departure.Time
	p.ReturnDate = rt.Time
	return p, nil
}
