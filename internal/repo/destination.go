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

// DestinationRepo defines the persistence operations for Destinations.
type DestinationRepo interface {
	// Create inserts a new destination and returns the persisted record.
	// Like PackageRepo.Create it is only reached from fixtures and seeding,
	// not from an API route.
	Create(ctx context.Context, d domain.Destination) (domain.Destination, error)

	// GetByID retrieves a destination by primary key.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)

	// List returns destinations ordered by name. A limit of 0 returns all of them.
	List(ctx context.Context, limit int) ([]domain.Destination, error)
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

const destinationColumns = `id, name, description, country, city, created_at, updated_at`

func (r *pgDestinationRepo) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	const q = `
		INSERT INTO destinations (name, description, country, city)
		VALUES (@name, @description, @country, @city)
		RETURNING ` + destinationColumns

	args := pgx.NamedArgs{
		"name":        d.Name,
		"description": d.Description,
		"country":     d.Country,
		"city":        d.City,
	}

	result, err := scanDestination(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	const q = `SELECT ` + destinationColumns + ` FROM destinations WHERE id = @id`

	result, err := scanDestination(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return result, nil
}

// List uses LIMIT NULL for "no limit", which Postgres treats as LIMIT ALL.
func (r *pgDestinationRepo) List(ctx context.Context, limit int) ([]domain.Destination, error) {
	const q = `
		SELECT ` + destinationColumns + `
		FROM destinations
		ORDER BY name, id
		LIMIT @limit`

	var lim *int
	if limit > 0 {
		lim = &limit
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": lim})
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: %w", err)
	}
	defer rows.Close()

	destinations := []domain.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.List: scan: %w", err)
		}
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: rows: %w", err)
	}
	return destinations, nil
}

// scanDestination maps a single database row into a domain.Destination.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d  domain.Destination
		id pgtype.UUID
	)
	err := s.Scan(&id, &d.Name, &d.Description, &d.Country, &d.City, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}
	d.ID = uuid.UUID(id.Bytes)
	return d, nil
}
