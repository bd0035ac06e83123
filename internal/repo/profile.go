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

// ProfileRepo defines the persistence operations for user profiles.
// Profiles are keyed by user ID; there is at most one per user.
type ProfileRepo interface {
	// GetOrCreate returns the user's profile, inserting an empty one first if
	// none exists. Returns domain.ErrNotFound if the user does not exist.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (domain.Profile, error)

	// Update overwrites the editable profile fields, creating the row if needed.
	// Returns domain.ErrNotFound if the user does not exist.
	Update(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

// pgProfileRepo is the Postgres implementation of ProfileRepo.
type pgProfileRepo struct {
	db db
}

// NewProfileRepo constructs a ProfileRepo backed by the provided db connection.
func NewProfileRepo(db db) ProfileRepo {
	return &pgProfileRepo{db: db}
}

// profileSelect expects the upserted profile row as CTE pr.
const profileSelect = `
	SELECT pr.user_id, pr.phone_number, pr.address, pr.date_of_birth, pr.passport_number,
	       pr.created_at, pr.updated_at, u.username, u.email, u.first_name, u.last_name
	FROM pr
	JOIN users u ON u.id = pr.user_id`

// GetOrCreate uses the same DO UPDATE SET trick as an upsert-by-key: it
// forces RETURNING to yield the existing row on conflict, which DO NOTHING would not.
func (r *pgProfileRepo) GetOrCreate(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	const q = `
		WITH pr AS (
			INSERT INTO user_profiles (user_id)
			VALUES (@user_id)
			ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
			RETURNING *
		)` + profileSelect

	result, err := scanProfile(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}))
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.GetOrCreate: user: %w", domain.ErrNotFound)
		}
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.GetOrCreate: %w", err)
	}
	return result, nil
}

func (r *pgProfileRepo) Update(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	const q = `
		WITH pr AS (
			INSERT INTO user_profiles (user_id, phone_number, address, date_of_birth, passport_number)
			VALUES (@user_id, @phone_number, @address, @date_of_birth, @passport_number)
			ON CONFLICT (user_id) DO UPDATE
			SET phone_number    = EXCLUDED.phone_number,
			    address         = EXCLUDED.address,
			    date_of_birth   = EXCLUDED.date_of_birth,
			    passport_number = EXCLUDED.passport_number,
			    updated_at      = now()
			RETURNING *
		)` + profileSelect

	args := pgx.NamedArgs{
		"user_id":         p.UserID,
		"phone_number":    p.PhoneNumber,
		"address":         p.Address,
		"date_of_birth":   p.DateOfBirth, // nil becomes NULL
		"passport_number": p.PassportNumber,
	}

	result, err := scanProfile(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Update: user: %w", domain.ErrNotFound)
		}
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Update: %w", err)
	}
	return result, nil
}

// scanProfile maps a single profileSelect row into a domain.Profile.
func scanProfile(s scanner) (domain.Profile, error) {
	var (
		p   domain.Profile
		id  pgtype.UUID
		dob pgtype.Date
	)
	err := s.Scan(
		&id, &p.PhoneNumber, &p.Address, &dob, &p.PassportNumber,
		&p.CreatedAt, &p.UpdatedAt, &p.Username, &p.Email, &p.FirstName, &p.LastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, domain.ErrNotFound
		}
		return domain.Profile{}, err
	}
	p.UserID = uuid.UUID(id.Bytes)
	if dob.Valid {
		d := dob.Time
		p.DateOfBirth = &d
	}
	return p, nil
}
