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

// UserRepo defines the persistence operations for user accounts.
type UserRepo interface {
	// Create inserts the user and an empty profile in one transaction.
	// Returns domain.ErrConflict if the username is already taken.
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// GetByID retrieves a user by primary key.
	// Returns domain.ErrNotFound if no user with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)

	// GetByUsername retrieves a user by exact username.
	// Returns domain.ErrNotFound if no user has that username.
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

const userColumns = `id, username, email, first_name, last_name, password_hash, created_at`

func (r *pgUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	const insertUser = `
		INSERT INTO users (username, email, first_name, last_name, password_hash)
		VALUES (@username, @email, @first_name, @last_name, @password_hash)
		RETURNING ` + userColumns

	const insertProfile = `INSERT INTO user_profiles (user_id) VALUES (@user_id)`

	var created domain.User
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		args := pgx.NamedArgs{
			"username":      u.Username,
			"email":         u.Email,
			"first_name":    u.FirstName,
			"last_name":     u.LastName,
			"password_hash": u.PasswordHash,
		}
		var err error
		created, err = scanUser(tx.QueryRow(ctx, insertUser, args))
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, insertProfile, pgx.NamedArgs{"user_id": created.ID})
		return err
	})
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w: username %q is already taken", domain.ErrConflict, u.Username)
		}
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return created, nil
}

func (r *pgUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = @username`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"username": username}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByUsername: %w", err)
	}
	return result, nil
}

// scanUser maps a single database row into a domain.User.
func scanUser(s scanner) (domain.User, error) {
	var (
		u  domain.User
		id pgtype.UUID
	)
	err := s.Scan(&id, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	u.ID = uuid.UUID(id.Bytes)
	return u, nil
}
