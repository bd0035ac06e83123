package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash is a bcrypt hash and never
// leaves the service layer.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

// Registration is the input to account creation.
type Registration struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Password        string
	PasswordConfirm string
}

// Profile holds a user's personal details. Every user has exactly one.
// DateOfBirth is nil when not provided.
type Profile struct {
	UserID         uuid.UUID
	PhoneNumber    string
	Address        string
	DateOfBirth    *time.Time
	PassportNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Read-only account fields, populated when the profile is fetched.
	Username  string
	Email     string
	FirstName string
	LastName  string
}
