package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/repo"
)

const (
	maxUsername       = 150
	maxPersonName     = 30
	minPassword       = 8
	maxPassword       = 72 // bcrypt ignores anything longer
	maxProfilePhone   = 20
	maxPassportNumber = 50
)

// AccountService handles registration, credential checks and user profiles.
type AccountService struct {
	users    repo.UserRepo
	profiles repo.ProfileRepo
	now      func() time.Time
	cost     int
}

// NewAccountService constructs an AccountService backed by the provided repos.
func NewAccountService(users repo.UserRepo, profiles repo.ProfileRepo) *AccountService {
	return &AccountService{users: users, profiles: profiles, now: time.Now, cost: bcrypt.DefaultCost}
}

// WithHashCost returns a copy of s that hashes passwords at the given bcrypt cost.
// Tests use bcrypt.MinCost to stay fast.
func (s *AccountService) WithHashCost(cost int) *AccountService {
	c := *s
	c.cost = cost
	return &c
}

// Register validates the registration form, hashes the password and creates
// the user together with an empty profile.
// Returns domain.ErrValidation for bad input and domain.ErrConflict if the
// username is taken.
func (s *AccountService) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)
	if err := validateRegistration(reg); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AccountService.Register: hash password: %w", err)
	}

	u, err := s.users.Create(ctx, domain.User{
		Username:     reg.Username,
		Email:        reg.Email,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		PasswordHash: string(hash),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AccountService.Register: %w", err)
	}
	return u, nil
}

// Authenticate returns the user whose credentials match.
// Unknown usernames and wrong passwords both return domain.ErrUnauthorized.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, fmt.Errorf("%w: invalid username or password", domain.ErrUnauthorized)
		}
		return domain.User{}, fmt.Errorf("service.AccountService.Authenticate: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.User{}, fmt.Errorf("%w: invalid username or password", domain.ErrUnauthorized)
		}
		return domain.User{}, fmt.Errorf("service.AccountService.Authenticate: %w", err)
	}
	return u, nil
}

// GetProfile returns the user's profile, creating an empty one if it is missing.
func (s *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	p, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.AccountService.GetProfile: %w", err)
	}
	return p, nil
}

// UpdateProfile validates and stores the editable profile fields.
// Returns domain.ErrValidation if a field is out of range.
func (s *AccountService) UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	p.PassportNumber = strings.TrimSpace(p.PassportNumber)
	p.Address = strings.TrimSpace(p.Address)
	if err := s.validateProfile(p); err != nil {
		return domain.Profile{}, err
	}

	result, err := s.profiles.Update(ctx, p)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.AccountService.UpdateProfile: %w", err)
	}
	return result, nil
}

func validateRegistration(reg domain.Registration) error {
	switch {
	case reg.Username == "":
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	case len([]rune(reg.Username)) > maxUsername:
		return fmt.Errorf("%w: username must be at most %d characters", domain.ErrValidation, maxUsername)
	case reg.Email == "":
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	case reg.FirstName == "":
		return fmt.Errorf("%w: first name is required", domain.ErrValidation)
	case len([]rune(reg.FirstName)) > maxPersonName:
		return fmt.Errorf("%w: first name must be at most %d characters", domain.ErrValidation, maxPersonName)
	case reg.LastName == "":
		return fmt.Errorf("%w: last name is required", domain.ErrValidation)
	case len([]rune(reg.LastName)) > maxPersonName:
		return fmt.Errorf("%w: last name must be at most %d characters", domain.ErrValidation, maxPersonName)
	case len(reg.Password) < minPassword:
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPassword)
	case len(reg.Password) > maxPassword:
		return fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, maxPassword)
	case reg.Password != reg.PasswordConfirm:
		return fmt.Errorf("%w: passwords do not match", domain.ErrValidation)
	}
	return nil
}

func (s *AccountService) validateProfile(p domain.Profile) error {
	if len([]rune(p.PhoneNumber)) > maxProfilePhone {
		return fmt.Errorf("%w: phone number must be at most %d characters", domain.ErrValidation, maxProfilePhone)
	}
	if len([]rune(p.PassportNumber)) > maxPassportNumber {
		return fmt.Errorf("%w: passport number must be at most %d characters", domain.ErrValidation, maxPassportNumber)
	}
	if p.DateOfBirth != nil && p.DateOfBirth.After(s.now()) {
		return fmt.Errorf("%w: date of birth must not be in the future", domain.ErrValidation)
	}
	return nil
}
