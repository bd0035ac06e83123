package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PackageType is the comfort tier of a travel package.
type PackageType string

const (
	PackageBasic   PackageType = "basic"
	PackagePremium PackageType = "premium"
	PackageLuxury  PackageType = "luxury"
)

// Valid reports whether t is one of the known tiers.
func (t PackageType) Valid() bool {
	switch t {
	case PackageBasic, PackagePremium, PackageLuxury:
		return true
	}
	return false
}

// Package is a purchasable travel itinerary with a fixed date range and a
// seat inventory. AvailableSeats is never negative; it is only changed by
// reserving or cancelling a booking.
//
// MaxTravelers is advisory and is not enforced against bookings.
type Package struct {
	ID                uuid.UUID
	DestinationID     uuid.UUID
	DestinationName   string // populated on reads that join destinations
	Name              string
	Description       string
	Type              PackageType
	DurationDays      int
	Price             Money
	MaxTravelers      int
	AvailableSeats    int
	DepartureDate     time.Time
	ReturnDate        time.Time
	IncludesFlight    bool
	IncludesHotel     bool
	IncludesMeals     bool
	IncludesTransport bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Covers reports whether day falls inside [DepartureDate, ReturnDate].
// Only the calendar date is compared.
func (p Package) Covers(day time.Time) bool {
	d := dateOnly(day)
	return !d.Before(dateOnly(p.DepartureDate)) && !d.After(dateOnly(p.ReturnDate))
}

// PackageDetail is a package with its destination and a few other packages
// to the same destination.
type PackageDetail struct {
	Package     Package
	Destination Destination
	Related     []Package
}

// PackageFilter narrows a package listing. Zero values mean "no constraint";
// every set field is combined with AND.
type PackageFilter struct {
	// Destination matches case-insensitively against destination name, city or country.
	Destination    string
	Type           PackageType
	MinPrice       *Money
	MaxPrice       *Money
	DepartureAfter *time.Time
	MinDuration    *int
	MaxDuration    *int
}

// Validate checks that the filter's ranges are well formed.
func (f PackageFilter) Validate() error {
	if f.Type != "" && !f.Type.Valid() {
		return fmt.Errorf("%w: unknown package type %q", ErrValidation, f.Type)
	}
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return fmt.Errorf("%w: min_price must not be negative", ErrValidation)
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return fmt.Errorf("%w: max_price must not be negative", ErrValidation)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return fmt.Errorf("%w: min_price must not exceed max_price", ErrValidation)
	}
	if f.MinDuration != nil && *f.MinDuration < 1 {
		return fmt.Errorf("%w: duration_min must be at least 1", ErrValidation)
	}
	if f.MaxDuration != nil && *f.MaxDuration < 1 {
		return fmt.Errorf("%w: duration_max must be at least 1", ErrValidation)
	}
	if f.MinDuration != nil && f.MaxDuration != nil && *f.MinDuration > *f.MaxDuration {
		return fmt.Errorf("%w: duration_min must not exceed duration_max", ErrValidation)
	}
	return nil
}

// dateOnly truncates t to midnight UTC of its calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
