// Package domain contains the core data types for the travel booking service.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Destination is a place travel packages go to.
type Destination struct {
	ID          uuid.UUID
	Name        string
	Description string
	Country     string
	City        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DestinationDetail is a destination together with its packages that still
// have seats left.
type DestinationDetail struct {
	Destination Destination
	Packages    []Package
}

// Featured is the landing-page selection: a handful of destinations and the
// soonest-departing packages that can still be booked.
type Featured struct {
	Destinations []Destination
	Packages     []Package
}
