package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// bookingTransitions lists, per state, the states it may move to.
// Confirmed and completed have no entries: nothing in this service drives them.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending: {BookingCancelled},
}

// ParseBookingStatus converts a stored status string into a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, error) {
	st := BookingStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
	}
	return st, nil
}

// Valid reports whether s is one of the four lifecycle states.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition table allows s → next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is a user's claim on a number of seats of one package.
// TotalPrice is fixed at creation time and never recomputed.
type Booking struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	PackageID         uuid.UUID
	BookingDate       time.Time
	TravelDate        time.Time
	NumberOfTravelers int
	TotalPrice        Money
	Status            BookingStatus
	SpecialRequests   string
	ContactPhone      string
	ContactEmail      string
	UpdatedAt         time.Time

	// Populated on reads that join the package and its destination.
	PackageName     string
	DestinationName string
}

// ReserveRequest is the input to the reserve operation.
type ReserveRequest struct {
	PackageID       uuid.UUID
	UserID          uuid.UUID
	TravelDate      time.Time
	Travelers       int
	SpecialRequests string
	ContactPhone    string
	ContactEmail    string
}
