// Package handler implements the HTTP handlers for the travel booking API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into files by area (catalog.go, booking.go, account.go)
// but share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-booking/internal/domain"
)

// CatalogServicer defines the read-only browsing operations the catalog
// handlers depend on. Defining the interface here, in the consumer package,
// lets handler tests inject a mock without a database.
type CatalogServicer interface {
	Featured(ctx context.Context) (domain.Featured, error)
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
	GetDestination(ctx context.Context, id uuid.UUID) (domain.DestinationDetail, error)
	ListPackages(ctx context.Context, f domain.PackageFilter, p domain.PaginationParams) ([]domain.Package, int64, error)
	GetPackage(ctx context.Context, id uuid.UUID) (domain.PackageDetail, error)
}

// BookingServicer defines the booking operations. Every method is scoped to
// the acting user.
type BookingServicer interface {
	Reserve(ctx context.Context, req domain.ReserveRequest) (domain.Booking, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Booking, int64, error)
	Cancel(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error)
}

// AccountServicer defines registration, login and profile operations.
type AccountServicer interface {
	Register(ctx context.Context, reg domain.Registration) (domain.User, error)
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

// TokenIssuer mints bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, time.Time, error)
}

// TicketRenderer renders a booking as a PDF document.
type TicketRenderer interface {
	Render(b domain.Booking) ([]byte, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, StrictOptions(log)).
type Server struct {
	catalog  CatalogServicer
	bookings BookingServicer
	accounts AccountServicer
	tokens   TokenIssuer
	tickets  TicketRenderer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(catalog CatalogServicer, bookings BookingServicer, accounts AccountServicer, tokens TokenIssuer, tickets TicketRenderer) *Server {
	return &Server{
		catalog:  catalog,
		bookings: bookings,
		accounts: accounts,
		tokens:   tokens,
		tickets:  tickets,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return &Server{}
}
