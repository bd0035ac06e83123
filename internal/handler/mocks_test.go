package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-booking/internal/auth"
	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/handler"
	"github.com/pkordes/travel-booking/internal/handler/gen"
)

// Test doubles for the handler's service interfaces.
// Set only the method fields your test needs; an unset field panics when called.

type mockCatalogServicer struct {
	featured         func(ctx context.Context) (domain.Featured, error)
	listDestinations func(ctx context.Context) ([]domain.Destination, error)
	getDestination   func(ctx context.Context, id uuid.UUID) (domain.DestinationDetail, error)
	listPackages     func(ctx context.Context, f domain.PackageFilter, p domain.PaginationParams) ([]domain.Package, int64, error)
	getPackage       func(ctx context.Context, id uuid.UUID) (domain.PackageDetail, error)
}

func (m *mockCatalogServicer) Featured(ctx context.Context) (domain.Featured, error) {
	return m.featured(ctx)
}
func (m *mockCatalogServicer) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return m.listDestinations(ctx)
}
func (m *mockCatalogServicer) GetDestination(ctx context.Context, id uuid.UUID) (domain.DestinationDetail, error) {
	return m.getDestination(ctx, id)
}
func (m *mockCatalogServicer) ListPackages(ctx context.Context, f domain.PackageFilter, p domain.PaginationParams) ([]domain.Package, int64, error) {
	return m.listPackages(ctx, f, p)
}
func (m *mockCatalogServicer) GetPackage(ctx context.Context, id uuid.UUID) (domain.PackageDetail, error) {
	return m.getPackage(ctx, id)
}

type mockBookingServicer struct {
	reserve    func(ctx context.Context, req domain.ReserveRequest) (domain.Booking, error)
	getByID    func(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error)
	listByUser func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Booking, int64, error)
	cancel     func(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error)
}

func (m *mockBookingServicer) Reserve(ctx context.Context, req domain.ReserveRequest) (domain.Booking, error) {
	return m.reserve(ctx, req)
}
func (m *mockBookingServicer) GetByID(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error) {
	return m.getByID(ctx, id, userID)
}
func (m *mockBookingServicer) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Booking, int64, error) {
	return m.listByUser(ctx, userID, p)
}
func (m *mockBookingServicer) Cancel(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error) {
	return m.cancel(ctx, id, userID)
}

type mockAccountServicer struct {
	register      func(ctx context.Context, reg domain.Registration) (domain.User, error)
	authenticate  func(ctx context.Context, username, password string) (domain.User, error)
	getProfile    func(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	updateProfile func(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

func (m *mockAccountServicer) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	return m.register(ctx, reg)
}
func (m *mockAccountServicer) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	return m.authenticate(ctx, username, password)
}
func (m *mockAccountServicer) GetProfile(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	return m.getProfile(ctx, userID)
}
func (m *mockAccountServicer) UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	return m.updateProfile(ctx, p)
}

type mockTokenIssuer struct {
	issue func(userID uuid.UUID) (string, time.Time, error)
}

func (m *mockTokenIssuer) Issue(userID uuid.UUID) (string, time.Time, error) {
	return m.issue(userID)
}

type mockTicketRenderer struct {
	render func(b domain.Booking) ([]byte, error)
}

func (m *mockTicketRenderer) Render(b domain.Booking) ([]byte, error) {
	return m.render(b)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.CatalogServicer = (*mockCatalogServicer)(nil)
	_ handler.BookingServicer = (*mockBookingServicer)(nil)
	_ handler.AccountServicer = (*mockAccountServicer)(nil)
	_ handler.TokenIssuer     = (*mockTokenIssuer)(nil)
	_ handler.TicketRenderer  = (*mockTicketRenderer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// deps collects the mocks for one Server. Nil fields stay nil in the Server.
type deps struct {
	catalog  *mockCatalogServicer
	bookings *mockBookingServicer
	accounts *mockAccountServicer
	tokens   *mockTokenIssuer
	tickets  *mockTicketRenderer
}

// newHTTPHandler wires a Server into the generated chi router with the same
// error handlers main.go uses.
func newHTTPHandler(d deps) http.Handler {
	var (
		catalog  handler.CatalogServicer
		bookings handler.BookingServicer
		accounts handler.AccountServicer
		tokens   handler.TokenIssuer
		tickets  handler.TicketRenderer
	)
	if d.catalog != nil {
		catalog = d.catalog
	}
	if d.bookings != nil {
		bookings = d.bookings
	}
	if d.accounts != nil {
		accounts = d.accounts
	}
	if d.tokens != nil {
		tokens = d.tokens
	}
	if d.tickets != nil {
		tickets = d.tickets
	}

	srv := handler.NewServer(catalog, bookings, accounts, tokens, tickets)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	strict := gen.NewStrictHandlerWithOptions(srv, nil, handler.StrictOptions(log))
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{ErrorHandlerFunc: handler.ParamErrorHandler})
}

// asUser attaches userID to the request as the authenticator middleware would.
func asUser(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(auth.WithUserID(r.Context(), userID))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body io.Reader) gen.ErrorDetail {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Error
}

func destinationFixture() domain.Destination {
	return domain.Destination{
		ID:          uuid.New(),
		Name:        "Kyoto Temples",
		Description: "Shrines, gardens and tea houses",
		Country:     "Japan",
		City:        "Kyoto",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func packageFixture(destinationID uuid.UUID) domain.Package {
	return domain.Package{
		ID:              uuid.New(),
		DestinationID:   destinationID,
		DestinationName: "Kyoto Temples",
		Name:            "Autumn Leaves",
		Description:     "Ten days in the old capital",
		Type:            domain.PackagePremium,
		DurationDays:    10,
		Price:           149999,
		MaxTravelers:    10,
		AvailableSeats:  8,
		DepartureDate:   time.Date(2030, 11, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:      time.Date(2030, 11, 10, 0, 0, 0, 0, time.UTC),
		IncludesFlight:  true,
		IncludesHotel:   true,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
}

func bookingFixture(userID uuid.UUID) domain.Booking {
	return domain.Booking{
		ID:                uuid.New(),
		UserID:            userID,
		PackageID:         uuid.New(),
		PackageName:       "Autumn Leaves",
		DestinationName:   "Kyoto Temples",
		BookingDate:       time.Now().UTC(),
		TravelDate:        time.Date(2030, 11, 1, 0, 0, 0, 0, time.UTC),
		NumberOfTravelers: 2,
		TotalPrice:        299998,
		Status:            domain.BookingPending,
		ContactPhone:      "+81 75 000 0000",
		ContactEmail:      "traveller@example.com",
		UpdatedAt:         time.Now().UTC(),
	}
}

func userFixture() domain.User {
	return domain.User{
		ID:        uuid.New(),
		Username:  "hana",
		Email:     "hana@example.com",
		FirstName: "Hana",
		LastName:  "Sato",
		CreatedAt: time.Now().UTC(),
	}
}
