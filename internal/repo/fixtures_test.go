package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/repo"
	"github.com/pkordes/travel-booking/testutil"
)

// newTestTx opens a transaction against the test database that is rolled
// back when the test finishes. Every repo in a test shares it, so parent rows
// (destinations, users) are visible to child inserts without any cleanup SQL.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func destinationFixture() domain.Destination {
	return domain.Destination{
		Name:        "Kyoto",
		Description: "Temples and gardens",
		Country:     "Japan",
		City:        "Kyoto",
	}
}

// packageFixture returns a basic package with 10 seats at 100.00, departing
// 2030-06-01 and returning 2030-06-10.
func packageFixture(destinationID uuid.UUID) domain.Package {
	return domain.Package{
		DestinationID:  destinationID,
		Name:           "Temple Week",
		Description:    "Guided tours",
		Type:           domain.PackageBasic,
		DurationDays:   10,
		Price:          10000,
		MaxTravelers:   10,
		AvailableSeats: 10,
		DepartureDate:  date(2030, time.June, 1),
		ReturnDate:     date(2030, time.June, 10),
		IncludesFlight: true,
		IncludesHotel:  true,
	}
}

func userFixture(username string) domain.User {
	return domain.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashnotarealhash12",
	}
}

func mustCreateDestination(t *testing.T, db pgx.Tx, d domain.Destination) domain.Destination {
	t.Helper()
	got, err := repo.NewDestinationRepo(db).Create(context.Background(), d)
	require.NoError(t, err, "create destination fixture")
	return got
}

func mustCreatePackage(t *testing.T, db pgx.Tx, p domain.Package) domain.Package {
	t.Helper()
	got, err := repo.NewPackageRepo(db).Create(context.Background(), p)
	require.NoError(t, err, "create package fixture")
	return got
}

func mustCreateUser(t *testing.T, db pgx.Tx, username string) domain.User {
	t.Helper()
	got, err := repo.NewUserRepo(db).Create(context.Background(), userFixture(username))
	require.NoError(t, err, "create user fixture")
	return got
}
