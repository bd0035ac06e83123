package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/service"
)

func validRegistration() domain.Registration {
	return domain.Registration{
		Username:        "ada",
		Email:           "ada@example.com",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Password:        "analytical-engine",
		PasswordConfirm: "analytical-engine",
	}
}

// echoUsers stores created users in memory, keyed by username.
func echoUsers() *mockUserRepo {
	byName := map[string]domain.User{}
	return &mockUserRepo{
		create: func(_ context.Context, u domain.User) (domain.User, error) {
			if _, ok := byName[u.Username]; ok {
				return domain.User{}, domain.ErrConflict
			}
			u.ID = uuid.New()
			byName[u.Username] = u
			return u, nil
		},
		getByUsername: func(_ context.Context, username string) (domain.User, error) {
			u, ok := byName[username]
			if !ok {
				return domain.User{}, domain.ErrNotFound
			}
			return u, nil
		},
	}
}

func newAccountService(users *mockUserRepo, profiles *mockProfileRepo) *service.AccountService {
	return service.NewAccountService(users, profiles).WithHashCost(bcrypt.MinCost)
}

func TestAccountService_Register_HashesPassword(t *testing.T) {
	svc := newAccountService(echoUsers(), &mockProfileRepo{})

	got, err := svc.Register(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.NotEqual(t, "analytical-engine", got.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("analytical-engine")))
}

func TestAccountService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Registration)
	}{
		{"missing username", func(r *domain.Registration) { r.Username = "  " }},
		{"long username", func(r *domain.Registration) { r.Username = strings.Repeat("u", 151) }},
		{"missing email", func(r *domain.Registration) { r.Email = "" }},
		{"missing first name", func(r *domain.Registration) { r.FirstName = "" }},
		{"long last name", func(r *domain.Registration) { r.LastName = strings.Repeat("l", 31) }},
		{"short password", func(r *domain.Registration) { r.Password, r.PasswordConfirm = "short", "short" }},
		{"mismatched confirmation", func(r *domain.Registration) { r.PasswordConfirm = "something-else" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newAccountService(&mockUserRepo{}, &mockProfileRepo{}) // create unset: must not be called
			reg := validRegistration()
			tc.mutate(&reg)

			_, err := svc.Register(context.Background(), reg)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	svc := newAccountService(echoUsers(), &mockProfileRepo{})
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validRegistration())
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAccountService_Authenticate(t *testing.T) {
	svc := newAccountService(echoUsers(), &mockProfileRepo{})
	ctx := context.Background()
	created, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "ada", "analytical-engine")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ada", "difference-engine")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "babbage", "analytical-engine")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestAccountService_GetProfile(t *testing.T) {
	userID := uuid.New()
	svc := newAccountService(&mockUserRepo{}, &mockProfileRepo{
		getOrCreate: func(_ context.Context, id uuid.UUID) (domain.Profile, error) {
			return domain.Profile{UserID: id}, nil
		},
	})

	got, err := svc.GetProfile(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	echo := &mockProfileRepo{update: func(_ context.Context, p domain.Profile) (domain.Profile, error) { return p, nil }}
	past := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	future := time.Now().AddDate(1, 0, 0)

	tests := []struct {
		name    string
		profile domain.Profile
		wantErr bool
	}{
		{"valid", domain.Profile{PhoneNumber: " 555-0100 ", PassportNumber: "X1", DateOfBirth: &past}, false},
		{"empty is fine", domain.Profile{}, false},
		{"long phone", domain.Profile{PhoneNumber: strings.Repeat("1", 21)}, true},
		{"long passport", domain.Profile{PassportNumber: strings.Repeat("P", 51)}, true},
		{"born in the future", domain.Profile{DateOfBirth: &future}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newAccountService(&mockUserRepo{}, echo)

			got, err := svc.UpdateProfile(context.Background(), tc.profile)

			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tc.profile.PhoneNumber), got.PhoneNumber)
		})
	}
}
