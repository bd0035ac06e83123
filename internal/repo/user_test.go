package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/repo"
)

func TestUserRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewUserRepo(tx)
	ctx := context.Background()

	input := userFixture("ada-" + uuid.NewString()[:8])
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, input.Username, got.Username)
	assert.Equal(t, input.PasswordHash, got.PasswordHash)

	// The empty profile is created alongside the user.
	var n int
	require.NoError(t, tx.QueryRow(ctx, `SELECT count(*) FROM user_profiles WHERE user_id = $1`, got.ID).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestUserRepo_Create_DuplicateUsername(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewUserRepo(tx)
	name := "dup-" + uuid.NewString()[:8]
	mustCreateUser(t, tx, name)

	_, err := r.Create(context.Background(), userFixture(name))

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserRepo_GetByUsername(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewUserRepo(tx)
	created := mustCreateUser(t, tx, "grace-"+uuid.NewString()[:8])

	got, err := r.GetByUsername(context.Background(), created.Username)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))

	_, err := r.GetByUsername(context.Background(), "nobody-"+uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_GetByID(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewUserRepo(tx)
	created := mustCreateUser(t, tx, "linus-"+uuid.NewString()[:8])

	got, err := r.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, got.Username)

	_, err = r.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
