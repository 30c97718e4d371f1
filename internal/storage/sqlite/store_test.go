package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sotchelper/internal/account"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}

func TestCreateGetRoundTrip(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	created := time.Date(2026, time.February, 22, 16, 40, 0, 0, time.UTC)
	in := account.User{ID: "id-1", Username: "Dakota", PasswordHash: "hash", CreatedAt: created}

	require.NoError(t, store.Create(ctx, in))

	got, err := store.GetByUsername(ctx, "Dakota")
	require.NoError(t, err)
	assert.Equal(t, in, got)

	_, err = store.GetByUsername(ctx, "dakota2")
	assert.ErrorIs(t, err, account.ErrNotFound)
}

func TestCreateDuplicateUsername(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, account.User{ID: "a", Username: "player", PasswordHash: "x", CreatedAt: time.Now()}))

	err := store.Create(ctx, account.User{ID: "b", Username: "player", PasswordHash: "y", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, account.ErrUsernameTaken)

	got, err := store.GetByUsername(ctx, "player")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, "x", got.PasswordHash)
}

func TestReopenKeepsUsers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")
	ctx := context.Background()

	store, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, account.User{ID: "a", Username: "keeper", PasswordHash: "x", CreatedAt: time.Now()}))
	require.NoError(t, store.Close())

	store, err = Open(ctx, path)
	require.NoError(t, err)
	defer store.Close()
	_, err = store.GetByUsername(ctx, "keeper")
	assert.NoError(t, err)
}

func TestServiceRegisterOnSQLite(t *testing.T) {
	store := openTempStore(t)
	svc := account.NewService(store, account.WithHashCost(bcrypt.MinCost))

	u, err := svc.Register(context.Background(), "sqliteuser", "secret", "secret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))

	_, err = svc.Register(context.Background(), "sqliteuser", "secret", "secret")
	var verr *account.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, account.MsgUsernameTaken, verr.Message)
}
