package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.toml")
	cfg := viper.New()
	cfg.Set(sessionPathKey, path)

	store, err := NewStore(cfg)
	require.NoError(t, err)
	return store, path
}

func testSession() domain.Session {
	return domain.Session{
		User: &domain.UserSummary{
			ID:       "u1",
			Username: "alice",
			Email:    "a@b.com",
			Role:     domain.RoleDeveloper,
		},
		Token: "t1",
	}
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, testSession()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(sessionFileMode), info.Mode().Perm())

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, testSession(), got)
}

func TestStoreGetMissingFile(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreHealsMalformedFile(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o600))

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.NoFileExists(t, path)
}

func TestStoreTreatsHalfWrittenSessionAsCorrupt(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	// Token without a user id is unusable; both must be present together.
	require.NoError(t, os.WriteFile(path, []byte("version = 1\ntoken = \"t1\"\n"), 0o600))

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.NoFileExists(t, path)
}

func TestStoreSetRejectsInvalidSession(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)

	err := store.Set(context.Background(), domain.Session{Token: "t1"})
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestStoreSetOverwritesPreviousSession(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, testSession()))

	next := testSession()
	next.Token = "t2"
	next.User.Username = "bob"
	require.NoError(t, store.Set(ctx, next))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", got.Token)
	assert.Equal(t, "bob", got.User.Username)
}

func TestStoreClearIsIdempotent(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, testSession()))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	assert.NoFileExists(t, path)
	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreLeavesNoTempFilesBehind(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	require.NoError(t, store.Set(context.Background(), testSession()))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
