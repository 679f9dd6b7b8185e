package credentials

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/sanaol/canteen/internal/client/models"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credstore_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM metadata`)
	require.NoError(t, err)

	return NewStore(db)
}

func TestStore_EmptyByDefault(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	access, err := s.AccessToken(ctx)
	require.NoError(t, err)
	require.Empty(t, access)

	refresh, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	require.Empty(t, refresh)

	user, err := s.CachedUser(ctx)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestStore_SetTokens_WritesPair(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetTokens(ctx, "A1", "R1"))

	access, err := s.AccessToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "A1", access)

	refresh, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "R1", refresh)
}

func TestStore_SetTokens_EmptyRefreshKeepsStoredOne(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetTokens(ctx, "A1", "R1"))
	require.NoError(t, s.SetTokens(ctx, "A2", ""))

	access, err := s.AccessToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "A2", access)

	refresh, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "R1", refresh, "refresh token must survive an access-only rotation")
}

func TestStore_Clear_RemovesWholeRecordAndIsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetTokens(ctx, "A1", "R1"))
	require.NoError(t, s.SetCachedUser(ctx, &models.UserProfile{ID: 7, Username: "ana"}))

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	access, err := s.AccessToken(ctx)
	require.NoError(t, err)
	require.Empty(t, access)

	refresh, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	require.Empty(t, refresh)

	user, err := s.CachedUser(ctx)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestStore_Clear_LeavesNonAuthKeys(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetLastMenuCount(ctx, 12))
	require.NoError(t, s.SetTokens(ctx, "A1", "R1"))
	require.NoError(t, s.Clear(ctx))

	n, err := s.LastMenuCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 12, n)
}

func TestStore_CachedUser_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	in := &models.UserProfile{ID: 42, Username: "guest-1", Name: "Guest", IsGuest: true}
	require.NoError(t, s.SetCachedUser(ctx, in))

	out, err := s.CachedUser(ctx)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestStore_LastMenuCount_DefaultsToZero(t *testing.T) {
	s := setupStore(t)

	n, err := s.LastMenuCount(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestStore_ConcurrentWritersDoNotInterleave(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.SetTokens(ctx, "A1", "R1")
			_ = s.Clear(ctx)
		}()
	}
	wg.Wait()

	// Whatever interleaving happened, the record must be all-or-nothing.
	access, err := s.AccessToken(ctx)
	require.NoError(t, err)
	refresh, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	if access == "" {
		require.Empty(t, refresh)
	} else {
		require.Equal(t, "A1", access)
		require.Equal(t, "R1", refresh)
	}
}
