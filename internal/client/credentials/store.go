// Package credentials persists the client's auth state: access token,
// refresh token, and the cached user profile. The three keys form one
// logical record; multi-key writes and the wipe go through a single
// transaction so a concurrent refresh can never observe a half-written
// pair.
package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/sanaol/canteen/internal/client/migrations"
	"github.com/sanaol/canteen/internal/client/models"
	"github.com/sanaol/canteen/internal/client/repositories/metadata"
	"github.com/sanaol/canteen/internal/dbx"
)

// Storage keys. The auth.* keys are treated as one atomic record.
const (
	KeyAccessToken   = "auth.access_token"
	KeyRefreshToken  = "auth.refresh_token"
	KeyCachedUser    = "auth.user"
	KeyLastMenuCount = "menu.last_item_count"
)

// Store is the durable credential store backed by the local sqlite
// database. All writers serialize on a store-scoped mutex.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// NewStore wraps an already-open database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (or creates) the local database at dsn, migrates it, and
// returns a ready Store.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewStore(db), nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

func (s *Store) getString(ctx context.Context, key string) (string, error) {
	v, err := s.repo().Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// AccessToken returns the stored access token, or "" if none is stored.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyAccessToken)
}

// RefreshToken returns the stored refresh token, or "" if none is stored.
func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyRefreshToken)
}

// SetAccessToken overwrites only the access token. Used after a refresh,
// which rotates the access token but keeps the refresh token.
func (s *Store) SetAccessToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo().Set(ctx, KeyAccessToken, []byte(token))
}

// SetTokens writes the access/refresh pair in one transaction. An empty
// refresh token leaves the stored one untouched.
func (s *Store) SetTokens(ctx context.Context, access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyAccessToken, []byte(access)); err != nil {
			return err
		}
		if refresh != "" {
			if err := repo.Set(ctx, KeyRefreshToken, []byte(refresh)); err != nil {
				return err
			}
		}
		return nil
	})
}

// CachedUser returns the locally cached profile, or nil if none is stored.
func (s *Store) CachedUser(ctx context.Context) (*models.UserProfile, error) {
	v, err := s.repo().Get(ctx, KeyCachedUser)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, nil
	}
	var u models.UserProfile
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("failed to decode cached user: %w", err)
	}
	return &u, nil
}

// SetCachedUser stores the profile as JSON.
func (s *Store) SetCachedUser(ctx context.Context, u *models.UserProfile) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode cached user: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo().Set(ctx, KeyCachedUser, data)
}

// Clear removes the access token, refresh token, and cached user in one
// transaction. Calling it on an already-empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyCachedUser} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// LastMenuCount returns the last seen menu item count, 0 if never stored.
func (s *Store) LastMenuCount(ctx context.Context) (int, error) {
	v, err := s.repo().Get(ctx, KeyLastMenuCount)
	if err != nil {
		return 0, err
	}
	if len(v) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(string(v))
	if err != nil {
		return 0, fmt.Errorf("failed to parse last menu count: %w", err)
	}
	return n, nil
}

// SetLastMenuCount stores the menu item count used by the "new items"
// check.
func (s *Store) SetLastMenuCount(ctx context.Context, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo().Set(ctx, KeyLastMenuCount, []byte(strconv.Itoa(n)))
}
