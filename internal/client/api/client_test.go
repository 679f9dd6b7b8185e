package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sanaol/canteen/internal/client/credentials"
	"github.com/sanaol/canteen/internal/logging"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStore(t *testing.T) *credentials.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:api_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return credentials.NewStore(db)
}

func newTestClient(t *testing.T, store *credentials.Store, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(store, Config{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Logger:  testLogger(),
	})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(setupStore(t), Config{Logger: testLogger()})
	require.Error(t, err)
}

func TestDo_InjectsStoredBearerToken(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.SetTokens(ctx, "A1", "R1"))

	var gotAuth string
	c := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, []any{})
	}))

	_, err := c.MenuItems(ctx, "")
	require.NoError(t, err)
	require.Equal(t, "Bearer A1", gotAuth, "outgoing request must carry the exact stored token")
}

func TestDo_MissingTokenSendsUnauthenticatedRequest(t *testing.T) {
	store := setupStore(t)

	var gotAuth string
	var hadAuth bool
	c := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadAuth = r.Header["Authorization"]
		writeJSON(w, http.StatusOK, []any{})
	}))

	_, err := c.MenuItems(context.Background(), "")
	require.NoError(t, err)
	require.False(t, hadAuth, "no Authorization header expected, got %q", gotAuth)
}

func TestDo_401RefreshesOnceAndReplays(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.SetTokens(ctx, "A1", "R1"))

	var menuCalls, refreshCalls int
	var retriedAuth, refreshedWith string
	mux := http.NewServeMux()
	mux.HandleFunc("/menu/menu-items/", func(w http.ResponseWriter, r *http.Request) {
		menuCalls++
		if r.Header.Get("Authorization") == "Bearer A1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "token expired"})
			return
		}
		retriedAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, []any{})
	})
	mux.HandleFunc("/accounts/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		var body struct {
			Refresh string `json:"refresh"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		refreshedWith = body.Refresh
		writeJSON(w, http.StatusOK, map[string]string{"access": "A2"})
	})

	c := newTestClient(t, store, mux)

	_, err := c.MenuItems(ctx, "")
	require.NoError(t, err)

	require.Equal(t, 2, menuCalls, "original request plus exactly one replay")
	require.Equal(t, 1, refreshCalls)
	require.Equal(t, "R1", refreshedWith)
	require.Equal(t, "Bearer A2", retriedAuth, "replay must carry the refreshed token")

	access, err := store.AccessToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "A2", access, "refreshed token must be persisted")

	refresh, err := store.RefreshToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "R1", refresh)
}

func TestDo_SecondUnauthorizedIsFinal(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.SetTokens(ctx, "A1", "R1"))

	var menuCalls, refreshCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/menu/menu-items/", func(w http.ResponseWriter, r *http.Request) {
		menuCalls++
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "still no"})
	})
	mux.HandleFunc("/accounts/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		writeJSON(w, http.StatusOK, map[string]string{"access": "A2"})
	})

	c := newTestClient(t, store, mux)

	_, err := c.MenuItems(ctx, "")
	require.True(t, IsKind(err, KindUnauthorized), "second 401 must surface as a final auth error, got %v", err)
	require.Equal(t, 2, menuCalls, "must not loop past one replay")
	require.Equal(t, 1, refreshCalls, "must not refresh a second time")
}

func TestDo_RefreshFailurePropagatesOriginal401(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.SetTokens(ctx, "A1", "R1"))

	var menuCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/menu/menu-items/", func(w http.ResponseWriter, r *http.Request) {
		menuCalls++
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "token expired"})
	})
	mux.HandleFunc("/accounts/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "refresh expired"})
	})

	c := newTestClient(t, store, mux)

	_, err := c.MenuItems(ctx, "")
	require.True(t, IsKind(err, KindUnauthorized), "original 401 must propagate, got %v", err)
	require.Equal(t, 1, menuCalls, "no replay without a fresh token")
}

func TestDo_Concurrent401sShareOneRefresh(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.SetTokens(ctx, "A1", "R1"))

	arrived := make(chan struct{}, 2)
	release := make(chan struct{})
	var refreshCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer A1" {
			// Hold both first attempts until each has arrived, so the
			// two 401s land together.
			arrived <- struct{}{}
			<-release
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "token expired"})
			return
		}
		writeJSON(w, http.StatusOK, []any{})
	})
	mux.HandleFunc("/accounts/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		time.Sleep(100 * time.Millisecond)
		writeJSON(w, http.StatusOK, map[string]string{"access": "A2"})
	})

	c := newTestClient(t, store, mux)

	errCh := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := c.Orders(ctx)
			errCh <- err
		}()
	}

	<-arrived
	<-arrived
	close(release)

	require.NoError(t, <-errCh)
	require.NoError(t, <-errCh)
	require.Equal(t, 1, refreshCalls, "concurrent 401s must share a single refresh")
}

func TestDo_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       any
		wantKind   Kind
		wantInMsg  string
		wantFields map[string][]string
	}{
		{
			name:      "400 detail",
			status:    http.StatusBadRequest,
			body:      map[string]string{"detail": "password too short"},
			wantKind:  KindBadRequest,
			wantInMsg: "password too short",
		},
		{
			name:       "400 field errors",
			status:     http.StatusBadRequest,
			body:       map[string]any{"errors": map[string][]string{"email": {"already registered"}}},
			wantKind:   KindBadRequest,
			wantFields: map[string][]string{"email": {"already registered"}},
		},
		{
			name:      "409 duplicate",
			status:    http.StatusConflict,
			body:      map[string]string{"message": "Duplicate order."},
			wantKind:  KindConflict,
			wantInMsg: "Duplicate order.",
		},
		{
			name:     "404",
			status:   http.StatusNotFound,
			body:     map[string]string{},
			wantKind: KindNotFound,
		},
		{
			name:     "500",
			status:   http.StatusInternalServerError,
			body:     map[string]string{"error": "boom"},
			wantKind: KindServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := setupStore(t)
			c := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			}))

			_, err := c.Orders(context.Background())
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.wantKind, apiErr.Kind)
			require.Equal(t, tt.status, apiErr.Status)
			if tt.wantInMsg != "" {
				require.Contains(t, apiErr.Message, tt.wantInMsg)
			}
			if tt.wantFields != nil {
				require.Equal(t, tt.wantFields, apiErr.Fields)
			}
		})
	}
}

func TestDo_NetworkFailureIsKindNetwork(t *testing.T) {
	store := setupStore(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	c, err := New(store, Config{BaseURL: srv.URL, Timeout: time.Second, Logger: testLogger()})
	require.NoError(t, err)

	_, err = c.Orders(context.Background())
	require.True(t, IsKind(err, KindNetwork), "expected network error, got %v", err)
}

func TestDo_MalformedJSONIsKindDecode(t *testing.T) {
	store := setupStore(t)
	c := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))

	_, err := c.Orders(context.Background())
	require.True(t, IsKind(err, KindDecode), "expected decode error, got %v", err)
}
