// Package auth owns the access-token lifecycle: it answers "give me a
// usable token" and "refresh now" against the backend's token refresh
// endpoint, persisting results through the credential store.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sanaol/canteen/internal/client/credentials"
	"github.com/sanaol/canteen/internal/logging"
	"golang.org/x/sync/singleflight"
)

// ErrNoRefreshToken is returned by Refresh when the store holds no refresh
// token; the caller must re-authenticate.
var ErrNoRefreshToken = errors.New("no refresh token available")

// Manager obtains and refreshes the access token. Concurrent refresh
// requests are collapsed into one backend call via singleflight, so two
// requests that hit 401 at the same time share a single outcome.
type Manager struct {
	store    *credentials.Store
	endpoint string
	client   *http.Client
	group    singleflight.Group
	log      logging.Logger
}

// NewManager builds a Manager. endpoint is the absolute URL of the token
// refresh endpoint. The HTTP client must be a plain one: refresh calls
// must not pass back through the authenticated transport.
func NewManager(store *credentials.Store, endpoint string, client *http.Client, log logging.Logger) *Manager {
	if client == nil {
		client = http.DefaultClient
	}
	return &Manager{store: store, endpoint: endpoint, client: client, log: log}
}

// ValidToken returns the stored access token without validating it against
// the server. If no access token is stored but a refresh token is, it
// attempts exactly one refresh; a rejected refresh wipes the stored
// credentials. An empty result with nil error means the caller must
// re-authenticate. Storage failures propagate unchanged.
func (m *Manager) ValidToken(ctx context.Context) (string, error) {
	token, err := m.store.AccessToken(ctx)
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}

	refresh, err := m.store.RefreshToken(ctx)
	if err != nil {
		return "", err
	}
	if refresh == "" {
		return "", nil
	}

	token, err = m.Refresh(ctx)
	if err != nil {
		if errors.Is(err, ErrNoRefreshToken) {
			return "", nil
		}
		m.log.Warn(ctx, "refresh token rejected, clearing stored credentials", "error", err)
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			return "", clearErr
		}
		return "", nil
	}
	return token, nil
}

// Refresh exchanges the stored refresh token for a new access token and
// persists it. Unlike ValidToken, a failed refresh leaves the stored
// credentials untouched; the caller decides what to do with the error.
func (m *Manager) Refresh(ctx context.Context) (string, error) {
	v, err, _ := m.group.Do("refresh", func() (any, error) {
		return m.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (m *Manager) refresh(ctx context.Context) (string, error) {
	refresh, err := m.store.RefreshToken(ctx)
	if err != nil {
		return "", err
	}
	if refresh == "" {
		return "", ErrNoRefreshToken
	}

	body, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("token refresh rejected: %s: %s", resp.Status, bytes.TrimSpace(b))
	}

	var payload struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if payload.Access == "" {
		return "", errors.New("refresh response carried no access token")
	}

	if err := m.store.SetAccessToken(ctx, payload.Access); err != nil {
		return "", err
	}

	m.log.Debug(ctx, "access token refreshed")
	return payload.Access, nil
}
