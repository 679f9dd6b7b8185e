package api

import (
	"context"
	"strings"

	"github.com/sanaol/canteen/internal/client/models"
)

// Login authenticates with username/password and persists the issued
// token pair. The username is normalized the way the mobile app did
// (trimmed, lowercased) so stored accounts match.
func (c *Client) Login(ctx context.Context, username, password string) (*models.Session, error) {
	body := map[string]string{
		"username": strings.ToLower(strings.TrimSpace(username)),
		"password": password,
	}

	var session models.Session
	if err := c.post(ctx, "/accounts/login/", body, &session); err != nil {
		return nil, err
	}

	if err := c.store.SetTokens(ctx, session.AccessToken, session.RefreshToken); err != nil {
		return nil, err
	}
	return &session, nil
}

// GuestLogin obtains an anonymous session. The backend answers with a
// token pair plus a throwaway guest profile, which we cache.
func (c *Client) GuestLogin(ctx context.Context) (*models.Session, error) {
	var session models.Session
	if err := c.get(ctx, "/accounts/guest-login/", nil, &session); err != nil {
		return nil, err
	}

	if err := c.store.SetTokens(ctx, session.AccessToken, session.RefreshToken); err != nil {
		return nil, err
	}
	if session.User != nil {
		if err := c.store.SetCachedUser(ctx, session.User); err != nil {
			return nil, err
		}
	}
	return &session, nil
}

// Register creates a new account. Validation failures come back as a
// KindBadRequest error with per-field messages in Fields.
func (c *Client) Register(ctx context.Context, reg models.Registration) error {
	return c.post(ctx, "/accounts/register/", reg, nil)
}

// Profile fetches the current account profile and refreshes the local
// cache.
func (c *Client) Profile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.get(ctx, "/accounts/profile/", nil, &profile); err != nil {
		return nil, err
	}
	if err := c.store.SetCachedUser(ctx, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateName changes the display name on the account.
func (c *Client) UpdateName(ctx context.Context, name string) error {
	return c.patch(ctx, "/accounts/update-name/", map[string]string{"name": name}, nil)
}

// ChangePassword sets a new password for the logged-in account.
func (c *Client) ChangePassword(ctx context.Context, password string) error {
	return c.patch(ctx, "/accounts/change-password/", map[string]string{"password": password}, nil)
}

// UpdateAvatar uploads a new avatar as a base64 data URI, matching the
// backend's JSON-body contract.
func (c *Client) UpdateAvatar(ctx context.Context, dataURI string) error {
	return c.patch(ctx, "/accounts/update-avatar/", map[string]string{"avatar": dataURI}, nil)
}

// Logout wipes the locally stored credential record. It is idempotent and
// makes no network call; the backend session simply expires.
func (c *Client) Logout(ctx context.Context) error {
	return c.store.Clear(ctx)
}
