// Package services contains the application services sitting between the
// CLI and the API client: session management, menu browsing, order
// placement and tracking, and catering bookings.
package services

import (
	"context"

	"github.com/sanaol/canteen/internal/client/credentials"
	"github.com/sanaol/canteen/internal/client/models"
)

// authAPI is the slice of the API client the auth service needs.
type authAPI interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	GuestLogin(ctx context.Context) (*models.Session, error)
	Register(ctx context.Context, reg models.Registration) error
	Profile(ctx context.Context) (*models.UserProfile, error)
	Logout(ctx context.Context) error
}

// AuthService manages the user's session.
//
// Contract:
//   - Login/GuestLogin: authenticate and persist the token pair.
//   - Register: create a new account; the caller logs in afterwards.
//   - CurrentUser: cached profile when available, otherwise remote fetch.
//   - Logout: wipe local credentials; safe to call repeatedly.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.UserProfile, error)
	GuestLogin(ctx context.Context) (*models.UserProfile, error)
	Register(ctx context.Context, reg models.Registration) error
	CurrentUser(ctx context.Context) (*models.UserProfile, error)
	Logout(ctx context.Context) error
}

type authService struct {
	api   authAPI
	store *credentials.Store
}

// NewAuthService binds the service to the API client and credential store.
func NewAuthService(api authAPI, store *credentials.Store) AuthService {
	return &authService{api: api, store: store}
}

// Login authenticates and returns the account profile. The profile fetch
// runs on the fresh session; its failure is not fatal to the login.
func (s *authService) Login(ctx context.Context, username, password string) (*models.UserProfile, error) {
	if _, err := s.api.Login(ctx, username, password); err != nil {
		return nil, err
	}

	profile, err := s.api.Profile(ctx)
	if err != nil {
		return nil, nil
	}
	return profile, nil
}

func (s *authService) GuestLogin(ctx context.Context) (*models.UserProfile, error) {
	session, err := s.api.GuestLogin(ctx)
	if err != nil {
		return nil, err
	}
	return session.User, nil
}

func (s *authService) Register(ctx context.Context, reg models.Registration) error {
	return s.api.Register(ctx, reg)
}

// CurrentUser prefers the locally cached profile and falls back to the
// backend, so profile screens render offline-first like the mobile app.
func (s *authService) CurrentUser(ctx context.Context) (*models.UserProfile, error) {
	cached, err := s.store.CachedUser(ctx)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}
	return s.api.Profile(ctx)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.api.Logout(ctx)
}
