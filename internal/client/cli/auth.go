package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sanaol/canteen/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the new account's details and creates it via the
// AuthService. The user logs in separately afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	reg := models.Registration{
		Username: username,
		Email:    email,
		Name:     name,
		Password: string(password),
	}
	if err := a.auth.Register(ctx, reg); err != nil {
		printError(err)
		return err
	}

	fmt.Println("Account created, you can log in now.")
	return nil
}

// Login prompts for credentials and authenticates. On success the profile
// is kept on the App for the prompt and order placement.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	profile, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		printError(err)
		return err
	}

	if profile == nil {
		// Session established but the profile fetch failed; pick the
		// cached copy up lazily.
		profile, _ = a.auth.CurrentUser(ctx)
	}
	a.profile = profile
	log.Printf("Login successful")
	return nil
}

// GuestLogin starts an anonymous session for browsing and ordering
// without an account.
func (a *App) GuestLogin(ctx context.Context) error {
	profile, err := a.auth.GuestLogin(ctx)
	if err != nil {
		printError(err)
		return err
	}
	a.profile = profile
	log.Printf("Browsing as guest")
	return nil
}

// Logout wipes the stored credentials and forgets the in-memory session
// state, including the cart.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printError(err)
		return err
	}
	a.profile = nil
	a.cart.Clear()
	return nil
}
