package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

func (a *App) showProfile(ctx context.Context) {
	profile, err := a.auth.CurrentUser(ctx)
	if err != nil {
		printError(err)
		return
	}
	if profile == nil {
		fmt.Println("Not logged in.")
		return
	}
	a.profile = profile

	fmt.Printf("Username: %s\n", profile.Username)
	if profile.Name != "" {
		fmt.Printf("Name:     %s\n", profile.Name)
	}
	if profile.Email != "" {
		fmt.Printf("Email:    %s\n", profile.Email)
	}
	if profile.IsGuest {
		fmt.Println("(guest session)")
	}
}

func (a *App) changeName(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter new display name", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.backend.UpdateName(ctx, name); err != nil {
		printError(err)
		return err
	}
	if a.profile != nil {
		a.profile.Name = name
	}
	fmt.Println("Name updated.")
	return nil
}

// changeAvatar uploads a local image as the account avatar, encoded the
// way the backend expects it (base64 data URI in a JSON body).
func (a *App) changeAvatar(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to image file", os.Stdout)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	uri := "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)
	if err := a.backend.UpdateAvatar(ctx, uri); err != nil {
		printError(err)
		return err
	}
	fmt.Println("Avatar updated.")
	return nil
}

func (a *App) changePassword(ctx context.Context) error {
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if err := a.backend.ChangePassword(ctx, string(password)); err != nil {
		printError(err)
		return err
	}
	fmt.Println("Password changed.")
	return nil
}
