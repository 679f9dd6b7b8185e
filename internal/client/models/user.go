// Package models defines the data shapes exchanged with the ordering
// backend and cached locally by the client.
package models

// UserProfile is the account profile returned by GET /accounts/profile/.
type UserProfile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	IsGuest   bool   `json:"is_guest,omitempty"`
}

// Session is the token pair issued by login, guest login, or refresh.
type Session struct {
	AccessToken  string       `json:"access"`
	RefreshToken string       `json:"refresh"`
	User         *UserProfile `json:"user,omitempty"`
}

// Registration is the payload for POST /accounts/register/.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}
