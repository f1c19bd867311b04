package models

import "time"

// User is the profile returned by /api/auth/me.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Course    string    `json:"course"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
