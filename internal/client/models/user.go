// Package models defines client-side data shapes for the FinKeeper CLI.
// All entities are server-owned; the client holds read-mostly copies
// decoded from JSON responses.
package models

import "time"

// User is the authenticated account as reported by the backend.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthData is the payload of login and register responses.
type AuthData struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}

// MeData is the payload of the identity probe.
type MeData struct {
	User User `json:"user"`
}

// RefreshData is the payload of a successful token refresh.
type RefreshData struct {
	AccessToken string `json:"accessToken"`
}

// ProfileInput carries editable profile fields.
type ProfileInput struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// PasswordInput carries a password change request.
type PasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
