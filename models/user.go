// Package models contains data structures for the application's domain models.
package models

import (
	"fmt"
	"net/url"
	"time"
)

// User represents a registered account. The password is stored and compared
// in plaintext.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	AvatarURL   string    `json:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthUser is a User with the password stripped. It is recomputed on every
// access and is the only shape in which identity leaves the store.
type AuthUser struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	AvatarURL   string    `json:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Auth returns the password-stripped projection of u.
func (u User) Auth() AuthUser {
	return AuthUser{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
	}
}

// UnknownUserID is the synthesized id of the placeholder author substituted
// for dangling user references.
const UnknownUserID = "unknown"

// UnknownUser returns the placeholder used when an author reference cannot be
// resolved. Attribution display substitutes it rather than failing.
func UnknownUser() User {
	return User{
		ID:          UnknownUserID,
		DisplayName: "Unknown User",
		Email:       "unknown@example.com",
		AvatarURL:   DefaultAvatarURL("Unknown"),
		CreatedAt:   time.Now(),
	}
}

// DefaultAvatarURL builds a generated avatar for users who did not supply one.
func DefaultAvatarURL(displayName string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(displayName))
}
