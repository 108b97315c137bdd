package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthStripsPassword(t *testing.T) {
	u := User{
		ID:          "u1",
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Password:    "secret",
		AvatarURL:   "https://example.com/a.png",
	}
	auth := u.Auth()
	assert.Equal(t, u.ID, auth.ID)
	assert.Equal(t, u.DisplayName, auth.DisplayName)
	assert.Equal(t, u.Email, auth.Email)
	assert.Equal(t, u.AvatarURL, auth.AvatarURL)
}

func TestUnknownUserPlaceholder(t *testing.T) {
	u := UnknownUser()
	assert.Equal(t, UnknownUserID, u.ID)
	assert.Equal(t, "Unknown User", u.DisplayName)
	assert.Empty(t, u.Password)
}

func TestDefaultAvatarURLEscapesName(t *testing.T) {
	got := DefaultAvatarURL("Alice B & Co")
	assert.Contains(t, got, "ui-avatars.com")
	assert.NotContains(t, got, " ", "display name must be query-escaped")
	assert.NotContains(t, got, "&Co")
}

func TestLikedBy(t *testing.T) {
	p := Post{Likes: []string{"u1", "u2"}}
	assert.True(t, p.LikedBy("u1"))
	assert.False(t, p.LikedBy("u3"))

	var empty Post
	assert.False(t, empty.LikedBy("u1"), "nil likes set never matches")
}
