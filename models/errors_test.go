package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"duplicate email", NewDuplicateEmailError(), CodeDuplicateEmail},
		{"invalid credentials", NewInvalidCredentialsError(), CodeInvalidCredentials},
		{"user not found", NewUserNotFoundError(), CodeUserNotFound},
		{"incorrect password", NewIncorrectPasswordError(), CodeIncorrectPassword},
		{"post not found", NewPostNotFoundError(), CodePostNotFound},
		{"comment not found", NewCommentNotFoundError(), CodeCommentNotFound},
		{"not authenticated", NewNotAuthenticatedError("comment"), CodeNotAuthenticated},
		{"forbidden", NewForbiddenError("edit your own posts"), CodeForbidden},
		{"already liked", NewAlreadyLikedError(), CodeAlreadyLiked},
		{"not liked", NewNotLikedError(), CodeNotLiked},
		{"wrapped", fmt.Errorf("op failed: %w", NewPostNotFoundError()), CodePostNotFound},
		{"plain error", errors.New("boom"), ""},
		{"nil", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CodeOf(tc.err))
		})
	}
}

func TestAppErrorMessages(t *testing.T) {
	assert.Equal(t, "You must be logged in to create a post", NewNotAuthenticatedError("create a post").Error())
	assert.Equal(t, "You can only delete your own comments", NewForbiddenError("delete your own comments").Error())
	assert.Equal(t, "Invalid email or password", NewInvalidCredentialsError().Error())
}

func TestInternalErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeInternal, CodeOf(err))
}
