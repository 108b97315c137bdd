package models

import (
	"errors"
	"fmt"
)

// Error codes for expected business failures. Operations report these
// through *AppError return values; they are never panicked.
const (
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeIncorrectPassword  = "INCORRECT_PASSWORD"
	CodePostNotFound       = "POST_NOT_FOUND"
	CodeCommentNotFound    = "COMMENT_NOT_FOUND"
	CodeNotAuthenticated   = "NOT_AUTHENTICATED"
	CodeForbidden          = "FORBIDDEN"
	CodeAlreadyLiked       = "ALREADY_LIKED"
	CodeNotLiked           = "NOT_LIKED"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// CodeOf returns the business-error code carried by err, or the empty string
// when err is nil or not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Predefined error constructors. Messages match what the UI shows.

func NewDuplicateEmailError() *AppError {
	return &AppError{Code: CodeDuplicateEmail, Message: "Email already registered"}
}

func NewInvalidCredentialsError() *AppError {
	return &AppError{Code: CodeInvalidCredentials, Message: "Invalid email or password"}
}

func NewUserNotFoundError() *AppError {
	return &AppError{Code: CodeUserNotFound, Message: "User not found"}
}

func NewIncorrectPasswordError() *AppError {
	return &AppError{Code: CodeIncorrectPassword, Message: "Current password is incorrect"}
}

func NewPostNotFoundError() *AppError {
	return &AppError{Code: CodePostNotFound, Message: "Post not found"}
}

func NewCommentNotFoundError() *AppError {
	return &AppError{Code: CodeCommentNotFound, Message: "Comment not found"}
}

// NewNotAuthenticatedError names the attempted action, e.g. "create a post".
func NewNotAuthenticatedError(action string) *AppError {
	return &AppError{Code: CodeNotAuthenticated, Message: fmt.Sprintf("You must be logged in to %s", action)}
}

// NewForbiddenError names the attempted action on someone else's resource,
// e.g. "edit your own posts".
func NewForbiddenError(action string) *AppError {
	return &AppError{Code: CodeForbidden, Message: fmt.Sprintf("You can only %s", action)}
}

func NewAlreadyLikedError() *AppError {
	return &AppError{Code: CodeAlreadyLiked, Message: "Already liked"}
}

func NewNotLikedError() *AppError {
	return &AppError{Code: CodeNotLiked, Message: "Not liked yet"}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal error", Err: err}
}
