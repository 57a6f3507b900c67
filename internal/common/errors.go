package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")

	// Match errors
	ErrSelfSwipe     = errors.New("cannot swipe on yourself")
	ErrMatchNotFound = errors.New("match not found")

	// Chat errors
	ErrChatRoomNotFound = errors.New("chat room not found")
	ErrNotParticipant   = errors.New("user is not a participant of this chat room")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
