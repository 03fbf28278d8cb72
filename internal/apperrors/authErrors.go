package apperrors

import "errors"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrProfileNotFound = errors.New("profile not found")
	ErrRankTooLow      = errors.New("rank too low to create a team")
	ErrUnknownAction   = errors.New("unknown action")
)
