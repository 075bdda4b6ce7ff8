package repository

import "errors"

// Sentinel kinds for score store errors.
var (
	ErrNotFound        = errors.New("player not found")
	ErrInvalidLimit    = errors.New("invalid leaderboard limit")
	ErrUnknownPosition = errors.New("unknown position")
)
