package config

import (
	"errors"
)

// Sentinel error kinds callers can match with errors.Is.
var (
	ErrInvalidConfig = errors.New("configuration failed validation")
	ErrLoadConfig    = errors.New("configuration could not be loaded")
)
