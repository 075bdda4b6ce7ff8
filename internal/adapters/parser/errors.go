package parser

import "errors"

// Sentinel error kinds for this package. Callers match with errors.Is.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidFormat     = errors.New("invalid input format")
	ErrNoPitcher         = errors.New("pitcher statistics not found")
	ErrNoBatters         = errors.New("no batter statistics found")
)
