// Package model contains the domain types shared between layers: the
// closed set of defensive positions and the raw player record shape
// produced by the input parsers.
package model

import "strings"

// Position is one of the eight defensive position codes.
type Position string

// The fixed defensive alignment. No other codes are valid.
const (
	Catcher     Position = "C"
	FirstBase   Position = "1B"
	SecondBase  Position = "2B"
	ThirdBase   Position = "3B"
	Shortstop   Position = "SS"
	LeftField   Position = "LF"
	CenterField Position = "CF"
	RightField  Position = "RF"
)

// AllPositions lists the eight positions in canonical order. Callers must
// not mutate it.
var AllPositions = []Position{
	Catcher, FirstBase, SecondBase, ThirdBase,
	Shortstop, LeftField, CenterField, RightField,
}

var validPositions = map[Position]struct{}{
	Catcher: {}, FirstBase: {}, SecondBase: {}, ThirdBase: {},
	Shortstop: {}, LeftField: {}, CenterField: {}, RightField: {},
}

// ParsePosition normalizes a raw code (trim, upper-case) and reports
// whether it names a valid defensive position.
func ParsePosition(raw string) (Position, bool) {
	p := Position(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := validPositions[p]
	return p, ok
}

// Valid reports whether p belongs to the fixed 8-position set.
func (p Position) Valid() bool {
	_, ok := validPositions[p]
	return ok
}

func (p Position) String() string { return string(p) }
