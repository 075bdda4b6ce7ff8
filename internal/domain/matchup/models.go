// Package matchup implements offense scoring for batter-vs-pitcher
// matchups: a weighted blend of offensive rate stats plus independent
// rule-based adjustments. Unlike the defense package it has no
// similarity or prediction machinery.
package matchup

import (
	"fmt"
	"strings"
)

// Batter handedness codes.
const (
	LeftHanded   = "L"
	RightHanded  = "R"
	SwitchHitter = "S"
)

// Pitcher handedness codes.
const (
	LeftHandedPitcher  = "LHP"
	RightHandedPitcher = "RHP"
)

// Batter holds one batter's offensive statistics. Build via NewBatter to
// get validation and handedness normalization.
type Batter struct {
	Name       string
	BA         float64 // batting average, [0,1]
	Strikeouts int
	OBP        float64 // on-base percentage, [0,1]
	SLG        float64 // slugging percentage, [0,1]
	HomeRuns   int
	RBI        int
	Handedness string // L, R, or S
}

// NewBatter validates the raw fields and returns a normalized Batter.
// Validation errors here are fatal by design: matchup inputs come from
// the parsing layer, which surfaces them to the caller.
func NewBatter(name string, ba float64, strikeouts int, obp, slg float64, homeRuns, rbi int, handedness string) (Batter, error) {
	b := Batter{
		Name:       strings.TrimSpace(name),
		BA:         ba,
		Strikeouts: strikeouts,
		OBP:        obp,
		SLG:        slg,
		HomeRuns:   homeRuns,
		RBI:        rbi,
		Handedness: strings.ToUpper(strings.TrimSpace(handedness)),
	}
	if b.Name == "" {
		return Batter{}, fmt.Errorf("batter name cannot be empty")
	}
	if b.BA < 0 || b.BA > 1 {
		return Batter{}, fmt.Errorf("batting average must be in [0,1], got %v", b.BA)
	}
	if b.Strikeouts < 0 {
		return Batter{}, fmt.Errorf("strikeouts must be non-negative, got %d", b.Strikeouts)
	}
	if b.OBP < 0 || b.OBP > 1 {
		return Batter{}, fmt.Errorf("on-base percentage must be in [0,1], got %v", b.OBP)
	}
	if b.SLG < 0 || b.SLG > 1 {
		return Batter{}, fmt.Errorf("slugging percentage must be in [0,1], got %v", b.SLG)
	}
	if b.HomeRuns < 0 {
		return Batter{}, fmt.Errorf("home runs must be non-negative, got %d", b.HomeRuns)
	}
	if b.RBI < 0 {
		return Batter{}, fmt.Errorf("RBI must be non-negative, got %d", b.RBI)
	}
	switch b.Handedness {
	case LeftHanded, RightHanded, SwitchHitter:
	default:
		return Batter{}, fmt.Errorf("handedness must be L, R, or S, got %q", handedness)
	}
	return b, nil
}

// IsSwitchHitter reports whether the batter hits from both sides.
func (b Batter) IsSwitchHitter() bool { return b.Handedness == SwitchHitter }

// Pitcher holds the opposing pitcher's statistics. Build via NewPitcher.
type Pitcher struct {
	Name       string // optional
	ERA        float64
	WHIP       float64
	KRate      float64 // [0,1], proportion of batters struck out
	WalkRate   float64 // [0,1]
	Handedness string  // LHP or RHP
}

// NewPitcher validates the raw fields and returns a normalized Pitcher.
func NewPitcher(name string, era, whip, kRate, walkRate float64, handedness string) (Pitcher, error) {
	p := Pitcher{
		Name:       strings.TrimSpace(name),
		ERA:        era,
		WHIP:       whip,
		KRate:      kRate,
		WalkRate:   walkRate,
		Handedness: strings.ToUpper(strings.TrimSpace(handedness)),
	}
	if p.ERA < 0 {
		return Pitcher{}, fmt.Errorf("ERA must be non-negative, got %v", p.ERA)
	}
	if p.WHIP < 0 {
		return Pitcher{}, fmt.Errorf("WHIP must be non-negative, got %v", p.WHIP)
	}
	if p.KRate < 0 || p.KRate > 1 {
		return Pitcher{}, fmt.Errorf("strikeout rate must be in [0,1], got %v", p.KRate)
	}
	if p.WalkRate < 0 || p.WalkRate > 1 {
		return Pitcher{}, fmt.Errorf("walk rate must be in [0,1], got %v", p.WalkRate)
	}
	switch p.Handedness {
	case LeftHandedPitcher, RightHandedPitcher:
	default:
		return Pitcher{}, fmt.Errorf("handedness must be LHP or RHP, got %q", handedness)
	}
	return p, nil
}

// ThrowsLeft reports whether the pitcher is left-handed.
func (p Pitcher) ThrowsLeft() bool { return p.Handedness == LeftHandedPitcher }
