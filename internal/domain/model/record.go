package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// PlayerRecord is one player's raw stats as parsed from CSV or JSON.
// Values keep their source types (strings from CSV cells, float64 and
// json.Number from JSON); the typed accessors below coerce on demand and
// never fail, defaulting to the zero value. Records are read-only inputs
// for one analysis pass.
type PlayerRecord map[string]any

// Well-known record keys shared with the parsers.
const (
	KeyName              = "name"
	KeyPlayerName        = "player_name"
	KeyFieldingPct       = "fielding_pct"
	KeyErrors            = "errors"
	KeyPutouts           = "putouts"
	KeyPassedBalls       = "passed_balls"
	KeyCaughtStealingPct = "caught_stealing_pct"
	KeyPositions         = "positions"
)

// Name returns the player name, preferring "player_name" over "name".
// The empty string means no name was supplied.
func (r PlayerRecord) Name() string {
	if s := r.String(KeyPlayerName); s != "" {
		return s
	}
	return r.String(KeyName)
}

// String returns the value at key as a trimmed string, or "" when the key
// is absent or holds a non-string value.
func (r PlayerRecord) String(key string) string {
	if s, ok := r[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// Float coerces the value at key to float64, defaulting to 0 on any
// missing key, unparsable string, or unsupported type.
func (r PlayerRecord) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int coerces the value at key to int, truncating fractional input and
// defaulting to 0 on failure.
func (r PlayerRecord) Int(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
		return 0
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}
