// Package parser reads defensive and matchup statistics from CSV and
// JSON files into the domain's record shapes. Presence validation lives
// here; everything downstream only coerces, never raises.
package parser

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dugoutlabs/fieldscore/internal/domain/model"
)

// requiredDefenseFields must be present on every defensive record; the
// name may come in as either "name" or "player_name".
var requiredDefenseFields = []string{
	model.KeyFieldingPct,
	model.KeyErrors,
	model.KeyPutouts,
	model.KeyPositions,
}

// DefensiveStatsParser loads per-player defensive records.
type DefensiveStatsParser struct{}

// NewDefensiveStatsParser returns a parser for defensive stats files.
func NewDefensiveStatsParser() *DefensiveStatsParser {
	return &DefensiveStatsParser{}
}

// Parse reads a defensive stats file, dispatching on extension. Records
// come back validated for field presence and with catcher-specific
// fields default-filled.
func (p *DefensiveStatsParser) Parse(path string) ([]model.PlayerRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return p.parseJSON(path)
	case ".csv":
		return p.parseCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s (use .csv or .json)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// parseJSON accepts either a bare list of records or an object with a
// "players" key.
func (p *DefensiveStatsParser) parseJSON(path string) ([]model.PlayerRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case map[string]any:
		list, ok := v["players"].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: JSON object must carry a \"players\" list", ErrInvalidFormat)
		}
		items = list
	default:
		return nil, fmt.Errorf("%w: expected a JSON list or object", ErrInvalidFormat)
	}

	records := make([]model.PlayerRecord, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: player entry %d is not an object", ErrInvalidFormat, i)
		}
		rec := model.PlayerRecord(obj)
		if err := p.validate(rec, i); err != nil {
			return nil, err
		}
		records = append(records, fillCatcherDefaults(rec))
	}
	return records, nil
}

// parseCSV expects a header row; each cell keeps its string form and the
// record accessors coerce downstream. The positions cell stays a
// delimited string for the position evaluator to split.
func (p *DefensiveStatsParser) parseCSV(path string) ([]model.PlayerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("%w: empty CSV file", ErrInvalidFormat)
	}

	header := rows[0]
	records := make([]model.PlayerRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec := make(model.PlayerRecord, len(header))
		for col, key := range header {
			if col < len(row) {
				rec[strings.TrimSpace(key)] = row[col]
			}
		}
		if err := p.validate(rec, i); err != nil {
			return nil, err
		}
		records = append(records, fillCatcherDefaults(rec))
	}
	return records, nil
}

// validate enforces required-field presence. This is the only layer that
// raises on malformed player data.
func (p *DefensiveStatsParser) validate(rec model.PlayerRecord, index int) error {
	if rec.Name() == "" {
		return fmt.Errorf("%w: player entry %d has no name", ErrMissingField, index)
	}
	for _, key := range requiredDefenseFields {
		if _, ok := rec[key]; !ok {
			return fmt.Errorf("%w: player %q lacks %q", ErrMissingField, rec.Name(), key)
		}
	}
	return nil
}

// fillCatcherDefaults guarantees the optional catcher fields exist so the
// core never needs to distinguish absent from zero.
func fillCatcherDefaults(rec model.PlayerRecord) model.PlayerRecord {
	if _, ok := rec[model.KeyPassedBalls]; !ok {
		rec[model.KeyPassedBalls] = 0
	}
	if _, ok := rec[model.KeyCaughtStealingPct]; !ok {
		rec[model.KeyCaughtStealingPct] = 0.0
	}
	return rec
}
