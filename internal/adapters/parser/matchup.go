package parser

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dugoutlabs/fieldscore/internal/domain/matchup"
)

// MatchupDataParser loads a batter roster and the opposing pitcher.
type MatchupDataParser struct{}

// NewMatchupDataParser returns a parser for matchup stats files.
func NewMatchupDataParser() *MatchupDataParser {
	return &MatchupDataParser{}
}

// rawEntry is the intermediate row shape shared by both file formats.
type rawEntry map[string]any

// Parse reads a matchup stats file, dispatching on extension.
func (p *MatchupDataParser) Parse(path string) ([]matchup.Batter, matchup.Pitcher, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return p.parseJSON(path)
	case ".csv":
		return p.parseCSV(path)
	default:
		return nil, matchup.Pitcher{}, fmt.Errorf("%w: %s (use .csv or .json)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// parseJSON expects {"batters": [...], "pitcher": {...}}; "pitcher_stats"
// is accepted as an alias for the pitcher key.
func (p *MatchupDataParser) parseJSON(path string) ([]matchup.Batter, matchup.Pitcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, matchup.Pitcher{}, fmt.Errorf("read %s: %w", path, err)
	}

	var doc struct {
		Batters      []rawEntry `json:"batters"`
		Pitcher      rawEntry   `json:"pitcher"`
		PitcherStats rawEntry   `json:"pitcher_stats"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, matchup.Pitcher{}, fmt.Errorf("parse %s: %w", path, err)
	}

	pitcherData := doc.Pitcher
	if pitcherData == nil {
		pitcherData = doc.PitcherStats
	}
	if pitcherData == nil {
		return nil, matchup.Pitcher{}, ErrNoPitcher
	}
	if len(doc.Batters) == 0 {
		return nil, matchup.Pitcher{}, ErrNoBatters
	}

	return p.build(doc.Batters, pitcherData)
}

// parseCSV mixes batter rows and one pitcher row in a single file; the
// pitcher row is recognized by a non-empty "era" cell.
func (p *MatchupDataParser) parseCSV(path string) ([]matchup.Batter, matchup.Pitcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, matchup.Pitcher{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, matchup.Pitcher{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, matchup.Pitcher{}, fmt.Errorf("%w: CSV needs a header and data rows", ErrInvalidFormat)
	}

	header := rows[0]
	var batterRows []rawEntry
	var pitcherRow rawEntry
	for _, row := range rows[1:] {
		entry := make(rawEntry, len(header))
		for col, key := range header {
			if col < len(row) {
				entry[strings.TrimSpace(key)] = row[col]
			}
		}
		if s, _ := entry["era"].(string); strings.TrimSpace(s) != "" {
			if pitcherRow != nil {
				return nil, matchup.Pitcher{}, fmt.Errorf("%w: multiple pitcher rows", ErrInvalidFormat)
			}
			pitcherRow = entry
			continue
		}
		batterRows = append(batterRows, entry)
	}

	if pitcherRow == nil {
		return nil, matchup.Pitcher{}, ErrNoPitcher
	}
	if len(batterRows) == 0 {
		return nil, matchup.Pitcher{}, ErrNoBatters
	}
	return p.build(batterRows, pitcherRow)
}

func (p *MatchupDataParser) build(batterRows []rawEntry, pitcherRow rawEntry) ([]matchup.Batter, matchup.Pitcher, error) {
	batters := make([]matchup.Batter, 0, len(batterRows))
	for i, row := range batterRows {
		b, err := buildBatter(row)
		if err != nil {
			return nil, matchup.Pitcher{}, fmt.Errorf("batter entry %d: %w", i, err)
		}
		batters = append(batters, b)
	}
	pitcher, err := buildPitcher(pitcherRow)
	if err != nil {
		return nil, matchup.Pitcher{}, fmt.Errorf("pitcher entry: %w", err)
	}
	return batters, pitcher, nil
}

func buildBatter(row rawEntry) (matchup.Batter, error) {
	hand := entryString(row, "handedness")
	if hand == "" {
		hand = matchup.RightHanded
	}
	return matchup.NewBatter(
		entryString(row, "name"),
		entryFloat(row, "ba"),
		entryInt(row, "k"),
		entryFloat(row, "obp"),
		entryFloat(row, "slg"),
		entryInt(row, "hr"),
		entryInt(row, "rbi"),
		hand,
	)
}

func buildPitcher(row rawEntry) (matchup.Pitcher, error) {
	// Accept L/R shorthand alongside LHP/RHP.
	hand := strings.ToUpper(entryString(row, "handedness"))
	switch hand {
	case "L", "LEFT":
		hand = matchup.LeftHandedPitcher
	case "R", "RIGHT", "":
		hand = matchup.RightHandedPitcher
	}
	return matchup.NewPitcher(
		entryString(row, "name"),
		entryFloat(row, "era"),
		entryFloat(row, "whip"),
		entryFloat(row, "k_rate"),
		entryFloat(row, "walk_rate"),
		hand,
	)
}

func entryString(row rawEntry, key string) string {
	if s, ok := row[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func entryFloat(row rawEntry, key string) float64 {
	switch v := row[key].(type) {
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	default:
		return 0
	}
}

func entryInt(row rawEntry, key string) int {
	switch v := row[key].(type) {
	case float64:
		return int(v)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return int(f)
	default:
		return 0
	}
}
