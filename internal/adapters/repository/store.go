// Package repository defines the score-table store interface and errors.
package repository

import (
	"context"

	"github.com/dugoutlabs/fieldscore/internal/domain/model"
)

// Entry is one row of a positional leaderboard.
type Entry struct {
	Rank      int            `json:"rank"`
	Player    string         `json:"player"`
	Position  model.Position `json:"position"`
	Score     float64        `json:"score"`
	Predicted bool           `json:"predicted"`
}

// PositionScore is one scored position for a single player.
type PositionScore struct {
	Position  model.Position `json:"position"`
	Score     float64        `json:"score"`
	Predicted bool           `json:"predicted"`
}

// Store provides read/write access to the analyzed score table.
type Store interface {
	// UpsertScores replaces the stored score set for one player.
	UpsertScores(ctx context.Context, player string, scores []PositionScore) error

	// PlayerScores returns the stored positions for a player.
	// Returns ErrNotFound for an unknown player.
	PlayerScores(ctx context.Context, player string) ([]PositionScore, error)

	// Players returns all stored player names, sorted.
	Players(ctx context.Context) []string

	// TopN returns up to n entries for a position, ordered by score
	// descending with name ascending as the tiebreak.
	TopN(ctx context.Context, pos model.Position, n int) ([]Entry, error)

	// Count returns the number of players tracked.
	Count(ctx context.Context) int
}
