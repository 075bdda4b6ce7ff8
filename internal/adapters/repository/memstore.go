package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dugoutlabs/fieldscore/internal/domain/model"
)

// MemStore implements Store with a mutex-guarded in-memory table. Score
// tables are small (one row per player), so leaderboards are sorted at
// query time rather than maintained incrementally.
type MemStore struct {
	mu     sync.RWMutex
	scores map[string]map[model.Position]PositionScore
}

// NewMemStore creates an empty in-memory score store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		scores: make(map[string]map[model.Position]PositionScore),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpsertScores replaces the stored score set for one player.
func (s *MemStore) UpsertScores(_ context.Context, player string, scores []PositionScore) error {
	if player == "" {
		return ErrNotFound
	}
	byPos := make(map[model.Position]PositionScore, len(scores))
	for _, ps := range scores {
		byPos[ps.Position] = ps
	}

	s.mu.Lock()
	s.scores[player] = byPos
	s.mu.Unlock()
	return nil
}

// PlayerScores returns the stored positions for a player in canonical
// position order.
func (s *MemStore) PlayerScores(_ context.Context, player string) ([]PositionScore, error) {
	s.mu.RLock()
	byPos, ok := s.scores[player]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]PositionScore, 0, len(byPos))
	for _, pos := range model.AllPositions {
		if ps, have := byPos[pos]; have {
			out = append(out, ps)
		}
	}
	return out, nil
}

// Players returns all stored player names, sorted.
func (s *MemStore) Players(_ context.Context) []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.scores))
	for name := range s.scores {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	return names
}

// TopN returns up to n leaderboard entries for one position.
func (s *MemStore) TopN(_ context.Context, pos model.Position, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, ErrInvalidLimit
	}
	if !pos.Valid() {
		return nil, ErrUnknownPosition
	}

	s.mu.RLock()
	entries := make([]Entry, 0, len(s.scores))
	for player, byPos := range s.scores {
		if ps, ok := byPos[pos]; ok {
			entries = append(entries, Entry{
				Player:    player,
				Position:  pos,
				Score:     ps.Score,
				Predicted: ps.Predicted,
			})
		}
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Player < entries[j].Player
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// Count returns the number of players tracked.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scores)
}
