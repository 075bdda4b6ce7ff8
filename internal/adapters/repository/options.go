package repository

import "github.com/dugoutlabs/fieldscore/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithInitialCapacity pre-sizes the player table for an expected roster.
func WithInitialCapacity(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.scores = make(map[string]map[model.Position]PositionScore, n)
		}
	}
}
