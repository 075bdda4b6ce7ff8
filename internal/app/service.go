// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dugoutlabs/fieldscore/internal/adapters/parser"
	"github.com/dugoutlabs/fieldscore/internal/adapters/pipeline"
	"github.com/dugoutlabs/fieldscore/internal/adapters/repository"
	"github.com/dugoutlabs/fieldscore/internal/domain/defense"
	"github.com/dugoutlabs/fieldscore/internal/domain/matchup"
	"github.com/dugoutlabs/fieldscore/internal/domain/model"
	"github.com/dugoutlabs/fieldscore/pkg/logger"
	"github.com/dugoutlabs/fieldscore/pkg/metrics"
)

// Summary reports the outcome of one analysis batch.
type Summary struct {
	Players     int `json:"players"`
	Facts       int `json:"facts"`
	Predictions int `json:"predictions"`
}

// Service wires the defensive scoring domain behind a single facade.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	kb         *defense.KnowledgeBase
	evaluator  *defense.PositionEvaluator
	calculator *defense.ScoreCalculator
	matchups   *matchup.Calculator
	pool       *pipeline.Pool

	// Configuration
	workerCount         int
	queueCapacity       int
	predictAll          bool
	maxLeaderboardLimit int
	matchupWeights      [3]float64

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of analysis workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueCapacity bounds the analysis job channel.
func WithQueueCapacity(capacity int) Option {
	return func(s *Service) {
		if capacity > 0 {
			s.queueCapacity = capacity
		}
	}
}

// WithPredictAllPositions toggles cross-position prediction for every
// analyzed player.
func WithPredictAllPositions(enabled bool) Option {
	return func(s *Service) {
		s.predictAll = enabled
	}
}

// WithMaxLeaderboardLimit caps the leaderboard page size.
func WithMaxLeaderboardLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxLeaderboardLimit = limit
		}
	}
}

// WithMatchupWeights sets the batting-average, on-base and slugging
// blend used for matchup base scores.
func WithMatchupWeights(ba, obp, slg float64) Option {
	return func(s *Service) {
		s.matchupWeights = [3]float64{ba, obp, slg}
	}
}

// WithStore replaces the default in-memory score store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:         runtime.NumCPU() * 2,
		queueCapacity:       64,
		predictAll:          true,
		maxLeaderboardLimit: 100,
		matchupWeights:      [3]float64{0.30, 0.40, 0.30},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	if s.store == nil {
		s.store = repository.NewMemStore()
	}
	s.kb = defense.NewKnowledgeBase()
	s.evaluator = defense.NewPositionEvaluator(s.kb, defense.NewPredictor())
	s.calculator = defense.NewScoreCalculator(s.kb)
	s.matchups = matchup.NewCalculator(
		matchup.WithWeights(s.matchupWeights[0], s.matchupWeights[1], s.matchupWeights[2]),
	)
	s.pool = pipeline.New(
		pipeline.WithWorkers(s.workerCount),
		pipeline.WithQueueCapacity(s.queueCapacity),
		pipeline.WithLogger(s.logger.Named("pipeline")),
	)

	s.started = true
	s.logger.Info(ctx, "scoring service started",
		logger.Int("workers", s.workerCount),
		logger.Bool("predictAll", s.predictAll),
	)
	return nil
}

// Stop shuts the service down. The in-memory store keeps its contents
// so late readers still see the last batch.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "scoring service stopped")
}

// AnalyzeFile parses a defensive stats file and analyzes its records.
func (s *Service) AnalyzeFile(ctx context.Context, path string) (Summary, error) {
	records, err := parser.NewDefensiveStatsParser().Parse(path)
	if err != nil {
		return Summary{}, fmt.Errorf("analyze %s: %w", path, err)
	}
	return s.AnalyzeRecords(ctx, records)
}

// AnalyzeRecords fans the records across the worker pool, scores every
// played (and, when enabled, predicted) position, and upserts the
// results into the store.
func (s *Service) AnalyzeRecords(ctx context.Context, records []model.PlayerRecord) (Summary, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return Summary{}, ErrNotStarted
	}

	begin := time.Now()

	var (
		tally   sync.Mutex
		summary Summary
		runErr  error
	)

	err := s.pool.Run(ctx, records, func(ctx context.Context, rec model.PlayerRecord) {
		key, facts := s.evaluator.EvaluatePlayer(rec, s.predictAll)

		if s.predictAll {
			// Targets with no usable source position stay unscored.
			for skipped := len(model.AllPositions) - len(facts); skipped > 0; skipped-- {
				metrics.IncPredictionsSkipped()
			}
		}

		scores := make([]repository.PositionScore, 0, len(facts))
		predicted := 0
		for pos, fact := range facts {
			if fact.Predicted {
				predicted++
				metrics.IncPredictions()
			}
			scores = append(scores, repository.PositionScore{
				Position:  pos,
				Score:     s.calculator.CalculateScore(fact),
				Predicted: fact.Predicted,
			})
		}

		if err := s.store.UpsertScores(ctx, key, scores); err != nil {
			s.logger.Warn(ctx, "failed to store player scores",
				logger.String("player", key),
				logger.Error(err))
			tally.Lock()
			runErr = err
			tally.Unlock()
			return
		}

		metrics.IncPlayersAnalyzed()
		metrics.AddFactsEvaluated(len(facts))

		tally.Lock()
		summary.Players++
		summary.Facts += len(facts)
		summary.Predictions += predicted
		tally.Unlock()
	})
	if err == nil {
		err = runErr
	}

	metrics.ObserveAnalysisDuration(time.Since(begin))
	metrics.SetStorePlayers(s.store.Count(ctx))

	s.logger.Info(ctx, "analysis batch finished",
		logger.Int("players", summary.Players),
		logger.Int("facts", summary.Facts),
		logger.Int("predictions", summary.Predictions),
	)
	return summary, err
}

// ScoreMatchupFile parses a matchup data file and scores every batter
// against its pitcher.
func (s *Service) ScoreMatchupFile(ctx context.Context, path string) (map[string]float64, error) {
	batters, pitcher, err := parser.NewMatchupDataParser().Parse(path)
	if err != nil {
		return nil, fmt.Errorf("matchup %s: %w", path, err)
	}
	return s.ScoreMatchup(ctx, batters, pitcher)
}

// ScoreMatchup scores every batter against one pitcher.
func (s *Service) ScoreMatchup(ctx context.Context, batters []matchup.Batter, pitcher matchup.Pitcher) (map[string]float64, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return nil, ErrNotStarted
	}

	results := s.matchups.ScoreAll(batters, pitcher)
	for range results {
		metrics.IncMatchupsScored()
	}
	s.logger.Info(ctx, "matchup scored",
		logger.String("pitcher", pitcher.Name),
		logger.Int("batters", len(results)),
	)
	return results, nil
}

// Players lists every stored player in lexical order.
func (s *Service) Players(ctx context.Context) []string {
	return s.store.Players(ctx)
}

// PlayerScores returns one player's per-position scores.
func (s *Service) PlayerScores(ctx context.Context, player string) ([]repository.PositionScore, error) {
	return s.store.PlayerScores(ctx, player)
}

// Leaderboard returns the top entries for a position, capped at the
// configured page size.
func (s *Service) Leaderboard(ctx context.Context, pos model.Position, limit int) ([]repository.Entry, error) {
	if limit > s.maxLeaderboardLimit {
		limit = s.maxLeaderboardLimit
	}
	return s.store.TopN(ctx, pos, limit)
}

// RuleDescription reports the rule set applied at a position.
func (s *Service) RuleDescription(pos model.Position) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.kb == nil {
		return defense.NewKnowledgeBase().RuleDescription(pos)
	}
	return s.kb.RuleDescription(pos)
}

// Count reports the number of stored players.
func (s *Service) Count(ctx context.Context) int {
	return s.store.Count(ctx)
}
