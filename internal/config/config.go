// Package config defines service configuration structures and loading hooks.
package config

import (
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StatsFile optionally points at a defensive stats file to analyze
	// on startup.
	StatsFile string `koanf:"stats_file"`

	// PredictAllPositions enables cross-position prediction for every
	// analyzed player.
	PredictAllPositions bool `koanf:"predict_all_positions"`

	// WorkerCount sets the number of analysis workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueCapacity bounds the analysis job channel.
	QueueCapacity int `koanf:"queue_capacity"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// MatchupAvgWeight, MatchupOBPWeight and MatchupSlgWeight set the
	// batting-average, on-base and slugging blend for matchup base
	// scores.
	MatchupAvgWeight float64 `koanf:"matchup_avg_weight"`
	MatchupOBPWeight float64 `koanf:"matchup_obp_weight"`
	MatchupSlgWeight float64 `koanf:"matchup_slg_weight"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		PredictAllPositions: true,
		WorkerCount:         runtime.NumCPU() * 2,
		QueueCapacity:       64,
		MaxLeaderboardLimit: 100,
		MatchupAvgWeight:    0.30,
		MatchupOBPWeight:    0.40,
		MatchupSlgWeight:    0.30,
	}
}
