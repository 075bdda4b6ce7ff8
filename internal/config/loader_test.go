package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/dugoutlabs/fieldscore/internal/config"
)

func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FIELDSCORE_CONFIG",
		"FIELDSCORE_ADDR",
		"FIELDSCORE_LOG_LEVEL",
		"FIELDSCORE_WORKER_COUNT",
		"FIELDSCORE_PREDICT_ALL_POSITIONS",
		"FIELDSCORE_MAX_LEADERBOARD_LIMIT",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars(t)

		convey.Convey("When loading with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.MaxLeaderboardLimit, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When environment variables are set", func() {
			_ = os.Setenv("FIELDSCORE_ADDR", ":8080")
			_ = os.Setenv("FIELDSCORE_WORKER_COUNT", "7")
			_ = os.Setenv("FIELDSCORE_MAX_LEADERBOARD_LIMIT", "25")
			defer clearConfigEnvVars(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then env vars override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 7)
				convey.So(cfg.MaxLeaderboardLimit, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When a YAML file is provided", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "addr: \":7070\"\nlog_level: debug\npredict_all_positions: false\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("FIELDSCORE_CONFIG", path)
			defer clearConfigEnvVars(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.PredictAllPositions, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When env vars take precedence over the file", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			convey.So(os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("FIELDSCORE_CONFIG", path)
			_ = os.Setenv("FIELDSCORE_ADDR", ":6060")
			defer clearConfigEnvVars(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then the env value wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the config file path does not exist", func() {
			_ = os.Setenv("FIELDSCORE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
			defer clearConfigEnvVars(t)

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with ErrLoadConfig", func() {
				convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
			})
		})

		convey.Convey("When a value fails validation", func() {
			_ = os.Setenv("FIELDSCORE_WORKER_COUNT", "0")
			defer clearConfigEnvVars(t)

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with ErrInvalidConfig", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}
