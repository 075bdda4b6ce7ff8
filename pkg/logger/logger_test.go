package logger_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/dugoutlabs/fieldscore/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		err := logger.InitWithWriter(&buf)
		So(err, ShouldBeNil)
		ctx := context.Background()

		Convey("When logging at info level", func() {
			logger.Get().Info(ctx, "analysis complete", logger.Int("players", 3))

			Convey("Then the message and fields appear in the output", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "analysis complete")
				So(out, ShouldContainSubstring, "players=3")
				So(out, ShouldContainSubstring, "source=")
			})
		})

		Convey("When logging at debug level with default level", func() {
			logger.Get().Debug(ctx, "should be suppressed")

			Convey("Then nothing is written", func() {
				So(buf.String(), ShouldNotContainSubstring, "should be suppressed")
			})
		})

		Convey("When the level is lowered to debug", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			logger.Get().Debug(ctx, "now visible")

			Convey("Then debug messages are written", func() {
				So(buf.String(), ShouldContainSubstring, "now visible")
			})
		})

		Convey("When using a named logger", func() {
			logger.Named("predictor").Warn(ctx, "no source position")

			Convey("Then the message is written", func() {
				So(buf.String(), ShouldContainSubstring, "no source position")
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given the level parser", t, func() {
		Convey("Then known levels are accepted", func() {
			for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "", " INFO "} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("Then unknown levels are rejected", func() {
			err := logger.SetLevelString("verbose")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown log level")
		})
	})
}
