package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	config "github.com/okian/plenum/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		ctx := context.Background()
		for _, key := range []string{"PLENUM_CONFIG", "PLENUM_ADDR", "PLENUM_LOG_LEVEL", "PLENUM_SEED_DATA", "PLENUM_REQUEST_TIMEOUT_MS"} {
			So(os.Unsetenv(key), ShouldBeNil)
		}

		Convey("When loading without overrides", func() {
			cfg, err := config.Load(ctx)

			Convey("Then defaults apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":5000")
				So(cfg.SeedData, ShouldBeTrue)
			})
		})

		Convey("When environment variables are set", func() {
			So(os.Setenv("PLENUM_ADDR", ":8088"), ShouldBeNil)
			So(os.Setenv("PLENUM_LOG_LEVEL", "debug"), ShouldBeNil)
			So(os.Setenv("PLENUM_SEED_DATA", "false"), ShouldBeNil)
			defer func() {
				_ = os.Unsetenv("PLENUM_ADDR")
				_ = os.Unsetenv("PLENUM_LOG_LEVEL")
				_ = os.Unsetenv("PLENUM_SEED_DATA")
			}()

			cfg, err := config.Load(ctx)

			Convey("Then the environment wins over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8088")
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.SeedData, ShouldBeFalse)
			})
		})

		Convey("When a config file is provided", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "plenum.yaml")
			content := "addr: \":7070\"\ncurrency: EUR\ncurrency_symbol: \"€\"\n"
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
			So(os.Setenv("PLENUM_CONFIG", path), ShouldBeNil)
			defer func() { _ = os.Unsetenv("PLENUM_CONFIG") }()

			cfg, err := config.Load(ctx)

			Convey("Then file values override defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.Currency, ShouldEqual, "EUR")
				So(cfg.CurrencySymbol, ShouldEqual, "€")
			})

			Convey("And the environment overrides the file", func() {
				So(os.Setenv("PLENUM_ADDR", ":9099"), ShouldBeNil)
				defer func() { _ = os.Unsetenv("PLENUM_ADDR") }()

				cfg, err := config.Load(ctx)
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9099")
				So(cfg.Currency, ShouldEqual, "EUR")
			})
		})

		Convey("When the file path is invalid", func() {
			So(os.Setenv("PLENUM_CONFIG", filepath.Join(t.TempDir(), "missing.yaml")), ShouldBeNil)
			defer func() { _ = os.Unsetenv("PLENUM_CONFIG") }()

			_, err := config.Load(ctx)

			Convey("Then loading fails", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the timeout override is invalid", func() {
			So(os.Setenv("PLENUM_REQUEST_TIMEOUT_MS", "0"), ShouldBeNil)
			defer func() { _ = os.Unsetenv("PLENUM_REQUEST_TIMEOUT_MS") }()

			_, err := config.Load(ctx)

			Convey("Then validation rejects it", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
