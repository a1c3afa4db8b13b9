package config_test

import (
	"context"
	"testing"

	config "github.com/okian/plenum/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a default configuration", t, func() {
		cfg := config.New(context.Background())

		Convey("Then it carries the documented defaults", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":5000")
			So(cfg.AllowedOrigins, ShouldResemble, []string{"*"})
			So(cfg.SeedData, ShouldBeTrue)
			So(cfg.RequestTimeoutMS, ShouldEqual, 30_000)
			So(cfg.Currency, ShouldEqual, "USD")
			So(cfg.CurrencySymbol, ShouldEqual, "$")
		})
	})
}
