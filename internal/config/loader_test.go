package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func clearEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv(EnvPrefix+"CONFIG", "")
	for _, k := range []string{"ADDR", "LOG_LEVEL", "GIN_MODE", "OBSERVER__DELAY_MS", "OBSERVER__THRESHOLD"} {
		t.Setenv(EnvPrefix+k, "")
		os.Unsetenv(EnvPrefix + k)
	}
	os.Unsetenv("PORT")
	os.Unsetenv(EnvPrefix + "CONFIG")
}

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		clearEnv(t)

		Convey("When loading without a file", func() {
			cfg, err := Load("")

			Convey("Then the defaults apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.Observer.Threshold, ShouldEqual, 0.3)
				So(cfg.Observer.MarginPx, ShouldEqual, -300.0)
				So(cfg.ObserverConfig().Delay, ShouldEqual, 100*time.Millisecond)
			})
		})

		Convey("When PORT is set", func() {
			t.Setenv("PORT", "9090")
			cfg, err := Load("")

			Convey("Then it becomes the listen address", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9090")
			})

			Convey("And AIKWEI_ADDR is also set", func() {
				t.Setenv(EnvPrefix+"ADDR", "127.0.0.1:7000")
				cfg, err := Load("")

				Convey("Then the prefixed variable wins", func() {
					So(err, ShouldBeNil)
					So(cfg.Addr, ShouldEqual, "127.0.0.1:7000")
				})
			})
		})

		Convey("When a nested env var overrides the observer delay", func() {
			t.Setenv(EnvPrefix+"OBSERVER__DELAY_MS", "250")
			cfg, err := Load("")

			Convey("Then the observer waits longer", func() {
				So(err, ShouldBeNil)
				So(cfg.ObserverConfig().Delay, ShouldEqual, 250*time.Millisecond)
			})
		})

		Convey("When a YAML file is given", func() {
			path := filepath.Join(t.TempDir(), "aikwei.yml")
			So(os.WriteFile(path, []byte("addr: \":3000\"\nlog_level: debug\nobserver:\n  threshold: 0.5\n"), 0o600), ShouldBeNil)
			cfg, err := Load(path)

			Convey("Then its values override the defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":3000")
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.Observer.Threshold, ShouldEqual, 0.5)
				So(cfg.Observer.DelayMS, ShouldEqual, 100)
			})
		})

		Convey("When the file does not exist", func() {
			_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

			Convey("Then a load error is returned", func() {
				So(errors.Is(err, ErrLoad), ShouldBeTrue)
			})
		})

		Convey("When the threshold is out of range", func() {
			t.Setenv(EnvPrefix+"OBSERVER__THRESHOLD", "1.5")
			_, err := Load("")

			Convey("Then validation fails", func() {
				So(errors.Is(err, ErrInvalid), ShouldBeTrue)
			})
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the defaults", t, func() {
		cfg := New()
		So(cfg.Validate(), ShouldBeNil)

		Convey("When the address is empty", func() {
			cfg.Addr = ""
			So(errors.Is(cfg.Validate(), ErrInvalid), ShouldBeTrue)
		})

		Convey("When the delay is negative", func() {
			cfg.Observer.DelayMS = -1
			So(errors.Is(cfg.Validate(), ErrInvalid), ShouldBeTrue)
		})

		Convey("When the gin mode is unknown", func() {
			cfg.GinMode = "production"
			So(errors.Is(cfg.Validate(), ErrInvalid), ShouldBeTrue)
		})
	})
}
