package where

import (
	"path/filepath"
	"testing"

	"github.com/laserpy/unicon/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honors the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/unicon")
			So(Config(), ShouldEqual, "/custom/unicon")
			So(lo.Must(filesystem.API().IsDir("/custom/unicon")), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Scripts()", func() {
			path := Scripts()
			So(filepath.Base(path), ShouldEqual, "scripts")
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("ConfigFile()", func() {
			So(filepath.Base(ConfigFile()), ShouldEqual, "unicon.toml")
		})
	})
}
