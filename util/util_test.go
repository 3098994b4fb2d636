package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.lua"), ShouldEqual, "file_name_.lua")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("planck  table"), ShouldEqual, "planck_table")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-photon-energy-"), ShouldEqual, "photon-energy")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "constant", "constants"), ShouldEqual, "1 constant")
		So(Quantify(5, "constant", "constants"), ShouldEqual, "5 constants")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("scripts/energy.lua"), ShouldEqual, "energy")
		So(FileStem("energy"), ShouldEqual, "energy")
	})
}

func TestTerminalWidth(t *testing.T) {
	Convey("TerminalWidth", t, func() {
		So(TerminalWidth(80), ShouldBeGreaterThan, 0)
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max("SpeedOfLight", "AvogadroConstant"), ShouldEqual, "SpeedOfLight")
		So(Max[int](), ShouldEqual, 0)
	})
}
