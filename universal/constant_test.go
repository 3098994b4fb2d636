package universal

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestValue(t *testing.T) {
	Convey("Value", t, func() {
		expected := map[Constant]float64{
			SpeedOfLight:      2.99792458e8,
			PlanckConstant:    6.62607015e-34,
			ElementaryCharge:  1.602176634e-19,
			BoltzmannConstant: 1.380649e-23,
			AvogadroConstant:  6.02214076e23,
		}

		Convey("Should return the exact SI literal for every constant", func() {
			So(All(), ShouldHaveLength, len(expected))
			for _, c := range All() {
				So(math.Float64bits(c.Value()), ShouldEqual, math.Float64bits(expected[c]))
			}
		})

		Convey("Should return NaN for values outside the closed set", func() {
			So(math.IsNaN(Constant(200).Value()), ShouldBeTrue)
			So(Constant(200).Valid(), ShouldBeFalse)
		})
	})
}

func TestName(t *testing.T) {
	Convey("Name", t, func() {
		So(Names(), ShouldResemble, []string{
			"SpeedOfLight",
			"PlanckConstant",
			"ElementaryCharge",
			"BoltzmannConstant",
			"AvogadroConstant",
		})
		So(PlanckConstant.Name(), ShouldEqual, "PlanckConstant")
		So(Constant(7).Name(), ShouldEqual, "Constant(7)")
	})
}

func TestDisplay(t *testing.T) {
	Convey("Display", t, func() {
		Convey("Should follow the <PhysicalConstant.name = value> convention", func() {
			So(BoltzmannConstant.Display(), ShouldEqual, "<PhysicalConstant.BoltzmannConstant = 1.380649e-23>")
			So(SpeedOfLight.Display(), ShouldEqual, "<PhysicalConstant.SpeedOfLight = 2.99792458e8>")
			So(AvogadroConstant.Display(), ShouldEqual, "<PhysicalConstant.AvogadroConstant = 6.02214076e23>")
		})

		Convey("Should be composed of name and value for every constant", func() {
			for _, c := range All() {
				So(c.Display(), ShouldEqual, "<PhysicalConstant."+c.Name()+" = "+c.FormatValue()+">")
			}
		})

		Convey("Should write values the way the SI literals are written", func() {
			So(SpeedOfLight.FormatValue(), ShouldEqual, "2.99792458e8")
			So(PlanckConstant.FormatValue(), ShouldEqual, "6.62607015e-34")
			So(ElementaryCharge.FormatValue(), ShouldEqual, "1.602176634e-19")
			So(BoltzmannConstant.FormatValue(), ShouldEqual, "1.380649e-23")
			So(AvogadroConstant.FormatValue(), ShouldEqual, "6.02214076e23")
			So(Constant(200).FormatValue(), ShouldEqual, "NaN")
		})

		Convey("Should round to the requested significant digits", func() {
			So(SpeedOfLight.FormatDigits(3), ShouldEqual, "3e8")
			So(PlanckConstant.FormatDigits(3), ShouldEqual, "6.63e-34")
			So(AvogadroConstant.FormatDigits(-1), ShouldEqual, AvogadroConstant.FormatValue())
		})

		Convey("Should format values that parse back bit-for-bit", func() {
			for _, c := range All() {
				parsed, err := strconv.ParseFloat(c.FormatValue(), 64)
				So(err, ShouldBeNil)
				So(math.Float64bits(parsed), ShouldEqual, math.Float64bits(c.Value()))
			}
		})

		Convey("Should back both fmt verbs", func() {
			So(fmt.Sprintf("%v", PlanckConstant), ShouldEqual, PlanckConstant.Display())
			So(fmt.Sprintf("%#v", PlanckConstant), ShouldEqual, PlanckConstant.Display())
		})
	})
}

func TestAttributes(t *testing.T) {
	Convey("Symbol and Unit", t, func() {
		So(SpeedOfLight.Symbol(), ShouldEqual, "c")
		So(SpeedOfLight.Unit(), ShouldEqual, "m/s")
		So(AvogadroConstant.Symbol(), ShouldEqual, "N_A")
		So(AvogadroConstant.Unit(), ShouldEqual, "1/mol")
		So(Constant(9).Unit(), ShouldBeEmpty)

		for _, c := range All() {
			So(c.Description(), ShouldNotBeEmpty)
		}
	})
}
