package universal

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should round-trip every canonical name", func() {
			for _, c := range All() {
				parsed, err := Parse(c.Name())
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, c)
			}
		})

		Convey("Should accept symbols and any letter case", func() {
			c, err := Parse("k_B")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, BoltzmannConstant)

			c, err = Parse("speedoflight")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, SpeedOfLight)
		})

		Convey("Should accept symbols in any letter case", func() {
			cases := map[string]Constant{
				"n_a": AvogadroConstant,
				"K_B": BoltzmannConstant,
				"k_b": BoltzmannConstant,
				"H":   PlanckConstant,
				"E":   ElementaryCharge,
				"C":   SpeedOfLight,
			}
			for input, expected := range cases {
				c, err := Parse(input)
				So(err, ShouldBeNil)
				So(c, ShouldEqual, expected)
			}
		})

		Convey("Should fail for unknown names", func() {
			_, err := Parse("GravitationalConstant")
			So(errors.Is(err, ErrUnknownConstant), ShouldBeTrue)
		})
	})
}

func TestText(t *testing.T) {
	Convey("Text encoding", t, func() {
		Convey("Should encode as the canonical name", func() {
			data, err := json.Marshal(map[string]Constant{"c": ElementaryCharge})
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"c":"ElementaryCharge"}`)
		})

		Convey("Should decode names", func() {
			var c Constant
			So(json.Unmarshal([]byte(`"AvogadroConstant"`), &c), ShouldBeNil)
			So(c, ShouldEqual, AvogadroConstant)
			So(json.Unmarshal([]byte(`"Nope"`), &c), ShouldNotBeNil)
		})

		Convey("Should refuse forged constants", func() {
			_, err := Constant(99).MarshalText()
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRecord(t *testing.T) {
	Convey("Record", t, func() {
		r := PlanckConstant.Record()
		So(r.Name, ShouldEqual, "PlanckConstant")
		So(r.Symbol, ShouldEqual, "h")
		So(r.Value, ShouldEqual, 6.62607015e-34)
		So(r.Unit, ShouldEqual, "J·s")
		So(r.Display, ShouldEqual, PlanckConstant.Display())
	})
}
