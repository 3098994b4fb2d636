package universal

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEqual(t *testing.T) {
	Convey("Equal", t, func() {
		Convey("Should hold only for the same constant in this set", func() {
			for _, a := range All() {
				for _, b := range All() {
					So(a.Equal(b), ShouldEqual, a.Value() == b.Value())
					So(a.Equal(b), ShouldEqual, a == b)
					So(a.NotEqual(b), ShouldEqual, !a.Equal(b))
				}
			}
		})

		Convey("Should never hold for forged constants", func() {
			So(Constant(50).Equal(Constant(50)), ShouldBeFalse)
		})

		So(SpeedOfLight.Equal(SpeedOfLight), ShouldBeTrue)
		So(SpeedOfLight.Equal(PlanckConstant), ShouldBeFalse)
	})
}

func TestRelate(t *testing.T) {
	Convey("Relate", t, func() {
		Convey("Should answer equality operators", func() {
			ok, err := SpeedOfLight.Relate(Eq, SpeedOfLight)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)

			ok, err = SpeedOfLight.Relate(Ne, PlanckConstant)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
		})

		Convey("Should reject every ordering operator", func() {
			for _, op := range []Op{Lt, Le, Gt, Ge} {
				_, err := PlanckConstant.Relate(op, AvogadroConstant)
				So(errors.Is(err, ErrNotComparable), ShouldBeTrue)
			}
		})

		Convey("Should reject unknown operators", func() {
			_, err := PlanckConstant.Relate(Op(42), PlanckConstant)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrNotComparable), ShouldBeFalse)
		})
	})
}

func TestParseOp(t *testing.T) {
	Convey("ParseOp", t, func() {
		op, err := ParseOp("lt")
		So(err, ShouldBeNil)
		So(op, ShouldEqual, Lt)

		op, err = ParseOp("!=")
		So(err, ShouldBeNil)
		So(op, ShouldEqual, Ne)

		_, err = ParseOp("~")
		So(err, ShouldNotBeNil)

		So(Ge.String(), ShouldEqual, ">=")
		So(Ops(), ShouldHaveLength, 6)
	})
}
