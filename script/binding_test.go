package script

import (
	"context"
	"testing"

	"github.com/laserpy/unicon/universal"
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func eval(source string) ([]string, error) {
	return Eval(context.Background(), source, Options{})
}

func TestBind(t *testing.T) {
	Convey("Bind", t, func() {
		Convey("Should expose every constant by name", func() {
			for _, c := range universal.All() {
				out, err := eval("return PhysicalConstant." + c.Name() + ":name()")
				So(err, ShouldBeNil)
				So(out, ShouldResemble, []string{c.Name()})
			}
		})

		Convey("Should return exact values", func() {
			L := NewState(Options{})
			defer L.Close()

			So(L.DoString("v = PhysicalConstant.PlanckConstant:value()"), ShouldBeNil)
			So(float64(L.GetGlobal("v").(lua.LNumber)), ShouldEqual, 6.62607015e-34)
		})

		Convey("Should render with tostring", func() {
			out, err := eval("return tostring(PhysicalConstant.BoltzmannConstant)")
			So(err, ShouldBeNil)
			So(out, ShouldResemble, []string{"<PhysicalConstant.BoltzmannConstant = 1.380649e-23>"})
		})

		Convey("Should expose unit and symbol", func() {
			out, err := eval("local c = PhysicalConstant.AvogadroConstant return c:symbol(), c:unit()")
			So(err, ShouldBeNil)
			So(out, ShouldResemble, []string{"N_A", "1/mol"})
		})

		Convey("Should compare by value", func() {
			out, err := eval(`
				local c = PhysicalConstant
				return c.lookup("SpeedOfLight") == c.SpeedOfLight,
					c.SpeedOfLight == c.PlanckConstant,
					c.SpeedOfLight ~= c.PlanckConstant`)
			So(err, ShouldBeNil)
			So(out, ShouldResemble, []string{"true", "false", "true"})
		})

		Convey("Should reject ordering", func() {
			for _, expr := range []string{"<", "<=", ">", ">="} {
				_, err := eval("return PhysicalConstant.SpeedOfLight " + expr + " PhysicalConstant.PlanckConstant")
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "not comparable")
			}
		})

		Convey("all() should list constants in declaration order", func() {
			out, err := eval(`
				local names = {}
				for _, c in ipairs(PhysicalConstant.all()) do names[#names + 1] = c:name() end
				return table.concat(names, ",")`)
			So(err, ShouldBeNil)
			So(out, ShouldResemble, []string{"SpeedOfLight,PlanckConstant,ElementaryCharge,BoltzmannConstant,AvogadroConstant"})
		})

		Convey("lookup() should fail for unknown names", func() {
			_, err := eval(`return PhysicalConstant.lookup("GravitationalConstant")`)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown constant")
		})

		Convey("Methods should reject foreign receivers", func() {
			_, err := eval(`return PhysicalConstant.SpeedOfLight.value({})`)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPushCheck(t *testing.T) {
	Convey("Push and Check", t, func() {
		L := lua.NewState()
		defer L.Close()
		Bind(L)

		L.Push(Push(L, universal.ElementaryCharge))
		So(Check(L, 1), ShouldEqual, universal.ElementaryCharge)
	})
}
