package universal

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConcurrentUse(t *testing.T) {
	Convey("Concurrent use", t, func() {
		const workers = 64

		type observation struct {
			display  []string
			equal    [count][count]bool
			parsed   []Constant
			relateOk bool
		}

		observed := make([]observation, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				var o observation
				for _, a := range All() {
					o.display = append(o.display, a.Display())
					for _, b := range All() {
						o.equal[a][b] = a.Equal(b)
					}
					if c, err := Parse(a.Symbol()); err == nil {
						o.parsed = append(o.parsed, c)
					}
				}
				_, err := SpeedOfLight.Relate(Lt, PlanckConstant)
				o.relateOk = err == nil
				observed[i] = o
			}(i)
		}
		wg.Wait()

		Convey("Every goroutine should see the same answers as a serial caller", func() {
			for _, o := range observed {
				So(o.display, ShouldHaveLength, int(count))
				So(o.parsed, ShouldResemble, All())
				So(o.relateOk, ShouldBeFalse)

				for _, a := range All() {
					So(o.display[a], ShouldEqual, a.Display())
					for _, b := range All() {
						So(o.equal[a][b], ShouldEqual, a == b)
					}
				}
			}
		})
	})
}
