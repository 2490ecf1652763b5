package extractor

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEffectiveCount(t *testing.T) {
	Convey("EffectiveCount", t, func() {
		Convey("Should take the minimum of cap, authoritative and probed", func() {
			So(EffectiveCount(25, 12, mo.Some(24), 12), ShouldEqual, 12)
			So(EffectiveCount(25, 12, mo.Some(24), 30), ShouldEqual, 24)
			So(EffectiveCount(25, 12, mo.Some(100), 80), ShouldEqual, 25)
		})

		Convey("Should defer to the authoritative count when the probe failed", func() {
			So(EffectiveCount(25, 12, mo.Some(24), 0), ShouldEqual, 24)
			So(EffectiveCount(25, 12, mo.Some(24), -1), ShouldEqual, 24)
		})

		Convey("Should substitute the fallback when the authoritative count is absent", func() {
			So(EffectiveCount(25, 12, mo.None[int](), 0), ShouldEqual, 12)
			So(EffectiveCount(25, 12, mo.None[int](), 7), ShouldEqual, 7)
		})

		Convey("Should never exceed the hard cap", func() {
			for probed := 0; probed <= 60; probed += 5 {
				So(EffectiveCount(25, 12, mo.Some(1000), probed), ShouldBeLessThanOrEqualTo, 25)
			}
		})

		Convey("Should never go negative", func() {
			So(EffectiveCount(25, 0, mo.None[int](), 0), ShouldEqual, 0)
			So(EffectiveCount(0, 12, mo.Some(24), 12), ShouldEqual, 0)
		})
	})
}
