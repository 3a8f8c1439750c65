package wheel_test

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"wheel/internal/wheel"
)

func TestDraw(t *testing.T) {
	Convey("Given a seeded random source", t, func() {
		r := rand.New(rand.NewSource(42))

		Convey("Then every draw stays inside its range", func() {
			for i := 0; i < 1000; i++ {
				spins, finalAngle := wheel.Draw(r)
				So(spins, ShouldBeGreaterThanOrEqualTo, 5)
				So(spins, ShouldBeLessThan, 10)
				So(finalAngle, ShouldBeGreaterThanOrEqualTo, 0)
				So(finalAngle, ShouldBeLessThan, 360)
			}
		})
	})
}

func TestResolveWinnerIndex(t *testing.T) {
	Convey("Given the angle-to-index mapping", t, func() {
		Convey("Then it is a pure function of rotation and item count", func() {
			// 450 mod 360 = 90, adjusted 270, pointer 180, segment 90.
			for i := 0; i < 10; i++ {
				So(wheel.ResolveWinnerIndex(450, 4), ShouldEqual, 2)
			}
		})

		Convey("Then known rotations map to known segments", func() {
			cases := []struct {
				rotation float64
				count    int
				want     int
			}{
				{0, 4, 3},    // adjusted 0, pointer 270
				{90, 4, 2},   // adjusted 270, pointer 180
				{180, 4, 1},  // adjusted 180, pointer 90
				{270, 4, 0},  // adjusted 90, pointer 0
				{450, 4, 2},  // full wrap plus 90
				{3690, 4, 2}, // ten rotations plus 90
				{45, 8, 5},
			}
			for _, tc := range cases {
				So(wheel.ResolveWinnerIndex(tc.rotation, tc.count), ShouldEqual, tc.want)
			}
		})

		Convey("Then a single-item wheel always resolves to index 0", func() {
			for _, rotation := range []float64{0, 1, 90, 359.9, 360, 720.5, 12345} {
				So(wheel.ResolveWinnerIndex(rotation, 1), ShouldEqual, 0)
			}
		})

		Convey("Then the index never leaves the item range", func() {
			r := rand.New(rand.NewSource(7))
			for i := 0; i < 5000; i++ {
				count := r.Intn(12) + 1
				rotation := r.Float64() * 36000
				idx := wheel.ResolveWinnerIndex(rotation, count)
				So(idx, ShouldBeGreaterThanOrEqualTo, 0)
				So(idx, ShouldBeLessThan, count)
			}
		})

		Convey("Then exact segment boundaries resolve without falling out of range", func() {
			// Rotations that land the pointer exactly on a boundary.
			for _, rotation := range []float64{90, 180, 270, 360, 630} {
				idx := wheel.ResolveWinnerIndex(rotation, 4)
				So(idx, ShouldBeGreaterThanOrEqualTo, 0)
				So(idx, ShouldBeLessThan, 4)
			}
		})
	})
}
