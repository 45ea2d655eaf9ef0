package qflip

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBloch(t *testing.T) {
	Convey("Given the basis states", t, func() {
		Convey("|0⟩ should point to the north pole", func() {
			So(Bloch(ZeroState()), ShouldResemble, BlochVector{Z: 1})
		})

		Convey("|1⟩ should point to the south pole", func() {
			So(Bloch(NewQubit(0, 1)), ShouldResemble, BlochVector{Z: -1})
		})
	})

	Convey("Given an even superposition", t, func() {
		v := Bloch(ZeroState().Apply(HadamardGate()))

		Convey("It should sit on the +x axis", func() {
			So(v.X, ShouldAlmostEqual, 1, 1e-12)
			So(v.Y, ShouldAlmostEqual, 0, 1e-12)
			So(v.Z, ShouldAlmostEqual, 0, 1e-12)
		})
	})

	Convey("Given a state with a complex phase", t, func() {
		state := NewQubit(complex(1/math.Sqrt2, 0), complex(0, 1/math.Sqrt2))

		Convey("It should sit on the +y axis", func() {
			v := Bloch(state)
			So(v.X, ShouldAlmostEqual, 0, 1e-12)
			So(v.Y, ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("Repeated projections should be bit-identical", func() {
			So(Bloch(state), ShouldEqual, Bloch(state))
		})
	})

	Convey("Given every simulated state across the sweep", t, func() {
		Convey("The Bloch vector should lie on the unit sphere", func() {
			for _, theta := range angles(64) {
				So(Bloch(RunStandardSimulation(theta).State).Norm(), ShouldAlmostEqual, 1, 1e-6)
				So(Bloch(RunCoinSimulation(theta).State).Norm(), ShouldAlmostEqual, 1, 1e-6)
			}
		})
	})
}
