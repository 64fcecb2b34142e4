package referenceframe

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestJointPositions(t *testing.T) {
	in := []Input{0, math.Pi}
	j := JointPositionsFromRadians(in)
	test.That(t, j[0], test.ShouldEqual, 0.0)
	test.That(t, j[1], test.ShouldEqual, 180.0)
	test.That(t, JointPositionsToRadians(j), test.ShouldResemble, in)
}

func TestCopyInputs(t *testing.T) {
	in := []Input{1, 2, 3}
	out := CopyInputs(in)
	test.That(t, out, test.ShouldResemble, in)
	out[0] = 10
	test.That(t, in[0], test.ShouldEqual, 1.)
	test.That(t, CopyInputs(nil), test.ShouldBeNil)
}

func TestInputDistances(t *testing.T) {
	from := []Input{0, 4}
	to := []Input{3, 0}
	test.That(t, InputsL2Distance(from, to), test.ShouldAlmostEqual, 25)
	test.That(t, InputsLinfDistance(from, to), test.ShouldAlmostEqual, 4)

	// mismatched vectors have no meaningful distance
	test.That(t, InputsL2Distance(from, []Input{1}), test.ShouldEqual, 0.)
	test.That(t, InputsLinfDistance(nil, nil), test.ShouldEqual, 0.)
}
