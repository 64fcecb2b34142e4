package motionplan

import (
	"errors"
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/jointpath/referenceframe"
	"go.viam.com/jointpath/utils"
)

var piLimit = referenceframe.Limit{Min: -math.Pi, Max: math.Pi}

func TestInterpolateHalfTurn(t *testing.T) {
	path, err := InterpolatePath(
		[]referenceframe.Input{0},
		[]referenceframe.Input{math.Pi},
		[]referenceframe.Limit{piLimit},
		[]float64{0.5},
	)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(path), test.ShouldEqual, 8)
	test.That(t, path[0][0], test.ShouldEqual, 0.)
	test.That(t, path[len(path)-1][0], test.ShouldEqual, math.Pi)
	for i := 1; i < len(path); i++ {
		test.That(t, path[i][0], test.ShouldBeGreaterThan, path[i-1][0])
		test.That(t, path[i][0]-path[i-1][0], test.ShouldBeLessThanOrEqualTo, 0.5+1e-9)
	}
}

func TestInterpolateJointPath(t *testing.T) {
	path, err := InterpolateJointPath(
		[]float64{0},
		[]float64{math.Pi},
		[]float64{-math.Pi},
		[]float64{math.Pi},
		[]float64{0.5},
		[]bool{false},
		1e-6,
	)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(path), test.ShouldEqual, 8)

	// an epsilon that is not a positive number falls back to the default
	for _, epsilon := range []float64{math.NaN(), -1, 0} {
		path, err = InterpolateJointPath(
			[]float64{0}, []float64{math.Pi}, []float64{-math.Pi}, []float64{math.Pi}, []float64{0.5}, nil, epsilon,
		)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(path), test.ShouldEqual, 8)
		for i := 1; i < len(path); i++ {
			test.That(t, path[i][0]-path[i-1][0], test.ShouldBeLessThanOrEqualTo, 0.5+1e-9)
		}
	}

	_, err = InterpolateJointPath([]float64{0}, []float64{1}, []float64{-1, -1}, []float64{1}, []float64{0.1}, nil, 0)
	test.That(t, errors.Is(err, ErrDimensionMismatch), test.ShouldBeTrue)
}

func TestInterpolateBoundedJointTakesLongWay(t *testing.T) {
	// the short way from 3 to -3 crosses +pi, which a [-pi, pi] joint cannot do
	limits := []referenceframe.Limit{piLimit}
	path, err := InterpolatePath([]referenceframe.Input{3}, []referenceframe.Input{-3}, limits, []float64{0.25})
	test.That(t, err, test.ShouldBeNil)
	for i := 1; i < len(path); i++ {
		test.That(t, path[i][0], test.ShouldBeLessThan, path[i-1][0])
	}
	test.That(t, len(path), test.ShouldEqual, 25)
	test.That(t, path[len(path)-1][0], test.ShouldEqual, -3.)
}

func TestInterpolateContinuousJointWraps(t *testing.T) {
	limits := []referenceframe.Limit{piLimit}
	opts := &InterpolationOptions{ContinuousJoints: []bool{true}}
	path, err := InterpolatePathWithOptions([]referenceframe.Input{3}, []referenceframe.Input{-3}, limits, []float64{0.1}, opts)
	test.That(t, err, test.ShouldBeNil)
	// short arc is 2pi-6, about 0.28
	test.That(t, len(path), test.ShouldEqual, 4)
	test.That(t, path[len(path)-1][0], test.ShouldEqual, -3.)
	for _, step := range path {
		test.That(t, referenceframe.AreInputsWithinLimits(step, limits), test.ShouldBeTrue)
	}
	// the joint crossed the +pi seam rather than sweeping through zero
	test.That(t, path[2][0], test.ShouldBeLessThan, -3+0.1+1e-9)
}

func TestInterpolateProperties(t *testing.T) {
	limits := []referenceframe.Limit{piLimit, {Min: -2, Max: 2}, {Min: 0, Max: utils.TwoPi}}
	increments := []float64{0.1, 0.05, 0.2}
	cases := []struct {
		name       string
		start, end []referenceframe.Input
		continuous []bool
	}{
		{"bounded", []referenceframe.Input{-3, -1.5, 0.5}, []referenceframe.Input{3, 1.9, 6}, nil},
		{"wrapped inputs", []referenceframe.Input{-3 + utils.TwoPi, 1, 7}, []referenceframe.Input{2.5, -1, -0.5}, nil},
		{"mixed continuous", []referenceframe.Input{3, 0, 6}, []referenceframe.Input{-3, 0, 0.1}, []bool{true, false, true}},
		{"identical", []referenceframe.Input{1, 1, 1}, []referenceframe.Input{1, 1, 1}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := &InterpolationOptions{ContinuousJoints: tc.continuous}
			path, err := InterpolatePathWithOptions(tc.start, tc.end, limits, increments, opts)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, len(path), test.ShouldBeGreaterThanOrEqualTo, 2)

			startNorm, err := referenceframe.NormalizeInputsIntoRange(tc.start, limits)
			test.That(t, err, test.ShouldBeNil)
			endNorm, err := referenceframe.NormalizeInputsIntoRange(tc.end, limits)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, path[0], test.ShouldResemble, startNorm)
			test.That(t, path[len(path)-1], test.ShouldResemble, endNorm)

			for _, step := range path {
				test.That(t, referenceframe.AreInputsWithinLimits(step, limits), test.ShouldBeTrue)
			}
			for j := range limits {
				prevGap := math.Inf(1)
				for _, step := range path {
					var gap float64
					if tc.continuous != nil && tc.continuous[j] {
						gap = utils.ShortestAngleDist(endNorm[j], step[j])
					} else {
						gap = math.Abs(endNorm[j] - step[j])
					}
					test.That(t, gap, test.ShouldBeLessThanOrEqualTo, prevGap+1e-9)
					prevGap = gap
				}
			}
		})
	}
}

func TestInterpolateSmallGapTakesOneStep(t *testing.T) {
	limits := []referenceframe.Limit{piLimit, piLimit}
	path, err := InterpolatePath([]referenceframe.Input{0, 0}, []referenceframe.Input{0.05, 1e-8}, limits, []float64{0.1, 0.1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path, test.ShouldResemble, Path{{0, 0}, {0.05, 1e-8}})
}

func TestInterpolateErrors(t *testing.T) {
	limits := []referenceframe.Limit{piLimit, piLimit, piLimit}
	start := []referenceframe.Input{0, 0, 0}

	t.Run("dimension mismatch", func(t *testing.T) {
		end := []referenceframe.Input{1, 1}
		_, err := InterpolatePath(start, end, limits, []float64{0.1, 0.1, 0.1})
		test.That(t, errors.Is(err, ErrDimensionMismatch), test.ShouldBeTrue)
		test.That(t, start, test.ShouldResemble, []referenceframe.Input{0, 0, 0})
		test.That(t, end, test.ShouldResemble, []referenceframe.Input{1, 1})

		_, err = InterpolatePath(start, start, limits, []float64{0.1})
		test.That(t, errors.Is(err, ErrDimensionMismatch), test.ShouldBeTrue)

		opts := &InterpolationOptions{ContinuousJoints: []bool{true}}
		_, err = InterpolatePathWithOptions(start, start, limits, []float64{0.1, 0.1, 0.1}, opts)
		test.That(t, errors.Is(err, ErrDimensionMismatch), test.ShouldBeTrue)
	})

	t.Run("inverted limits", func(t *testing.T) {
		bad := []referenceframe.Limit{piLimit, {Min: 1, Max: -1}, piLimit}
		_, err := InterpolatePath(start, start, bad, []float64{0.1, 0.1, 0.1})
		test.That(t, errors.Is(err, ErrInvalidLimits), test.ShouldBeTrue)
	})

	t.Run("unnormalizable end", func(t *testing.T) {
		narrow := []referenceframe.Limit{piLimit, {Min: -1, Max: 1}, piLimit}
		_, err := InterpolatePath(start, []referenceframe.Input{0, 2, 0}, narrow, []float64{0.1, 0.1, 0.1})
		test.That(t, errors.Is(err, ErrUnnormalizableValue), test.ShouldBeTrue)
		test.That(t, err.Error(), test.ShouldContainSubstring, "end")
	})

	t.Run("non-positive increment", func(t *testing.T) {
		_, err := InterpolatePath(start, start, limits, []float64{0.1, 0, 0.1})
		test.That(t, errors.Is(err, ErrInvalidIncrement), test.ShouldBeTrue)
	})
}
