// Package motionplan interpolates joint-space paths and shortcuts them with cheaper routes.
package motionplan

import (
	"math"

	"github.com/pkg/errors"

	"go.viam.com/jointpath/referenceframe"
	"go.viam.com/jointpath/utils"
)

// InterpolatePath interpolates between start and end with every joint bounded by its limits and the
// default epsilon. See InterpolatePathWithOptions.
func InterpolatePath(
	start, end []referenceframe.Input,
	limits []referenceframe.Limit,
	increments []float64,
) (Path, error) {
	return InterpolatePathWithOptions(start, end, limits, increments, nil)
}

// InterpolateJointPath is InterpolatePathWithOptions taking limits as parallel min/max slices. A
// nil continuous slice marks every joint as bounded.
func InterpolateJointPath(
	start, end, minLimits, maxLimits, increments []float64,
	continuous []bool,
	epsilon float64,
) (Path, error) {
	if len(minLimits) != len(start) {
		return nil, referenceframe.NewIncorrectDoFError(len(minLimits), len(start))
	}
	limits, err := referenceframe.LimitsFromBounds(minLimits, maxLimits)
	if err != nil {
		return nil, err
	}
	return InterpolatePathWithOptions(start, end, limits, increments, &InterpolationOptions{
		ContinuousJoints: continuous,
		Epsilon:          epsilon,
	})
}

// InterpolatePathWithOptions produces a dense sequence of configurations from start to end. Every
// joint advances by at most its increment per step, all joints share the same number of steps, and
// the returned path begins at the normalized start and ends exactly at the normalized end.
//
// Bounded joints take the shorter way around unless that would cross one of their limits, in which
// case they go the long way. Continuous joints always take the shorter way. Every value on the path,
// including those of continuous joints, lies within its joint's limits.
func InterpolatePathWithOptions(
	start, end []referenceframe.Input,
	limits []referenceframe.Limit,
	increments []float64,
	opts *InterpolationOptions,
) (Path, error) {
	if opts == nil {
		opts = NewInterpolationOptions()
	}
	dof := len(start)
	continuous := opts.ContinuousJoints
	if continuous == nil {
		continuous = make([]bool, dof)
	}
	epsilon := opts.Epsilon
	if !(epsilon > 0) {
		epsilon = defaultEpsilon
	}

	for _, n := range []int{len(end), len(limits), len(increments), len(continuous)} {
		if n != dof {
			return nil, referenceframe.NewIncorrectDoFError(n, dof)
		}
	}
	for i, inc := range increments {
		if !(inc > 0) {
			return nil, NewInvalidIncrementError(i, inc)
		}
	}

	startNorm, err := referenceframe.NormalizeInputsIntoRange(start, limits)
	if err != nil {
		return nil, errors.Wrap(err, "cannot normalize start configuration")
	}
	endNorm, err := referenceframe.NormalizeInputsIntoRange(end, limits)
	if err != nil {
		return nil, errors.Wrap(err, "cannot normalize end configuration")
	}

	travelDirs := make([]int, dof)
	numSteps := 1
	for i := 0; i < dof; i++ {
		diff := utils.ShortestAngleDiff(endNorm[i], startNorm[i])
		legal := continuous[i] || limits[i].Contains(startNorm[i]+diff)

		dist := math.Abs(diff)
		if legal {
			travelDirs[i] = utils.Sign(diff)
		} else {
			travelDirs[i] = -utils.Sign(diff)
			dist = utils.TwoPi - dist
		}

		jointSteps := 1
		if gap := math.Abs(endNorm[i] - startNorm[i]); gap >= epsilon && gap > increments[i] {
			jointSteps = int(math.Ceil(dist / increments[i]))
		}
		if jointSteps > numSteps {
			numSteps = jointSteps
		}
	}

	path := make(Path, 0, numSteps+1)
	curr := referenceframe.CopyInputs(startNorm)
	path = append(path, referenceframe.CopyInputs(curr))
	for step := 0; step < numSteps; step++ {
		for i := range curr {
			limit := limits[i]
			// a joint that has already arrived may sit a rounding error past its target, which must
			// not be read as a full turn still to go
			if math.Abs(utils.ShortestAngleDiff(endNorm[i], curr[i])) < epsilon {
				curr[i] = endNorm[i]
				continue
			}
			gap := remainingGap(curr[i], endNorm[i], travelDirs[i])
			if math.Abs(gap) < increments[i] {
				curr[i] = endNorm[i]
				continue
			}

			curr[i] += float64(travelDirs[i]) * increments[i]
			// wrap back inside the limits so continuous joints stay in their declared range
			if curr[i] > limit.Max {
				curr[i] -= utils.TwoPi
			}
			if curr[i] < limit.Min {
				curr[i] += utils.TwoPi
			}
		}
		path = append(path, referenceframe.CopyInputs(curr))
	}
	// a joint whose distance is an exact multiple of its increment lands on the end by stepping, not
	// snapping, so floating point error is removed here
	path[len(path)-1] = endNorm

	return path, nil
}

// remainingGap returns the signed travel still needed to get from curr to target when moving in
// direction dir, which is the major arc if the minor arc points the other way.
func remainingGap(curr, target float64, dir int) float64 {
	gap := utils.ShortestAngleDiff(target, curr)
	if sign := utils.Sign(gap); sign != 0 && sign != dir {
		gap -= float64(sign) * utils.TwoPi
	}
	return gap
}
