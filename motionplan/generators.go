package motionplan

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/jointpath/referenceframe"
)

// ValidityFunc reports whether a configuration may appear on a path. A nil ValidityFunc accepts
// everything.
type ValidityFunc func([]referenceframe.Input) bool

// NewInterpolatingGenerator returns a generator that connects two configurations with
// InterpolatePathWithOptions and prices the result with metric. A route with any configuration
// rejected by valid is refused, as is any pair of configurations that cannot be interpolated.
func NewInterpolatingGenerator(
	limits []referenceframe.Limit,
	increments []float64,
	metric SegmentMetric,
	opts *InterpolationOptions,
	valid ValidityFunc,
) PathGenerator[[]referenceframe.Input, float64] {
	return PathGeneratorFunc[[]referenceframe.Input, float64](
		func(from, to []referenceframe.Input) ([][]referenceframe.Input, float64, bool) {
			path, err := InterpolatePathWithOptions(from, to, limits, increments, opts)
			if err != nil {
				return nil, 0, false
			}
			if valid != nil {
				for _, step := range path {
					if !valid(step) {
						return nil, 0, false
					}
				}
			}
			// interpolation returns normalized endpoints; keep the caller's own
			path[0] = referenceframe.CopyInputs(from)
			path[len(path)-1] = referenceframe.CopyInputs(to)
			return path, path.Evaluate(metric), true
		})
}

// NewDirectGenerator returns a generator that always proposes jumping straight from one point to
// the other, priced by dist.
func NewDirectGenerator[P any, C Cost](dist func(from, to P) C) PathGenerator[P, C] {
	return PathGeneratorFunc[P, C](func(from, to P) ([]P, C, bool) {
		return []P{from, to}, dist(from, to), true
	})
}

// NewR3LineGenerator returns a generator for paths through cartesian space. It proposes the straight
// line between two points, subdivided so no step is longer than stepSize, and refuses it if valid
// rejects any point along the way. The cost is the length of the line.
func NewR3LineGenerator(stepSize float64, valid func(r3.Vector) bool) PathGenerator[r3.Vector, float64] {
	return PathGeneratorFunc[r3.Vector, float64](func(from, to r3.Vector) ([]r3.Vector, float64, bool) {
		length := from.Distance(to)
		steps := 1
		if stepSize > 0 && length > stepSize {
			steps = int(math.Ceil(length / stepSize))
		}
		delta := to.Sub(from).Mul(1 / float64(steps))
		line := make([]r3.Vector, 0, steps+1)
		for i := 0; i <= steps; i++ {
			pt := from.Add(delta.Mul(float64(i)))
			if i == steps {
				pt = to
			}
			if valid != nil && !valid(pt) {
				return nil, 0, false
			}
			line = append(line, pt)
		}
		return line, length, true
	})
}
