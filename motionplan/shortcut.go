package motionplan

import (
	"golang.org/x/exp/constraints"

	"go.viam.com/jointpath/utils"
)

// Cost is any numeric type a path segment can be priced in.
type Cost interface {
	constraints.Integer | constraints.Float
}

// PathGenerator proposes a replacement route between two points of a path. A generator that cannot
// connect the points reports ok=false. A successful route starts at from, ends at to, and carries
// its total cost.
type PathGenerator[P any, C Cost] interface {
	GeneratePath(from, to P) (path []P, cost C, ok bool)
}

// PathGeneratorFunc adapts an ordinary function to a PathGenerator.
type PathGeneratorFunc[P any, C Cost] func(from, to P) ([]P, C, bool)

// GeneratePath calls f(from, to).
func (f PathGeneratorFunc[P, C]) GeneratePath(from, to P) ([]P, C, bool) {
	return f(from, to)
}

// CostComparator decides whether a candidate cost is good enough to replace a reference cost.
type CostComparator[C Cost] interface {
	Acceptable(candidate, reference C) bool
}

// CostComparatorFunc adapts an ordinary function to a CostComparator.
type CostComparatorFunc[C Cost] func(candidate, reference C) bool

// Acceptable calls f(candidate, reference).
func (f CostComparatorFunc[C]) Acceptable(candidate, reference C) bool {
	return f(candidate, reference)
}

// LessOrEqual accepts a candidate that costs no more than the reference.
func LessOrEqual[C Cost]() CostComparator[C] {
	return CostComparatorFunc[C](func(candidate, reference C) bool {
		return candidate <= reference
	})
}

// WithinTolerance accepts a candidate that costs no more than the reference, or that is within tol
// of it.
func WithinTolerance[C constraints.Float](tol C) CostComparator[C] {
	return CostComparatorFunc[C](func(candidate, reference C) bool {
		return candidate <= reference || utils.Float64AlmostEqual(float64(candidate), float64(reference), float64(tol))
	})
}

// ShortcutPath replaces runs of a path with cheaper routes proposed by generators. costs[i] is the
// cost of moving from path[i] to path[i+1], so len(costs) must be len(path)-1.
//
// The search keeps a window [start, end] over the original path. Every round, each generator is
// asked for a route from path[start] to path[end]. A route is accepted when comparator finds its
// cost acceptable against the best route found so far from start plus the original cost of the
// points between that route's end and end. Whenever a round accepts something the window grows by
// granularity points, clamped to the last point. When a round accepts nothing, the best route from
// start is committed and the window restarts one point past its end. The original segment from
// start to start+1 is always the fallback, so the result runs from path[0] to the last point and,
// with LessOrEqual, never costs more than the original.
//
// window is reserved for generators that limit how far they look and is not used by the search.
// A nil comparator means LessOrEqual and a granularity below 1 means 1. Paths with fewer than two
// points are returned as a copy.
//
// The result is a new slice, but its elements are the points of path and of generated routes as
// they were given. When P is a reference type such as a slice, changing a point of the result
// changes the caller's point too; use Path.Copy first if either side will be modified.
func ShortcutPath[P any, C Cost](
	path []P,
	costs []C,
	generators []PathGenerator[P, C],
	window, granularity int,
	comparator CostComparator[C],
) ([]P, error) {
	shortcut, _, err := ShortcutPathWithCost(path, costs, generators, window, granularity, comparator)
	return shortcut, err
}

// ShortcutPathWithCost is ShortcutPath that also returns the total cost of the result, summed from
// the original costs of kept segments and the costs reported by generators.
func ShortcutPathWithCost[P any, C Cost](
	path []P,
	costs []C,
	generators []PathGenerator[P, C],
	window, granularity int,
	comparator CostComparator[C],
) ([]P, C, error) {
	var total C
	if len(costs)+1 != len(path) {
		return nil, total, NewMalformedCostSeriesError(len(path), len(costs))
	}
	if len(path) < 2 {
		return append([]P(nil), path...), total, nil
	}
	if granularity < 1 {
		granularity = 1
	}
	if comparator == nil {
		comparator = LessOrEqual[C]()
	}

	// accum[i] is the original cost of travelling from path[0] to path[i]
	accum := make([]C, len(path))
	for i, c := range costs {
		accum[i+1] = accum[i] + c
	}
	last := len(path) - 1

	type route struct {
		points []P
		cost   C
		end    int
	}
	direct := func(start, end int) route {
		return route{points: []P{path[start], path[end]}, cost: accum[end] - accum[start], end: end}
	}

	result := make([]P, 0, len(path))
	result = append(result, path[0])
	commit := func(r route) {
		// the route starts at the point result currently ends on
		result = append(result[:len(result)-1], r.points...)
		total += r.cost
	}

	start, end := 0, 1
	best := direct(start, end)
	for {
		improved := false
		for _, generator := range generators {
			sub, cost, ok := generator.GeneratePath(path[start], path[end])
			if !ok || len(sub) < 2 {
				continue
			}
			reference := best.cost + accum[end] - accum[best.end]
			if comparator.Acceptable(cost, reference) {
				best = route{points: sub, cost: cost, end: end}
				improved = true
			}
		}

		if improved && end < last {
			if last-end > granularity {
				end += granularity
			} else {
				end = last
			}
			continue
		}

		commit(best)
		start = best.end
		if start == last {
			return result, total, nil
		}
		end = start + 1
		best = direct(start, end)
	}
}
