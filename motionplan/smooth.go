package motionplan

import (
	"context"

	"github.com/benbjohnson/clock"

	"go.viam.com/jointpath/logging"
	"go.viam.com/jointpath/referenceframe"
)

// Smoother repeatedly shortcuts joint-space paths with interpolated routes.
type Smoother struct {
	logger     logging.Logger
	opts       *ShortcutOptions
	limits     []referenceframe.Limit
	increments []float64
	metric     SegmentMetric
	generators []PathGenerator[[]referenceframe.Input, float64]
	clock      clock.Clock
}

// NewSmoother returns a Smoother for joints with the given limits and step sizes. valid may be nil,
// and nil opts select NewShortcutOptions.
func NewSmoother(
	logger logging.Logger,
	limits []referenceframe.Limit,
	increments []float64,
	opts *ShortcutOptions,
	valid ValidityFunc,
) (*Smoother, error) {
	if opts == nil {
		opts = NewShortcutOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := referenceframe.ValidateLimits(limits); err != nil {
		return nil, err
	}
	if len(increments) != len(limits) {
		return nil, referenceframe.NewIncorrectDoFError(len(increments), len(limits))
	}
	for i, inc := range increments {
		if !(inc > 0) {
			return nil, NewInvalidIncrementError(i, inc)
		}
	}
	metric := opts.MetricFor(limits)
	return &Smoother{
		logger:     logger,
		opts:       opts,
		limits:     limits,
		increments: increments,
		metric:     metric,
		generators: []PathGenerator[[]referenceframe.Input, float64]{
			NewInterpolatingGenerator(limits, increments, metric, &opts.Interpolation, valid),
		},
		clock: clock.New(),
	}, nil
}

// Metric returns the segment metric paths are priced with.
func (s *Smoother) Metric() SegmentMetric {
	return s.metric
}

// SmoothPath shortcuts path until a pass no longer lowers its cost by at least MinImprovement or
// SmoothIter passes have run. The input path is not modified.
func (s *Smoother) SmoothPath(ctx context.Context, path Path) (Path, error) {
	start := s.clock.Now()
	current := path.Copy()
	if len(current) < 2 {
		return current, nil
	}
	cost := current.Evaluate(s.metric)
	originalSize, originalCost := len(current), cost

	for i := 0; i < s.opts.SmoothIter; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, nextCost, err := ShortcutPathWithCost[[]referenceframe.Input, float64](
			current,
			current.SegmentCosts(s.metric),
			s.generators,
			s.opts.Window,
			s.opts.Granularity,
			s.opts.comparator(),
		)
		if err != nil {
			return nil, err
		}
		s.logger.CDebugw(ctx, "shortcut pass", "pass", i, "points", len(next), "cost", nextCost)
		if cost-nextCost < s.opts.MinImprovement {
			// accept a pass that made no worse path
			if nextCost <= cost {
				current = next
			}
			break
		}
		current, cost = next, nextCost
	}

	s.logger.CDebugw(ctx, "smoothed path",
		"original_points", originalSize,
		"points", len(current),
		"original_cost", originalCost,
		"cost", current.Evaluate(s.metric),
		"elapsed", s.clock.Since(start),
		"path", current,
	)
	return current, nil
}
