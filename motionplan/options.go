package motionplan

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/multierr"

	"go.viam.com/jointpath/referenceframe"
)

// default values for interpolation and shortcutting options.
const (
	// Joint gaps smaller than this are treated as already reached.
	defaultEpsilon = 1e-6

	// Number of points the shortcut window grows by after an improvement.
	defaultGranularity = 1

	// Reserved for generators; the shortcut search itself does not read it.
	defaultWindow = 0

	// default number of times to try to smooth the path.
	defaultSmoothIter = 20

	// Candidate costs within this much of the reference are still accepted, so an interpolated
	// route priced with rounding error does not lose to the identical original segment.
	defaultCostTolerance = 1e-9

	// Smoothing stops once a pass improves total cost by less than this.
	defaultMinImprovement = 1e-9
)

// MetricType names a SegmentMetric that can be selected from configuration.
type MetricType string

// the set of supported segment metrics.
const (
	L2Metric      MetricType = "l2"
	AngularMetric MetricType = "angular"
)

// InterpolationOptions control InterpolatePathWithOptions.
type InterpolationOptions struct {
	// Joints flagged true wrap around freely; nil means every joint is bounded.
	ContinuousJoints []bool `json:"continuous_joints"`

	// Joint gaps smaller than this take a single step. Values that are not positive, NaN included,
	// select the default.
	Epsilon float64 `json:"epsilon"`
}

// NewInterpolationOptions returns interpolation options with every joint bounded.
func NewInterpolationOptions() *InterpolationOptions {
	return &InterpolationOptions{Epsilon: defaultEpsilon}
}

// ShortcutOptions are a set of options controlling how a Smoother shortcuts a path.
type ShortcutOptions struct {
	// Reserved for generator-internal use.
	Window int `json:"window"`

	// How many points the search window grows by each time a generator improves on the current best.
	Granularity int `json:"granularity"`

	// Maximum number of shortcut passes.
	SmoothIter int `json:"smooth_iter"`

	// Candidates costing up to this much more than the reference are still accepted. Zero means
	// plain less-or-equal.
	CostTolerance float64 `json:"cost_tolerance"`

	// A pass that reduces total cost by less than this ends smoothing.
	MinImprovement float64 `json:"min_improvement"`

	// Cost model for path segments.
	Metric MetricType `json:"metric"`

	Interpolation InterpolationOptions `json:"interpolation"`
}

// NewShortcutOptions returns shortcut options populated with defaults.
func NewShortcutOptions() *ShortcutOptions {
	return &ShortcutOptions{
		Window:         defaultWindow,
		Granularity:    defaultGranularity,
		SmoothIter:     defaultSmoothIter,
		CostTolerance:  defaultCostTolerance,
		MinImprovement: defaultMinImprovement,
		Metric:         AngularMetric,
		Interpolation:  *NewInterpolationOptions(),
	}
}

// NewShortcutOptionsFromExtra starts from the defaults and overrides any field present in extra,
// keyed by its json name.
func NewShortcutOptionsFromExtra(extra map[string]interface{}) (*ShortcutOptions, error) {
	opts := NewShortcutOptions()
	if len(extra) == 0 {
		return opts, nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      opts,
		ErrorUnused: true,
		DecodeHook:  mapstructure.DecodeHookFuncKind(coerceScalar),
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(extra); err != nil {
		return nil, errors.Wrap(err, "invalid shortcut options")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// coerceScalar converts option values written as strings, such as "3" or "1e-6", into the numeric or
// boolean kind of the field they decode into.
func coerceScalar(from, to reflect.Kind, data interface{}) (interface{}, error) {
	if from != reflect.String {
		return data, nil
	}
	switch to {
	case reflect.Int:
		return cast.ToIntE(data)
	case reflect.Float64:
		return cast.ToFloat64E(data)
	case reflect.Bool:
		return cast.ToBoolE(data)
	default:
		return data, nil
	}
}

// Validate returns every problem with the options at once.
func (o *ShortcutOptions) Validate() error {
	var errs error
	if o.Window < 0 {
		errs = multierr.Append(errs, errors.Errorf("window must be non-negative, got %d", o.Window))
	}
	if o.Granularity < 1 {
		errs = multierr.Append(errs, errors.Errorf("granularity must be at least 1, got %d", o.Granularity))
	}
	if o.SmoothIter < 1 {
		errs = multierr.Append(errs, errors.Errorf("smooth_iter must be at least 1, got %d", o.SmoothIter))
	}
	if o.CostTolerance < 0 {
		errs = multierr.Append(errs, errors.Errorf("cost_tolerance must be non-negative, got %f", o.CostTolerance))
	}
	if o.MinImprovement < 0 {
		errs = multierr.Append(errs, errors.Errorf("min_improvement must be non-negative, got %f", o.MinImprovement))
	}
	switch o.Metric {
	case L2Metric, AngularMetric:
	default:
		errs = multierr.Append(errs, errors.Errorf("unknown metric %q", o.Metric))
	}
	return errs
}

// comparator returns the cost acceptance rule selected by CostTolerance.
func (o *ShortcutOptions) comparator() CostComparator[float64] {
	if o.CostTolerance > 0 {
		return WithinTolerance[float64](o.CostTolerance)
	}
	return LessOrEqual[float64]()
}

// MetricFor builds the SegmentMetric selected by Metric for the given joints.
func (o *ShortcutOptions) MetricFor(limits []referenceframe.Limit) SegmentMetric {
	if o.Metric == L2Metric {
		return NewL2Metric()
	}
	return NewAngularMetric(limits, o.Interpolation.ContinuousJoints)
}
