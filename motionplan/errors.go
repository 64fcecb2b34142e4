package motionplan

import (
	"github.com/pkg/errors"

	"go.viam.com/jointpath/referenceframe"
)

// These are re-exported so callers of this package can match failures without importing referenceframe.
var (
	// ErrDimensionMismatch is returned when parallel joint vectors differ in length.
	ErrDimensionMismatch = referenceframe.ErrDimensionMismatch
	// ErrInvalidLimits is returned when a joint's declared minimum exceeds its maximum.
	ErrInvalidLimits = referenceframe.ErrInvalidLimits
	// ErrUnnormalizableValue is returned when a start or end value cannot be wrapped into its limits.
	ErrUnnormalizableValue = referenceframe.ErrUnnormalizableValue
	// ErrMalformedCostSeries is returned when a path does not carry exactly one cost per segment.
	ErrMalformedCostSeries = errors.New("segment cost count must be one less than the path length")
	// ErrInvalidIncrement is returned when a joint's step size is not strictly positive.
	ErrInvalidIncrement = errors.New("joint increment must be positive")
)

// NewMalformedCostSeriesError is used when the number of segment costs does not match a path.
func NewMalformedCostSeriesError(points, costs int) error {
	return errors.Wrapf(ErrMalformedCostSeries, "path has %d points but %d segment costs", points, costs)
}

// NewInvalidIncrementError is used when a joint's increment cannot advance it toward its goal.
func NewInvalidIncrementError(joint int, increment float64) error {
	return errors.Wrapf(ErrInvalidIncrement, "joint %d has increment %f", joint, increment)
}
