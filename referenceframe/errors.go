package referenceframe

import (
	"github.com/pkg/errors"
)

var (
	// ErrDimensionMismatch is returned when parallel joint vectors differ in length.
	ErrDimensionMismatch = errors.New("joint vector dimensions do not match")
	// ErrInvalidLimits is returned when a joint's declared minimum exceeds its maximum.
	ErrInvalidLimits = errors.New("invalid joint limits")
	// ErrUnnormalizableValue is returned when a joint value cannot be wrapped inside its limits.
	ErrUnnormalizableValue = errors.New("joint value cannot be normalized into its limits")
)

// NewIncorrectDoFError returns an error indicating that the length of an input slice does not match
// the number of joints it is paired with.
func NewIncorrectDoFError(actual, expected int) error {
	return errors.Wrapf(ErrDimensionMismatch, "number of inputs does not match frame DoF, expected %d but got %d", expected, actual)
}

// NewInvalidLimitsError returns an error describing a joint whose minimum exceeds its maximum.
func NewInvalidLimitsError(joint int, limit Limit) error {
	return errors.Wrapf(ErrInvalidLimits, "joint %d has min %f greater than max %f", joint, limit.Min, limit.Max)
}

// NewUnnormalizableValueError returns an error for a joint value that stays outside its limits after wrapping.
func NewUnnormalizableValueError(joint int, value float64, limit Limit) error {
	return errors.Wrapf(ErrUnnormalizableValue, "joint %d value %f normalizes outside of [%f, %f]", joint, value, limit.Min, limit.Max)
}
