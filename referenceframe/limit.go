package referenceframe

import (
	"math"

	"go.uber.org/multierr"

	"go.viam.com/jointpath/utils"
)

// Limit represents the limits of motion for a single joint.
type Limit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Range returns the width of the limit.
func (l Limit) Range() float64 {
	return l.Max - l.Min
}

// Contains reports whether value lies within [Min, Max].
func (l Limit) Contains(value float64) bool {
	return value >= l.Min && value <= l.Max
}

// LimitsFromBounds zips parallel slices of minimum and maximum joint values into limits.
func LimitsFromBounds(mins, maxs []float64) ([]Limit, error) {
	if len(mins) != len(maxs) {
		return nil, NewIncorrectDoFError(len(maxs), len(mins))
	}
	limits := make([]Limit, len(mins))
	for i := range mins {
		limits[i] = Limit{Min: mins[i], Max: maxs[i]}
	}
	return limits, nil
}

// LimitBounds splits limits back into parallel slices of minimums and maximums.
func LimitBounds(limits []Limit) (mins, maxs []float64) {
	mins = make([]float64, len(limits))
	maxs = make([]float64, len(limits))
	for i, l := range limits {
		mins[i] = l.Min
		maxs[i] = l.Max
	}
	return mins, maxs
}

// ValidateLimits returns an error naming every joint whose minimum exceeds its maximum.
func ValidateLimits(limits []Limit) error {
	var errs error
	for i, l := range limits {
		if l.Min > l.Max {
			errs = multierr.Append(errs, NewInvalidLimitsError(i, l))
		}
	}
	return errs
}

// NormalizeInputsIntoRange wraps every input into its joint's limits. Each value is first shifted
// by whole turns into [Min, Min+2pi] and must then lie within [Min, Max]. The given slice is not
// modified; a normalized copy is returned.
func NormalizeInputsIntoRange(inputs []Input, limits []Limit) ([]Input, error) {
	if len(inputs) != len(limits) {
		return nil, NewIncorrectDoFError(len(inputs), len(limits))
	}
	if err := ValidateLimits(limits); err != nil {
		return nil, err
	}

	normalized := make([]Input, len(inputs))
	for i, l := range limits {
		v := utils.NormalizeAngle(inputs[i], l.Min, l.Min+utils.TwoPi)
		if math.IsNaN(v) || !l.Contains(v) {
			return nil, NewUnnormalizableValueError(i, inputs[i], l)
		}
		normalized[i] = v
	}
	return normalized, nil
}

// NormalizeAnglesIntoRange is NormalizeInputsIntoRange for parallel min/max slices.
func NormalizeAnglesIntoRange(angles, mins, maxs []float64) ([]float64, error) {
	limits, err := LimitsFromBounds(mins, maxs)
	if err != nil {
		return nil, err
	}
	return NormalizeInputsIntoRange(angles, limits)
}

// AreInputsWithinLimits reports whether every input lies inside its joint's limits. Inputs whose
// length differs from the limits are never within them.
func AreInputsWithinLimits(inputs []Input, limits []Limit) bool {
	if len(inputs) != len(limits) {
		return false
	}
	for i, l := range limits {
		if !l.Contains(inputs[i]) {
			return false
		}
	}
	return true
}

// AreJointsWithinLimits is AreInputsWithinLimits for parallel min/max slices.
func AreJointsWithinLimits(angles, mins, maxs []float64) bool {
	limits, err := LimitsFromBounds(mins, maxs)
	if err != nil {
		return false
	}
	return AreInputsWithinLimits(angles, limits)
}
