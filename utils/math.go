// Package utils contains the scalar angle helpers shared by the joint-space packages.
package utils

import (
	"math"
)

// TwoPi is one full turn in radians.
const TwoPi = 2 * math.Pi

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Float64AlmostEqual compares two float64s and returns if the difference between them is less than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Sign returns -1, 0 or 1 according to the sign of val.
func Sign(val float64) int {
	switch {
	case val > 0:
		return 1
	case val < 0:
		return -1
	default:
		return 0
	}
}

// NormalizeAngle normalizes an angle into the range [angleMin, angleMax]. Angles already inside the
// closed range are returned unchanged; anything else is shifted by whole multiples of the range
// width into [angleMin, angleMax).
//
// The range width is expected to be one full turn, e.g. [-pi, pi] or [0, 2pi]. A range that is
// empty or inverted yields NaN.
func NormalizeAngle(angle, angleMin, angleMax float64) float64 {
	if angle >= angleMin && angle <= angleMax {
		return angle
	}
	width := angleMax - angleMin
	if !(width > 0) {
		return math.NaN()
	}
	shifted := math.Mod(angle-angleMin, width)
	if shifted < 0 {
		shifted += width
	}
	return angleMin + shifted
}

// ShortestAngleDiff returns the shortest signed difference between two angles, in [-pi, pi]. The
// result is positive if following the shortest arc from a2 to a1 is a counter-clockwise rotation.
func ShortestAngleDiff(a1, a2 float64) float64 {
	return NormalizeAngle(a1-a2, -math.Pi, math.Pi)
}

// ShortestAngleDist returns the unsigned length of the minor arc between two angles.
func ShortestAngleDist(a1, a2 float64) float64 {
	return math.Abs(ShortestAngleDiff(a1, a2))
}

// ShortestAngleDistWithLimits returns the length of the minor arc between two angles, or the length
// of the major arc if moving from a2 along the minor arc would leave [minAngle, maxAngle].
func ShortestAngleDistWithLimits(a1, a2, minAngle, maxAngle float64) float64 {
	diff := ShortestAngleDiff(a1, a2)
	if a2+diff > maxAngle || a2+diff < minAngle {
		return TwoPi - math.Abs(diff)
	}
	return math.Abs(diff)
}
