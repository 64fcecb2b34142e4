// Package referenceframe defines joint-space inputs and the per-joint limits that bound them.
package referenceframe

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"go.viam.com/jointpath/utils"
)

// Input is the value of a single joint, e.g. a joint angle or a gantry position.
//   - revolute inputs should be in radians.
//   - prismatic inputs should be in mm.
type Input = float64

// JointPositionsToRadians converts the given positions, in degrees, into a slice of radians.
func JointPositionsToRadians(degrees []float64) []Input {
	n := make([]Input, len(degrees))
	for idx, d := range degrees {
		n[idx] = utils.DegToRad(d)
	}
	return n
}

// JointPositionsFromRadians converts the given slice of radians into joint positions in degrees.
func JointPositionsFromRadians(radians []Input) []float64 {
	n := make([]float64, len(radians))
	for idx, a := range radians {
		n[idx] = utils.RadToDeg(a)
	}
	return n
}

// CopyInputs returns a copy of the given inputs that shares no memory with them.
func CopyInputs(inputs []Input) []Input {
	if inputs == nil {
		return nil
	}
	out := make([]Input, len(inputs))
	copy(out, inputs)
	return out
}

// InputsL2Distance returns the square of the two-norm between the from and to vectors.
func InputsL2Distance(from, to []Input) float64 {
	if len(from) != len(to) {
		return 0
	}
	diff := make([]float64, len(from))
	floats.SubTo(diff, from, to)
	return floats.Dot(diff, diff)
}

// InputsLinfDistance returns the largest absolute per-joint difference between from and to.
func InputsLinfDistance(from, to []Input) float64 {
	if len(from) != len(to) || len(from) == 0 {
		return 0
	}
	return floats.Distance(from, to, math.Inf(1))
}
