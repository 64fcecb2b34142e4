package motionplan

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"go.uber.org/zap/zapcore"

	"go.viam.com/jointpath/referenceframe"
	"go.viam.com/jointpath/utils"
)

// Path is an ordered sequence of joint configurations, all of the same length.
type Path [][]referenceframe.Input

// Copy returns a deep copy of the path.
func (p Path) Copy() Path {
	if p == nil {
		return nil
	}
	return lo.Map(p, func(step []referenceframe.Input, _ int) []referenceframe.Input {
		return referenceframe.CopyInputs(step)
	})
}

// SegmentCosts prices every consecutive pair of configurations with metric. The result has one
// entry fewer than the path, or none if the path has fewer than two points.
func (p Path) SegmentCosts(metric SegmentMetric) []float64 {
	if len(p) < 2 {
		return []float64{}
	}
	costs := make([]float64, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		costs = append(costs, metric(&Segment{StartConfiguration: p[i-1], EndConfiguration: p[i]}))
	}
	return costs
}

// Evaluate returns the total cost of the path under metric.
func (p Path) Evaluate(metric SegmentMetric) float64 {
	return lo.Sum(p.SegmentCosts(metric))
}

// String prints out a table of each configuration in the path, one column per joint, in degrees.
func (p Path) String() string {
	t := table.NewWriter()
	header := table.Row{"#"}
	if len(p) > 0 {
		for j := range p[0] {
			header = append(header, fmt.Sprintf("J%d", j))
		}
	}
	t.AppendHeader(header)
	for i, step := range p {
		row := table.Row{fmt.Sprintf("%d", i)}
		for _, v := range step {
			row = append(row, fmt.Sprintf("%.2f", utils.RadToDeg(v)))
		}
		t.AppendRow(row)
	}
	return t.Render()
}

// MarshalLogArray encodes the path as nested arrays of radians when it is passed as a log field.
func (p Path) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, step := range p {
		err := enc.AppendArray(zapcore.ArrayMarshalerFunc(func(inner zapcore.ArrayEncoder) error {
			for _, v := range step {
				inner.AppendFloat64(v)
			}
			return nil
		}))
		if err != nil {
			return err
		}
	}
	return nil
}
