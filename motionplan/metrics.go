package motionplan

import (
	"gonum.org/v1/gonum/floats"

	"go.viam.com/jointpath/referenceframe"
	"go.viam.com/jointpath/utils"
)

// Segment is a single move between two configurations of the same joints.
type Segment struct {
	StartConfiguration []referenceframe.Input
	EndConfiguration   []referenceframe.Input
}

// SegmentMetric are functions which produce some score given a Segment. Lower is better.
// This is used to price the steps of a path before it is shortcut.
type SegmentMetric func(*Segment) float64

// NewZeroMetric always returns zero as the cost of a segment.
func NewZeroMetric() SegmentMetric {
	return func(*Segment) float64 { return 0 }
}

// NewL2Metric returns the euclidean distance between the two configurations of a segment.
func NewL2Metric() SegmentMetric {
	return func(segment *Segment) float64 {
		if len(segment.StartConfiguration) != len(segment.EndConfiguration) {
			return 0
		}
		return floats.Distance(segment.StartConfiguration, segment.EndConfiguration, 2)
	}
}

// NewAngularMetric returns the summed joint travel of a segment. Continuous joints are charged the
// shorter way around; bounded joints are charged the way that stays inside their limits.
func NewAngularMetric(limits []referenceframe.Limit, continuous []bool) SegmentMetric {
	return func(segment *Segment) float64 {
		start, end := segment.StartConfiguration, segment.EndConfiguration
		if len(start) != len(end) || len(start) != len(limits) {
			return 0
		}
		dist := 0.
		for i := range start {
			if i < len(continuous) && continuous[i] {
				dist += utils.ShortestAngleDist(end[i], start[i])
				continue
			}
			dist += utils.ShortestAngleDistWithLimits(end[i], start[i], limits[i].Min, limits[i].Max)
		}
		return dist
	}
}

type combinableSegmentMetric struct {
	metrics []SegmentMetric
}

func (m *combinableSegmentMetric) combinedDist(segment *Segment) float64 {
	dist := 0.
	for _, metric := range m.metrics {
		dist += metric(segment)
	}
	return dist
}

// CombineMetrics will take a variable number of Metrics and return a new Metric which will combine all given metrics into one, summing
// their distances.
func CombineMetrics(metrics ...SegmentMetric) SegmentMetric {
	cm := &combinableSegmentMetric{metrics: metrics}
	return cm.combinedDist
}
