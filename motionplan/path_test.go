package motionplan

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/jointpath/logging"
)

func TestPathCosts(t *testing.T) {
	path := Path{{0, 0}, {3, 4}, {3, 4}, {0, 0}}
	test.That(t, path.SegmentCosts(NewL2Metric()), test.ShouldResemble, []float64{5, 0, 5})
	test.That(t, path.Evaluate(NewL2Metric()), test.ShouldAlmostEqual, 10)

	test.That(t, Path{{1}}.SegmentCosts(NewL2Metric()), test.ShouldBeEmpty)
	test.That(t, Path{}.Evaluate(NewL2Metric()), test.ShouldEqual, 0.)
}

func TestPathCopy(t *testing.T) {
	path := Path{{0, 1}, {2, 3}}
	cp := path.Copy()
	test.That(t, cp, test.ShouldResemble, path)
	cp[0][0] = 10
	test.That(t, path[0][0], test.ShouldEqual, 0.)
	test.That(t, Path(nil).Copy(), test.ShouldBeNil)
}

func TestPathString(t *testing.T) {
	path := Path{{0, math.Pi}, {math.Pi / 2, -math.Pi / 2}}
	s := path.String()
	test.That(t, s, test.ShouldContainSubstring, "J0")
	test.That(t, s, test.ShouldContainSubstring, "J1")
	test.That(t, s, test.ShouldContainSubstring, "180.00")
	test.That(t, s, test.ShouldContainSubstring, "-90.00")
}

func TestPathLogField(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	logger.Infow("planned", "path", Path{{0, 1}, {2, 3}})
	test.That(t, logs.Len(), test.ShouldEqual, 1)
	test.That(t, logs.All()[0].ContextMap()["path"], test.ShouldResemble, []interface{}{
		[]interface{}{0., 1.},
		[]interface{}{2., 3.},
	})
}
