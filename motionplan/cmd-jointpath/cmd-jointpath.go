// package main interpolates and shortcuts joint-space paths described in json files
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"go.viam.com/jointpath/logging"
	"go.viam.com/jointpath/motionplan"
	"go.viam.com/jointpath/referenceframe"
)

const (
	flagVerbose   = "v"
	flagLogLevel  = "log-level"
	flagLogFile   = "log-file"
	flagDegrees   = "degrees"
	flagPlot      = "plot"
	flagHistogram = "histogram"
)

// pathRequest is the json document read by every command. Joint values are radians unless the
// degrees flag is set.
type pathRequest struct {
	Start      []float64              `json:"start"`
	Goal       []float64              `json:"goal"`
	Waypoints  [][]float64            `json:"waypoints"`
	Limits     []referenceframe.Limit `json:"limits"`
	Increments []float64              `json:"increments"`
	Options    map[string]interface{} `json:"options"`
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	flags := []cli.Flag{
		&cli.BoolFlag{Name: flagVerbose, Usage: "debug logging, same as --log-level=debug"},
		&cli.StringFlag{Name: flagLogLevel, Value: "info", Usage: "one of debug, info or warn"},
		&cli.StringFlag{Name: flagLogFile, Usage: "also write logs to this file, rotated as it grows"},
		&cli.BoolFlag{Name: flagDegrees, Usage: "joint values, limits and increments in the request are degrees"},
		&cli.StringFlag{Name: flagPlot, Usage: "write a png of joint values against step index to this file"},
		&cli.BoolFlag{Name: flagHistogram, Usage: "print a histogram and summary of segment costs"},
	}
	return &cli.App{
		Name:            "jointpath",
		Usage:           "interpolate and shortcut joint-space paths",
		HideHelpCommand: true,
		Writer:          out,
		Commands: []*cli.Command{
			{
				Name:      "interpolate",
				Usage:     "interpolate from start to goal",
				ArgsUsage: "<request.json>",
				Flags:     flags,
				Action: func(c *cli.Context) error {
					return runCommand(c, out, interpolateAction)
				},
			},
			{
				Name:      "shortcut",
				Usage:     "interpolate through waypoints, then shortcut the result",
				ArgsUsage: "<request.json>",
				Flags:     flags,
				Action: func(c *cli.Context) error {
					return runCommand(c, out, shortcutAction)
				},
			},
		},
	}
}

type action func(ctx context.Context, logger logging.Logger, req *pathRequest, opts *motionplan.ShortcutOptions) (motionplan.Path, error)

func runCommand(c *cli.Context, out io.Writer, act action) error {
	ctx := c.Context
	logger := logging.NewLogger("cmd-jointpath")
	level, err := logging.LevelFromString(c.String(flagLogLevel))
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	if c.Bool(flagVerbose) {
		logger.SetLevel(logging.DEBUG)
		ctx = logging.EnableDebugMode(ctx, "")
	}
	if file := c.String(flagLogFile); file != "" {
		appender := logging.NewFileAppender(file)
		defer func() {
			if err := appender.Close(); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}()
		logger.AddAppender(appender)
	}
	if c.Args().Len() == 0 {
		return errors.New("need a json file")
	}

	logger.Infof("reading request from %s", c.Args().First())
	req, err := readRequest(c.Args().First(), c.Bool(flagDegrees))
	if err != nil {
		return err
	}
	opts, err := newOptions(req)
	if err != nil {
		return err
	}

	path, err := act(ctx, logger, req, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, path.String())
	costs := path.SegmentCosts(opts.MetricFor(req.Limits))
	if c.Bool(flagHistogram) && len(costs) > 0 {
		if err := histogram.Fprint(out, histogram.Hist(10, costs), histogram.Linear(40)); err != nil {
			return err
		}
		summary, err := summarizeCosts(costs)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, summary)
		logger.Infow("segment costs",
			"mean", summary.Mean, "median", summary.Median, "p95", summary.P95, "max", summary.Max)
	}
	if file := c.String(flagPlot); file != "" {
		if err := plotPath(path, file); err != nil {
			return err
		}
		logger.Infof("wrote plot to %s", file)
	}
	return nil
}

func interpolateAction(
	ctx context.Context,
	logger logging.Logger,
	req *pathRequest,
	opts *motionplan.ShortcutOptions,
) (motionplan.Path, error) {
	path, err := motionplan.InterpolatePathWithOptions(req.Start, req.Goal, req.Limits, req.Increments, &opts.Interpolation)
	if err != nil {
		return nil, err
	}
	logger.Infof("interpolated %d points, cost %.4f", len(path), path.Evaluate(opts.MetricFor(req.Limits)))
	return path, nil
}

func shortcutAction(
	ctx context.Context,
	logger logging.Logger,
	req *pathRequest,
	opts *motionplan.ShortcutOptions,
) (motionplan.Path, error) {
	dense, err := densify(ctx, req, opts)
	if err != nil {
		return nil, err
	}
	logger.CDebugf(ctx, "densified %d waypoints into %d points", len(req.Waypoints), len(dense))
	smoother, err := motionplan.NewSmoother(logger, req.Limits, req.Increments, opts, nil)
	if err != nil {
		return nil, err
	}
	smoothed, err := smoother.SmoothPath(ctx, dense)
	if err != nil {
		return nil, err
	}
	logger.Infof("shortcut %d -> %d points, cost %.4f -> %.4f",
		len(dense), len(smoothed), dense.Evaluate(smoother.Metric()), smoothed.Evaluate(smoother.Metric()))
	return smoothed, nil
}

// densify interpolates between consecutive configurations of start, waypoints and goal, joining
// the pieces at their shared endpoints. Legs are interpolated concurrently.
func densify(ctx context.Context, req *pathRequest, opts *motionplan.ShortcutOptions) (motionplan.Path, error) {
	stops := make([][]float64, 0, len(req.Waypoints)+2)
	if req.Start != nil {
		stops = append(stops, req.Start)
	}
	stops = append(stops, req.Waypoints...)
	if req.Goal != nil {
		stops = append(stops, req.Goal)
	}
	if len(stops) < 2 {
		return nil, errors.New("request needs at least two of start, waypoints and goal")
	}

	legs := make([]motionplan.Path, len(stops)-1)
	group, ctx := errgroup.WithContext(ctx)
	for i := range legs {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			leg, err := motionplan.InterpolatePathWithOptions(stops[i], stops[i+1], req.Limits, req.Increments, &opts.Interpolation)
			if err != nil {
				return errors.Wrapf(err, "cannot interpolate leg %d", i+1)
			}
			legs[i] = leg
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	dense := legs[0]
	for _, leg := range legs[1:] {
		dense = append(dense, leg[1:]...)
	}
	return dense, nil
}

// costSummary describes the distribution of a path's segment costs.
type costSummary struct {
	Mean, Median, P95, Max float64
}

func (s costSummary) String() string {
	return fmt.Sprintf("segment cost mean %.4f median %.4f p95 %.4f max %.4f", s.Mean, s.Median, s.P95, s.Max)
}

func summarizeCosts(costs []float64) (costSummary, error) {
	var summary costSummary
	data := stats.Float64Data(costs)
	var errs [4]error
	summary.Mean, errs[0] = stats.Mean(data)
	summary.Median, errs[1] = stats.Median(data)
	summary.P95, errs[2] = stats.Percentile(data, 95)
	summary.Max, errs[3] = stats.Max(data)
	if err := multierr.Combine(errs[:]...); err != nil {
		return costSummary{}, errors.Wrap(err, "cannot summarize segment costs")
	}
	return summary, nil
}

func readRequest(file string, degrees bool) (*pathRequest, error) {
	//nolint:gosec
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	req := &pathRequest{}
	if err := json.Unmarshal(content, req); err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", file)
	}
	if degrees {
		req.toRadians()
	}
	return req, nil
}

func newOptions(req *pathRequest) (*motionplan.ShortcutOptions, error) {
	return motionplan.NewShortcutOptionsFromExtra(req.Options)
}

func (req *pathRequest) toRadians() {
	if req.Start != nil {
		req.Start = referenceframe.JointPositionsToRadians(req.Start)
	}
	if req.Goal != nil {
		req.Goal = referenceframe.JointPositionsToRadians(req.Goal)
	}
	for i, wp := range req.Waypoints {
		req.Waypoints[i] = referenceframe.JointPositionsToRadians(wp)
	}
	req.Increments = referenceframe.JointPositionsToRadians(req.Increments)
	mins, maxs := referenceframe.LimitBounds(req.Limits)
	// both slices share the limits' length, so this cannot fail
	req.Limits, _ = referenceframe.LimitsFromBounds(
		referenceframe.JointPositionsToRadians(mins),
		referenceframe.JointPositionsToRadians(maxs),
	)
}

// plotPath draws one line per joint, in radians, against step index.
func plotPath(path motionplan.Path, file string) error {
	p := plot.New()
	p.Title.Text = "joint path"
	p.X.Label.Text = "step"
	p.Y.Label.Text = "radians"
	if len(path) == 0 {
		return p.Save(6*vg.Inch, 4*vg.Inch, file)
	}
	for j := range path[0] {
		xys := make(plotter.XYs, len(path))
		for i, step := range path {
			xys[i].X = float64(i)
			xys[i].Y = step[j]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Color = plotutil.Color(j)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("J%d", j), line)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, file)
}
