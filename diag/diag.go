// Package diag instruments the analysis pipeline for benchmarking and
// epsilon tuning. Development and ops tooling only; it is not on the
// request-serving path and its sole obligation is to report what the
// pipeline actually did.
package diag

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/metrics"
	mstats "github.com/montanaflynn/stats"
	"github.com/tourlog/trackd/api"
	"github.com/tourlog/trackd/common"
	"github.com/tourlog/trackd/geo/gpx"
	"github.com/tourlog/trackd/geo/simplify"
	"github.com/tourlog/trackd/params"
	"github.com/tourlog/trackd/types/trackpoint"
)

// Report describes one instrumented run of the pipeline over one file.
type Report struct {
	Bytes            int
	RawPoints        int
	SimplifiedPoints int
	ReductionPercent float64

	ParseElapsed    time.Duration
	StatsElapsed    time.Duration
	SimplifyElapsed time.Duration
}

func (r Report) String() string {
	return fmt.Sprintf("%s, %s points -> %s (%v%% reduction), parse=%v stats=%v simplify=%v",
		humanize.Bytes(uint64(r.Bytes)),
		humanize.Comma(int64(r.RawPoints)),
		humanize.Comma(int64(r.SimplifiedPoints)),
		r.ReductionPercent,
		r.ParseElapsed.Round(time.Microsecond),
		r.StatsElapsed.Round(time.Microsecond),
		r.SimplifyElapsed.Round(time.Microsecond))
}

// Profiler wraps the pipeline stages with timers and point-count
// instrumentation. Stage timers accumulate in a metrics registry so
// repeated runs can be inspected in aggregate.
type Profiler struct {
	engine *api.Engine

	reg           metrics.Registry
	parseTimer    metrics.Timer
	statsTimer    metrics.Timer
	simplifyTimer metrics.Timer
}

func NewProfiler(config *params.Config) (*Profiler, error) {
	if config == nil {
		config = params.DefaultConfig()
	}
	engine, err := api.NewEngine(config)
	if err != nil {
		return nil, err
	}

	// Won't record without this global setting.
	metrics.Enabled = true
	reg := metrics.NewRegistry()
	return &Profiler{
		engine:        engine,
		reg:           reg,
		parseTimer:    metrics.NewRegisteredTimer("stage.parse", reg),
		statsTimer:    metrics.NewRegisteredTimer("stage.stats", reg),
		simplifyTimer: metrics.NewRegisteredTimer("stage.simplify", reg),
	}, nil
}

// Registry exposes the accumulated stage timers.
func (p *Profiler) Registry() metrics.Registry {
	return p.reg
}

// Profile runs the pipeline once over data with the given epsilon,
// timing each stage.
func (p *Profiler) Profile(ctx context.Context, data []byte, epsilon float64) (*Report, error) {
	report := &Report{Bytes: len(data)}

	start := time.Now()
	points, err := gpx.Parse(data)
	if err != nil {
		return nil, err
	}
	report.ParseElapsed = time.Since(start)
	p.parseTimer.UpdateSince(start)
	report.RawPoints = len(points)

	start = time.Now()
	_ = p.engine.Aggregate(ctx, points)
	report.StatsElapsed = time.Since(start)
	p.statsTimer.UpdateSince(start)

	start = time.Now()
	simplified := simplify.DouglasPeucker(points, epsilon)
	report.SimplifyElapsed = time.Since(start)
	p.simplifyTimer.UpdateSince(start)

	report.SimplifiedPoints = len(simplified.Points)
	report.ReductionPercent = reductionPercent(points, simplified)
	return report, nil
}

func reductionPercent(raw []trackpoint.TrackPoint, st trackpoint.SimplifiedTrack) float64 {
	if len(raw) == 0 {
		return 0
	}
	return common.DecimalToFixed(
		100*(1-float64(len(st.Points))/float64(len(raw))), 2)
}

// SweepRow is one point on the simplification/time tradeoff curve.
type SweepRow struct {
	Epsilon          float64
	KeptPoints       int
	ReductionPercent float64
	MeanElapsed      time.Duration
	MedianElapsed    time.Duration
}

func (r SweepRow) String() string {
	return fmt.Sprintf("epsilon=%v kept=%s reduction=%v%% mean=%v median=%v",
		r.Epsilon,
		humanize.Comma(int64(r.KeptPoints)),
		r.ReductionPercent,
		r.MeanElapsed.Round(time.Microsecond),
		r.MedianElapsed.Round(time.Microsecond))
}

// Sweep runs the simplifier over data once per epsilon per run and
// reports the reduction/time tradeoff curve. Parsing happens once; the
// sweep times simplification only.
func (p *Profiler) Sweep(ctx context.Context, data []byte, epsilons []float64, runs int) ([]SweepRow, error) {
	if runs < 1 {
		runs = 1
	}
	points, err := gpx.Parse(data)
	if err != nil {
		return nil, err
	}

	rows := make([]SweepRow, 0, len(epsilons))
	for _, epsilon := range epsilons {
		elapsed := make([]float64, 0, runs)
		var last trackpoint.SimplifiedTrack
		for i := 0; i < runs; i++ {
			start := time.Now()
			last = simplify.DouglasPeucker(points, epsilon)
			elapsed = append(elapsed, float64(time.Since(start).Nanoseconds()))
		}
		mean, err := mstats.Mean(elapsed)
		if err != nil {
			return nil, err
		}
		median, err := mstats.Median(elapsed)
		if err != nil {
			return nil, err
		}
		rows = append(rows, SweepRow{
			Epsilon:          epsilon,
			KeptPoints:       len(last.Points),
			ReductionPercent: reductionPercent(points, last),
			MeanElapsed:      time.Duration(int64(mean)),
			MedianElapsed:    time.Duration(int64(median)),
		})
	}
	return rows, nil
}
