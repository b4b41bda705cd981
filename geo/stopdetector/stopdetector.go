// Package stopdetector classifies consecutive-point segments by speed
// and duration to find where a track stood still.
//
// A segment is a stop when it is both slow (below the speed threshold)
// and long (past the minimum duration). Slow and long are also tagged
// independently for diagnostics, but only stops count toward total stop
// time. Detection needs timestamps; a track without them yields an
// unavailable result, not an error.
package stopdetector

import (
	"context"
	"time"

	"github.com/tourlog/trackd/geo/distance"
	"github.com/tourlog/trackd/params"
	"github.com/tourlog/trackd/stream"
	"github.com/tourlog/trackd/types/routestats"
	"github.com/tourlog/trackd/types/trackpoint"
)

// ClassifiedSegment is a timestamped segment with its motion tags.
type ClassifiedSegment struct {
	trackpoint.Segment

	Duration time.Duration
	SpeedKMH float64

	Stop bool
	Slow bool
	Long bool
}

// Result aggregates the stop segments of one track.
type Result struct {
	TotalStopTime time.Duration
	Stops         []routestats.StopSegment
}

// Detector classifies segments against configured thresholds.
type Detector struct {
	SpeedThresholdKMH float64
	MinStopDuration   time.Duration
}

func NewDetector(config *params.StopDetectorConfig) *Detector {
	if config == nil {
		config = params.DefaultStopDetectorConfig
	}
	return &Detector{
		SpeedThresholdKMH: config.SpeedThresholdKMH,
		MinStopDuration:   config.MinStopDuration,
	}
}

// Classify tags one segment. Reports false when either endpoint lacks a
// timestamp or the duration is non-positive; such segments carry no
// motion information.
func (d *Detector) Classify(seg trackpoint.Segment) (ClassifiedSegment, bool) {
	dur, ok := seg.Duration()
	if !ok || dur <= 0 {
		return ClassifiedSegment{}, false
	}
	speed, _ := seg.SpeedKMH()

	cs := ClassifiedSegment{
		Segment:  seg,
		Duration: dur,
		SpeedKMH: speed,
	}
	cs.Slow = speed < d.SpeedThresholdKMH
	cs.Long = dur > d.MinStopDuration
	cs.Stop = cs.Slow && cs.Long
	return cs, true
}

// Segments streams the classifiable consecutive-pair segments of the
// track in order.
func (d *Detector) Segments(ctx context.Context, points []trackpoint.TrackPoint) <-chan ClassifiedSegment {
	out := make(chan ClassifiedSegment)
	go func() {
		defer close(out)
		for i := 1; i < len(points); i++ {
			seg := distance.SegmentBetween(points[i-1], points[i])
			cs, ok := d.Classify(seg)
			if !ok {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case out <- cs:
			}
		}
	}()
	return out
}

// Detect finds the stop segments of a track and sums their durations.
// Returns nil when no consecutive pair carried timestamps: stop
// detection is unavailable for the track, a valid partial result.
func (d *Detector) Detect(ctx context.Context, points []trackpoint.TrackPoint) *Result {
	classified := stream.Collect(ctx, d.Segments(ctx, points))
	if len(classified) == 0 {
		return nil
	}

	stops := stream.Collect(ctx, stream.Filter(ctx,
		func(cs ClassifiedSegment) bool { return cs.Stop },
		stream.Slice(ctx, classified)))

	res := &Result{Stops: make([]routestats.StopSegment, 0, len(stops))}
	for _, cs := range stops {
		res.TotalStopTime += cs.Duration
		res.Stops = append(res.Stops, routestats.StopSegment{
			StartSequence: cs.A.Sequence,
			EndSequence:   cs.B.Sequence,
			DurationMin:   cs.Duration.Minutes(),
			AvgSpeedKMH:   cs.SpeedKMH,
		})
	}
	return res
}
