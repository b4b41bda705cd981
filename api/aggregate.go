package api

import (
	"context"

	"github.com/tourlog/trackd/geo/distance"
	"github.com/tourlog/trackd/geo/elevation"
	"github.com/tourlog/trackd/geo/stopdetector"
	"github.com/tourlog/trackd/params"
	"github.com/tourlog/trackd/types/routestats"
	"github.com/tourlog/trackd/types/trackpoint"
)

// Aggregate assembles one RouteStatistics from the full-resolution point
// sequence. Per-field unavailability (nil) is the only partial-failure
// tolerance: missing elevation or timestamps are facts about the data,
// not errors.
func (e *Engine) Aggregate(ctx context.Context, points []trackpoint.TrackPoint) routestats.RouteStatistics {
	totalM := distance.Total(points)
	stats := routestats.RouteStatistics{
		TotalDistanceKM: totalM / 1000.0,
		StopSegments:    []routestats.StopSegment{},
	}

	if profile := elevation.Analyze(points); profile != nil {
		stats.ElevationGainM = routestats.Float64(profile.GainM)
		stats.ElevationLossM = routestats.Float64(profile.LossM)
		stats.MaxElevationM = routestats.Float64(profile.MaxM)
		stats.MinElevationM = routestats.Float64(profile.MinM)
		stats.AvgGradientPercent = profile.GradientPercent(totalM)
	}

	detector := stopdetector.NewDetector(&params.StopDetectorConfig{
		SpeedThresholdKMH: e.config.SpeedThresholdKMH,
		MinStopDuration:   e.config.MinStopDuration,
	})
	if res := detector.Detect(ctx, points); res != nil {
		stats.TotalStopTimeMin = routestats.Float64(res.TotalStopTime.Minutes())
		stats.StopSegments = res.Stops
	}
	return stats
}
