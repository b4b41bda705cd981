// Package routestats defines the aggregated result value of a track
// analysis. Nil pointer fields are the tri-state "unavailable": a route
// with no elevation data reports nil gain, not 0 m gain, so callers can
// tell a flat route from a silent one.
package routestats

type RouteStatistics struct {
	TotalDistanceKM    float64       `json:"total_distance_km"`
	ElevationGainM     *float64      `json:"elevation_gain_m,omitempty"`
	ElevationLossM     *float64      `json:"elevation_loss_m,omitempty"`
	MaxElevationM      *float64      `json:"max_elevation_m,omitempty"`
	MinElevationM      *float64      `json:"min_elevation_m,omitempty"`
	AvgGradientPercent *float64      `json:"avg_gradient_percent,omitempty"`
	TotalStopTimeMin   *float64      `json:"total_stop_time_min,omitempty"`
	StopSegments       []StopSegment `json:"stop_segments"`
}

// StopSegment traces a detected stop back to the original track by the
// sequence numbers of its bounding points.
type StopSegment struct {
	StartSequence int     `json:"start_sequence"`
	EndSequence   int     `json:"end_sequence"`
	DurationMin   float64 `json:"duration_min"`
	AvgSpeedKMH   float64 `json:"avg_speed_kmh"`
}

func (rs RouteStatistics) ElevationAvailable() bool {
	return rs.ElevationGainM != nil
}

func (rs RouteStatistics) StopsAvailable() bool {
	return rs.TotalStopTimeMin != nil
}

// Float64 returns a pointer to v, for filling optional fields.
func Float64(v float64) *float64 {
	return &v
}
