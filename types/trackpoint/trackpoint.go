package trackpoint

import (
	"time"

	"github.com/paulmach/orb"
)

// TrackPoint is one recorded GPS fix in a track.
// Points are immutable once parsed. Sequence is the parse order of the
// point within its file and is the track's temporal/spatial order;
// it must never be reshuffled.
// Elevation and Time are optional in the source format. A nil field means
// the file carried no value, which is not the same thing as zero.
type TrackPoint struct {
	Lat       float64    `json:"lat"`
	Lon       float64    `json:"lon"`
	Elevation *float64   `json:"elevation,omitempty"`
	Time      *time.Time `json:"time,omitempty"`
	Sequence  int        `json:"sequence"`
}

// Point returns the point's geometry in orb's lon/lat order.
func (tp TrackPoint) Point() orb.Point {
	return orb.Point{tp.Lon, tp.Lat}
}

func (tp TrackPoint) HasElevation() bool {
	return tp.Elevation != nil
}

func (tp TrackPoint) HasTime() bool {
	return tp.Time != nil
}

// Segment is an ephemeral consecutive-point pair with its great-circle
// length. Segments are derived on demand by the analyzers and never
// persisted.
type Segment struct {
	A, B   TrackPoint
	Meters float64
}

// Duration returns the time spanned by the segment.
// Reports false unless both endpoints carry timestamps.
func (s Segment) Duration() (time.Duration, bool) {
	if !s.A.HasTime() || !s.B.HasTime() {
		return 0, false
	}
	return s.B.Time.Sub(*s.A.Time), true
}

// SpeedKMH returns the mean speed over the segment in km/h.
// Reports false without timestamps or over a non-positive duration.
func (s Segment) SpeedKMH() (float64, bool) {
	d, ok := s.Duration()
	if !ok || d <= 0 {
		return 0, false
	}
	return (s.Meters / 1000.0) / d.Hours(), true
}

// ElevationDelta returns B's elevation minus A's.
// Reports false unless both endpoints carry elevation.
func (s Segment) ElevationDelta() (float64, bool) {
	if !s.A.HasElevation() || !s.B.HasElevation() {
		return 0, false
	}
	return *s.B.Elevation - *s.A.Elevation, true
}
