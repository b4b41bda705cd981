package trackpoint

import (
	"testing"
	"time"
)

func mkTime(min int) *time.Time {
	t := time.Date(2024, 6, 1, 8, min, 0, 0, time.UTC)
	return &t
}

func mkFloat(v float64) *float64 {
	return &v
}

func TestPointOrbOrder(t *testing.T) {
	tp := TrackPoint{Lat: 45.0, Lon: 9.0}
	p := tp.Point()
	if p.Lon() != 9.0 || p.Lat() != 45.0 {
		t.Errorf("lon/lat order wrong: %v", p)
	}
}

func TestSegmentDuration(t *testing.T) {
	seg := Segment{
		A: TrackPoint{Time: mkTime(0)},
		B: TrackPoint{Time: mkTime(5)},
	}
	d, ok := seg.Duration()
	if !ok || d != 5*time.Minute {
		t.Errorf("got %v %v", d, ok)
	}

	seg.B.Time = nil
	if _, ok := seg.Duration(); ok {
		t.Error("duration without both timestamps")
	}
}

func TestSegmentSpeed(t *testing.T) {
	seg := Segment{
		A:      TrackPoint{Time: mkTime(0)},
		B:      TrackPoint{Time: mkTime(6)},
		Meters: 1000,
	}
	// 1 km in 6 minutes is 10 km/h.
	speed, ok := seg.SpeedKMH()
	if !ok || speed != 10 {
		t.Errorf("got %v %v", speed, ok)
	}

	// Zero duration carries no speed information.
	seg.B.Time = seg.A.Time
	if _, ok := seg.SpeedKMH(); ok {
		t.Error("speed over zero duration")
	}
}

func TestSegmentElevationDelta(t *testing.T) {
	seg := Segment{
		A: TrackPoint{Elevation: mkFloat(100)},
		B: TrackPoint{Elevation: mkFloat(75)},
	}
	delta, ok := seg.ElevationDelta()
	if !ok || delta != -25 {
		t.Errorf("got %v %v", delta, ok)
	}

	seg.A.Elevation = nil
	if _, ok := seg.ElevationDelta(); ok {
		t.Error("delta without both elevations")
	}
}

func TestSimplifiedTrackFeature(t *testing.T) {
	st := SimplifiedTrack{
		Points: []TrackPoint{
			{Lat: 45, Lon: 9, Sequence: 0},
			{Lat: 45.1, Lon: 9.1, Sequence: 7},
		},
		OriginalCount: 8,
	}
	f := st.Feature()
	if f.Properties["RawPointCount"] != 8 {
		t.Errorf("RawPointCount %v", f.Properties["RawPointCount"])
	}
	if f.Properties["SimplifiedPointCount"] != 2 {
		t.Errorf("SimplifiedPointCount %v", f.Properties["SimplifiedPointCount"])
	}
	ls := st.LineString()
	if len(ls) != 2 || ls[0].Lat() != 45 || ls[1].Lon() != 9.1 {
		t.Errorf("linestring %v", ls)
	}
}
