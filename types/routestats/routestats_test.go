package routestats

import (
	"encoding/json"
	"testing"

	"github.com/tidwall/gjson"
)

func TestUnavailableFieldsOmitFromJSON(t *testing.T) {
	rs := RouteStatistics{
		TotalDistanceKM: 12.5,
		StopSegments:    []StopSegment{},
	}
	encoded, err := json.Marshal(rs)
	if err != nil {
		t.Fatal(err)
	}

	if got := gjson.GetBytes(encoded, "total_distance_km").Float(); got != 12.5 {
		t.Errorf("total_distance_km %v", got)
	}
	for _, field := range []string{
		"elevation_gain_m", "elevation_loss_m", "max_elevation_m",
		"min_elevation_m", "avg_gradient_percent", "total_stop_time_min",
	} {
		if gjson.GetBytes(encoded, field).Exists() {
			t.Errorf("unavailable %s must not encode", field)
		}
	}
}

func TestZeroIsNotUnavailable(t *testing.T) {
	// A flat route has 0 m gain; that is a real value and must encode.
	rs := RouteStatistics{
		ElevationGainM: Float64(0),
		ElevationLossM: Float64(0),
	}
	encoded, err := json.Marshal(rs)
	if err != nil {
		t.Fatal(err)
	}
	gain := gjson.GetBytes(encoded, "elevation_gain_m")
	if !gain.Exists() || gain.Float() != 0 {
		t.Errorf("flat route gain should encode as 0: %s", encoded)
	}
	if !rs.ElevationAvailable() {
		t.Error("gain present, ElevationAvailable false")
	}
	if rs.StopsAvailable() {
		t.Error("no stop data, StopsAvailable true")
	}
}

func TestStopSegmentFields(t *testing.T) {
	rs := RouteStatistics{
		TotalStopTimeMin: Float64(5),
		StopSegments: []StopSegment{
			{StartSequence: 10, EndSequence: 11, DurationMin: 5, AvgSpeedKMH: 0.2},
		},
	}
	encoded, err := json.Marshal(rs)
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(encoded, "stop_segments.0.start_sequence").Int(); got != 10 {
		t.Errorf("start_sequence %d", got)
	}
	if got := gjson.GetBytes(encoded, "stop_segments.0.duration_min").Float(); got != 5 {
		t.Errorf("duration_min %v", got)
	}
}
