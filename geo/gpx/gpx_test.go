package gpx

import (
	"errors"
	"testing"
)

const fixtureV11 = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
<trk><trkseg>
<trkpt lat="46.0" lon="8.0"><ele>1200.5</ele><time>2024-06-01T08:00:00Z</time></trkpt>
<trkpt lat="46.001" lon="8.001"><ele>1210.0</ele><time>2024-06-01T08:01:00Z</time></trkpt>
<trkpt lat="46.002" lon="8.002"></trkpt>
</trkseg></trk>
</gpx>`

const fixtureV10 = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.0" creator="test" xmlns="http://www.topografix.com/GPX/1/0">
<trk><trkseg>
<trkpt lat="46.0" lon="8.0"></trkpt>
<trkpt lat="46.001" lon="8.001"><ele>900</ele></trkpt>
</trkseg></trk>
</gpx>`

func TestParseV11(t *testing.T) {
	points, err := Parse([]byte(fixtureV11))
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	for i, p := range points {
		if p.Sequence != i {
			t.Errorf("point %d: sequence %d", i, p.Sequence)
		}
	}
	if !points[0].HasElevation() || *points[0].Elevation != 1200.5 {
		t.Errorf("point 0 elevation: %+v", points[0].Elevation)
	}
	if !points[0].HasTime() {
		t.Error("point 0 missing time")
	}
	if points[2].HasElevation() || points[2].HasTime() {
		t.Error("point 2 should carry neither elevation nor time")
	}
}

func TestParseV10(t *testing.T) {
	points, err := Parse([]byte(fixtureV10))
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].HasElevation() {
		t.Error("point 0 should not carry elevation")
	}
	if !points[1].HasElevation() || *points[1].Elevation != 900 {
		t.Errorf("point 1 elevation: %+v", points[1].Elevation)
	}
}

func TestParseMultipleSegmentsConcatenate(t *testing.T) {
	doc := `<gpx version="1.1"><trk>
<trkseg><trkpt lat="1" lon="1"/><trkpt lat="2" lon="2"/></trkseg>
<trkseg><trkpt lat="3" lon="3"/></trkseg>
</trk></gpx>`
	points, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	if points[2].Sequence != 2 || points[2].Lat != 3 {
		t.Errorf("segment concatenation broke ordering: %+v", points[2])
	}
}

func TestParseNotXML(t *testing.T) {
	_, err := Parse([]byte("not xml"))
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("got %v, want ErrInvalidFormat", err)
	}
}

func TestParseWrongRootElement(t *testing.T) {
	_, err := Parse([]byte(`<kml version="1.1"></kml>`))
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("got %v, want ErrInvalidFormat", err)
	}
}

func TestParseUnsupportedVersion(t *testing.T) {
	_, err := Parse([]byte(`<gpx version="2.0"><trk><trkseg><trkpt lat="1" lon="1"/></trkseg></trk></gpx>`))
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("got %v, want ErrInvalidFormat", err)
	}
}

func TestParseNoTrack(t *testing.T) {
	_, err := Parse([]byte(`<gpx version="1.1"></gpx>`))
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("got %v, want ErrInvalidFormat", err)
	}
}

func TestParseEmptyTrack(t *testing.T) {
	_, err := Parse([]byte(`<gpx version="1.1"><trk><trkseg></trkseg></trk></gpx>`))
	if !errors.Is(err, ErrEmptyTrack) {
		t.Errorf("got %v, want ErrEmptyTrack", err)
	}
}

func TestParseMissingCoordinateAttr(t *testing.T) {
	_, err := Parse([]byte(`<gpx version="1.1"><trk><trkseg><trkpt lat="1"/></trkseg></trk></gpx>`))
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("got %v, want ErrInvalidFormat", err)
	}
}

func TestParseCoordinateOutOfRange(t *testing.T) {
	for _, doc := range []string{
		`<gpx version="1.1"><trk><trkseg><trkpt lat="91" lon="0"/></trkseg></trk></gpx>`,
		`<gpx version="1.1"><trk><trkseg><trkpt lat="0" lon="-181"/></trkseg></trk></gpx>`,
	} {
		_, err := Parse([]byte(doc))
		if !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("got %v, want ErrInvalidCoordinate", err)
		}
	}
}

func TestParseBadTimestamp(t *testing.T) {
	_, err := Parse([]byte(`<gpx version="1.1"><trk><trkseg><trkpt lat="1" lon="1"><time>yesterday</time></trkpt></trkseg></trk></gpx>`))
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("got %v, want ErrInvalidFormat", err)
	}
}

func TestParseDoesNotMutateInput(t *testing.T) {
	data := []byte(fixtureV11)
	orig := append([]byte(nil), data...)
	if _, err := Parse(data); err != nil {
		t.Fatal(err)
	}
	if string(data) != string(orig) {
		t.Error("input bytes mutated")
	}
}
