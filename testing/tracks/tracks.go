// Package tracks builds synthetic tracks and GPX documents for tests.
package tracks

import (
	"fmt"
	"strings"
	"time"

	"github.com/tourlog/trackd/types/trackpoint"
)

// Straight returns n points on a straight west-to-east line at latitude
// 45, stepping 0.001 degrees of longitude (~79 m) per point.
func Straight(n int) []trackpoint.TrackPoint {
	points := make([]trackpoint.TrackPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, trackpoint.TrackPoint{
			Lat:      45.0,
			Lon:      9.0 + 0.001*float64(i),
			Sequence: i,
		})
	}
	return points
}

// Zigzag returns n points alternating 0.01 degrees of latitude around
// 45, so every interior point is far off the endpoints' chord.
func Zigzag(n int) []trackpoint.TrackPoint {
	points := Straight(n)
	for i := range points {
		if i%2 == 1 {
			points[i].Lat += 0.01
		}
	}
	return points
}

// WithElevations sets elevations index-by-index. Shorter slices leave
// the remaining points bare.
func WithElevations(points []trackpoint.TrackPoint, elevations ...float64) []trackpoint.TrackPoint {
	for i := range elevations {
		if i >= len(points) {
			break
		}
		e := elevations[i]
		points[i].Elevation = &e
	}
	return points
}

// WithTimestamps stamps every point, starting at start and advancing by
// step per point.
func WithTimestamps(points []trackpoint.TrackPoint, start time.Time, step time.Duration) []trackpoint.TrackPoint {
	for i := range points {
		t := start.Add(time.Duration(i) * step)
		points[i].Time = &t
	}
	return points
}

// MarshalGPX11 renders points as a GPX 1.1 document, round-trippable
// through the parser.
func MarshalGPX11(points []trackpoint.TrackPoint) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<gpx version="1.1" creator="trackd-test" xmlns="http://www.topografix.com/GPX/1/1">` + "\n")
	b.WriteString("<trk><trkseg>\n")
	for _, p := range points {
		fmt.Fprintf(&b, `<trkpt lat="%v" lon="%v">`, p.Lat, p.Lon)
		if p.Elevation != nil {
			fmt.Fprintf(&b, "<ele>%v</ele>", *p.Elevation)
		}
		if p.Time != nil {
			fmt.Fprintf(&b, "<time>%s</time>", p.Time.UTC().Format(time.RFC3339))
		}
		b.WriteString("</trkpt>\n")
	}
	b.WriteString("</trkseg></trk>\n</gpx>\n")
	return []byte(b.String())
}
