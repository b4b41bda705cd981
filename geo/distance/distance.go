// Package distance computes great-circle distances between track points.
//
// Haversine with a spherical Earth is used everywhere, in float64, so
// cumulative error stays bounded over thousands of summed segments.
// No planar or small-angle shortcuts: point spacing in real tracks ranges
// from meters to kilometers, and latitude compresses longitude distance
// non-linearly.
package distance

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/tourlog/trackd/types/trackpoint"
)

// EarthRadiusM is the mean Earth radius in meters.
const EarthRadiusM = 6371000.0

// Haversine returns the great-circle distance between two points in meters.
// Points are in orb's lon/lat order, decimal degrees.
func Haversine(a, b orb.Point) float64 {
	phi1 := a.Lat() * math.Pi / 180
	phi2 := b.Lat() * math.Pi / 180
	dPhi := (b.Lat() - a.Lat()) * math.Pi / 180
	dLambda := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusM * c
}

// Total returns the length of the track in meters, summed over
// consecutive pairs. Appending points never decreases the total.
func Total(points []trackpoint.TrackPoint) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Haversine(points[i-1].Point(), points[i].Point())
	}
	return total
}

// SegmentBetween derives the ephemeral segment value for a consecutive
// pair, with its great-circle length filled in.
func SegmentBetween(a, b trackpoint.TrackPoint) trackpoint.Segment {
	return trackpoint.Segment{
		A:      a,
		B:      b,
		Meters: Haversine(a.Point(), b.Point()),
	}
}
