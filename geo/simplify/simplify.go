// Package simplify reduces track point density for rendering with the
// Douglas-Peucker algorithm. Simplification is a display optimization
// only; route statistics are always computed on the full-resolution
// track.
package simplify

import (
	"github.com/paulmach/orb/planar"
	"github.com/tourlog/trackd/params"
	"github.com/tourlog/trackd/types/trackpoint"
)

// DouglasPeucker simplifies the ordered point sequence with the given
// epsilon tolerance, in decimal degrees.
//
// The recursive formulation runs on an explicit work-stack of index
// ranges: near-collinear tracks of 5-10k points would otherwise drive
// recursion depth to O(n) and can blow the call stack. Expected cost is
// O(n log n), worst case O(n^2) on already-simplified input; track data
// is not adversarial, so no mitigation is attempted.
//
// epsilon=0 is the identity and returns every original point. The first
// and last points are retained for any epsilon.
func DouglasPeucker(points []trackpoint.TrackPoint, epsilon float64) trackpoint.SimplifiedTrack {
	n := len(points)
	if n <= 2 || epsilon <= 0 {
		return trackpoint.SimplifiedTrack{
			Points:        append([]trackpoint.TrackPoint(nil), points...),
			OriginalCount: n,
		}
	}

	keep := make([]bool, n)
	keep[0], keep[n-1] = true, true

	type span struct{ start, end int }
	stack := make([]span, 0, 64)
	stack = append(stack, span{0, n - 1})

	for len(stack) > 0 {
		rng := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if rng.end-rng.start < 2 {
			continue
		}

		a := points[rng.start].Point()
		b := points[rng.end].Point()

		maxDist, maxIdx := 0.0, rng.start
		for i := rng.start + 1; i < rng.end; i++ {
			d := planar.DistanceFromSegment(a, b, points[i].Point())
			if d > maxDist {
				maxDist, maxIdx = d, i
			}
		}

		// Everything in the range lies within epsilon of the chord:
		// collapse it to its endpoints.
		if maxDist <= epsilon {
			continue
		}

		keep[maxIdx] = true
		stack = append(stack, span{rng.start, maxIdx}, span{maxIdx, rng.end})
	}

	kept := make([]trackpoint.TrackPoint, 0, n)
	for i, k := range keep {
		if k {
			kept = append(kept, points[i])
		}
	}
	return trackpoint.SimplifiedTrack{Points: kept, OriginalCount: n}
}

// Default simplifies with the default rendering threshold.
func Default(points []trackpoint.TrackPoint) trackpoint.SimplifiedTrack {
	return DouglasPeucker(points, params.DefaultSimplificationConfig.DouglasPeuckerThreshold)
}
