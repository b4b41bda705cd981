// Package elevation derives gain/loss/min/max and average gradient from
// the elevation-bearing points of a track.
package elevation

import (
	"github.com/tourlog/trackd/types/trackpoint"
)

// Profile aggregates the elevation-bearing points of one track.
// All values are meters.
type Profile struct {
	GainM float64
	LossM float64
	MinM  float64
	MaxM  float64
}

// Analyze walks consecutive pairs where both points carry elevation,
// accumulating positive deltas as gain and negative deltas as loss, and
// tracks min/max across all elevation-bearing points.
//
// Returns nil when fewer than 2 points carry elevation: the profile is
// unavailable, which is not the same as flat. Callers must preserve the
// distinction.
func Analyze(points []trackpoint.TrackPoint) *Profile {
	bearing := 0
	for _, p := range points {
		if p.HasElevation() {
			bearing++
		}
	}
	if bearing < 2 {
		return nil
	}

	p := &Profile{}
	first := true
	var prev float64
	havePrev := false

	for _, tp := range points {
		if !tp.HasElevation() {
			// A gap in elevation coverage breaks the delta chain; min/max
			// still see every elevation-bearing point.
			havePrev = false
			continue
		}
		ele := *tp.Elevation
		if first {
			p.MinM, p.MaxM = ele, ele
			first = false
		} else {
			if ele < p.MinM {
				p.MinM = ele
			}
			if ele > p.MaxM {
				p.MaxM = ele
			}
		}
		if havePrev {
			delta := ele - prev
			if delta > 0 {
				p.GainM += delta
			} else {
				p.LossM += -delta
			}
		}
		prev, havePrev = ele, true
	}
	return p
}

// GradientPercent returns the route's average gradient, defined as gain
// over horizontal distance. Reports nil for non-positive distance.
func (p *Profile) GradientPercent(totalDistanceM float64) *float64 {
	if p == nil || totalDistanceM <= 0 {
		return nil
	}
	g := p.GainM / totalDistanceM * 100
	return &g
}
