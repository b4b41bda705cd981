package trackpoint

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// SimplifiedTrack is an order-preserving strict subsequence of an original
// track, reduced for rendering. The first and last original points are
// always retained. Points keep their original Sequence values so a
// simplified vertex can be traced back to the full-resolution track.
type SimplifiedTrack struct {
	Points []TrackPoint

	// OriginalCount is the point count of the track this was derived from.
	OriginalCount int
}

func (st SimplifiedTrack) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(st.Points))
	for _, p := range st.Points {
		ls = append(ls, p.Point())
	}
	return ls
}

// Feature exports the simplified line as a GeoJSON feature with the
// point-count properties rendering clients expect.
func (st SimplifiedTrack) Feature() *geojson.Feature {
	f := geojson.NewFeature(st.LineString())
	f.Properties["RawPointCount"] = st.OriginalCount
	f.Properties["SimplifiedPointCount"] = len(st.Points)
	return f
}
