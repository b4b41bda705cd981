// Package gpx decodes GPS-exchange XML track files into ordered point
// sequences. Both common schema versions (1.0 and 1.1) are accepted; the
// variant is selected once from the document's version attribute through
// a parse function table, not by type dispatch.
package gpx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"github.com/tourlog/trackd/types/trackpoint"
)

var (
	// ErrInvalidFormat rejects documents that are not well-formed XML or
	// lack the trk>trkseg>trkpt structure with lat/lon attributes.
	ErrInvalidFormat = errors.New("invalid track file format")

	// ErrEmptyTrack rejects structurally valid documents with zero points.
	ErrEmptyTrack = errors.New("track contains no points")

	// ErrInvalidCoordinate rejects latitudes outside [-90,90] or
	// longitudes outside [-180,180].
	ErrInvalidCoordinate = errors.New("coordinate out of range")
)

type schemaVersion string

const (
	schemaV10 schemaVersion = "1.0"
	schemaV11 schemaVersion = "1.1"
)

type parseFunc func(data []byte) ([]rawPoint, error)

// parsers is the version dispatch table. One probe of the root version
// attribute selects the variant for the whole document.
var parsers = map[schemaVersion]parseFunc{
	schemaV10: parseV10,
	schemaV11: parseV11,
}

// rawPoint is a decoded trkpt before validation. Lat/Lon are pointers so
// a missing attribute is distinguishable from a zero coordinate.
type rawPoint struct {
	Lat  *float64 `xml:"lat,attr"`
	Lon  *float64 `xml:"lon,attr"`
	Ele  *float64 `xml:"ele"`
	Time string   `xml:"time"`
}

// trackDocument is the trk>trkseg>trkpt skeleton shared by both schema
// versions. Version-specific handling belongs in the variant parse funcs,
// which both flatten to this shape today.
type trackDocument struct {
	XMLName xml.Name `xml:"gpx"`
	Tracks  []struct {
		Segments []struct {
			Points []rawPoint `xml:"trkpt"`
		} `xml:"trkseg"`
	} `xml:"trk"`
}

func parseV10(data []byte) ([]rawPoint, error) {
	return decodeTrackDocument(data)
}

func parseV11(data []byte) ([]rawPoint, error) {
	return decodeTrackDocument(data)
}

func decodeTrackDocument(data []byte) ([]rawPoint, error) {
	var doc trackDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(doc.Tracks) == 0 {
		return nil, fmt.Errorf("%w: no trk element", ErrInvalidFormat)
	}
	var points []rawPoint
	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			points = append(points, seg.Points...)
		}
	}
	return points, nil
}

// Parse decodes raw file bytes into an ordered, non-empty point sequence.
// Pure transformation; the input bytes are never modified.
func Parse(data []byte) ([]trackpoint.TrackPoint, error) {
	var probe struct {
		XMLName xml.Name `xml:"gpx"`
		Version string   `xml:"version,attr"`
	}
	if err := xml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	parse, ok := parsers[schemaVersion(probe.Version)]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported gpx version %q", ErrInvalidFormat, probe.Version)
	}

	raws, err := parse(data)
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, ErrEmptyTrack
	}

	points := make([]trackpoint.TrackPoint, 0, len(raws))
	for i, raw := range raws {
		tp, err := validatePoint(raw, i)
		if err != nil {
			return nil, err
		}
		points = append(points, tp)
	}
	return points, nil
}

func validatePoint(raw rawPoint, seq int) (trackpoint.TrackPoint, error) {
	if raw.Lat == nil || raw.Lon == nil {
		return trackpoint.TrackPoint{}, fmt.Errorf(
			"%w: trkpt %d missing lat/lon attribute", ErrInvalidFormat, seq)
	}
	lat, lon := *raw.Lat, *raw.Lon
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return trackpoint.TrackPoint{}, fmt.Errorf(
			"%w: trkpt %d (%v, %v)", ErrInvalidCoordinate, seq, lat, lon)
	}

	tp := trackpoint.TrackPoint{
		Lat:       lat,
		Lon:       lon,
		Elevation: raw.Ele,
		Sequence:  seq,
	}
	if raw.Time != "" {
		t, err := time.Parse(time.RFC3339, raw.Time)
		if err != nil {
			return trackpoint.TrackPoint{}, fmt.Errorf(
				"%w: trkpt %d bad time %q", ErrInvalidFormat, seq, raw.Time)
		}
		tp.Time = &t
	}
	return tp, nil
}
