// SPDX-License-Identifier: MIT

package contour

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// MultiLineString converts polylines into one XY geometry. Closed polylines
// repeat their first point at the end so the ring is explicit.
func MultiLineString(lines []Polyline) (*geom.MultiLineString, error) {
	mls := geom.NewMultiLineString(geom.XY)
	for i, pl := range lines {
		n := len(pl.Points)
		if pl.Closed && n > 0 {
			n++
		}
		flat := make([]float64, 0, 2*n)
		for _, p := range pl.Points {
			flat = append(flat, p.X, p.Y)
		}
		if pl.Closed && len(pl.Points) > 0 {
			flat = append(flat, pl.Points[0].X, pl.Points[0].Y)
		}
		if err := mls.Push(geom.NewLineStringFlat(geom.XY, flat)); err != nil {
			return nil, errors.Wrapf(err, "polyline %d", i)
		}
	}
	return mls, nil
}

// MarshalWKT encodes polylines as a WKT MULTILINESTRING. A negative
// maxDecimalDigits keeps full precision.
func MarshalWKT(lines []Polyline, maxDecimalDigits int) (string, error) {
	mls, err := MultiLineString(lines)
	if err != nil {
		return "", err
	}
	s, err := wkt.Marshal(mls, wkt.EncodeOptionWithMaxDecimalDigits(maxDecimalDigits))
	if err != nil {
		return "", errors.Wrap(err, "contour: encode wkt")
	}
	return s, nil
}

// Feature wraps polylines extracted at one level as a GeoJSON feature whose
// properties carry the level and any extra entries from props.
func Feature(level float64, lines []Polyline, props map[string]interface{}) (*geojson.Feature, error) {
	mls, err := MultiLineString(lines)
	if err != nil {
		return nil, err
	}
	properties := make(map[string]interface{}, len(props)+1)
	for k, v := range props {
		properties[k] = v
	}
	properties["level"] = level
	return &geojson.Feature{Geometry: mls, Properties: properties}, nil
}
