// Package geo supplies the small slice of geometry math the traversal
// core needs: a coordinate/line-string type backed by paulmach/orb, the
// azimuth-to-"brad" encoding used for StreetEdge entry/exit angles, and
// a compact on-the-wire line string representation.
package geo

import (
	"math"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Coord is a (lon, lat) pair. It is a type alias for orb.Point so every
// orb helper (distance, bearing-adjacent math) works on it directly.
type Coord = orb.Point

// LineString is an ordered run of Coords describing a street segment's
// geometry.
type LineString = orb.LineString

func NewLineString(coords []Coord) LineString {
	ls := make(orb.LineString, len(coords))
	copy(ls, coords)
	return ls
}

// CompactLineString is the fixed-point-encoded wire form of a
// LineString: each coordinate stored as micro-degree integers, matching
// StreetEdge's "compactGeometry: handle" field (see spec.md §3). It is
// deliberately not a []byte blob so callers can inspect point count
// without decoding.
type CompactLineString []int32

const microDegree = 1e6

// EncodeCompact packs a LineString into micro-degree fixed point pairs
// (lon0, lat0, lon1, lat1, ...).
func EncodeCompact(ls LineString) CompactLineString {
	out := make(CompactLineString, 0, len(ls)*2)
	for _, pt := range ls {
		out = append(out, int32(math.Round(pt[0]*microDegree)), int32(math.Round(pt[1]*microDegree)))
	}
	return out
}

// DecodeCompact reverses EncodeCompact.
func DecodeCompact(c CompactLineString) LineString {
	ls := make(orb.LineString, 0, len(c)/2)
	for i := 0; i+1 < len(c); i += 2 {
		ls = append(ls, orb.Point{float64(c[i]) / microDegree, float64(c[i+1]) / microDegree})
	}
	return ls
}

// Azimuth returns the initial bearing in radians, in (-pi, pi], from
// "from" pointing at "to", measured clockwise from north. Grounded on
// DirectionUtils.getFirstAngle/getLastAngle in the original source.
func Azimuth(from, to Coord) float64 {
	lat1 := from[1] * math.Pi / 180
	lat2 := to[1] * math.Pi / 180
	dLon := (to[0] - from[0]) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return math.Atan2(y, x)
}

// FirstAngle/LastAngle mirror the Java helper names used against a
// LineString's start/end segments when StreetEdge computes its in/out
// angles.
func FirstAngle(ls LineString) (float64, bool) {
	if len(ls) < 2 {
		return 0, false
	}
	return Azimuth(ls[0], ls[1]), true
}
func LastAngle(ls LineString) (float64, bool) {
	if len(ls) < 2 {
		return 0, false
	}
	n := len(ls)
	return Azimuth(ls[n-2], ls[n-1]), true
}

// ToBrad encodes a radian azimuth as a signed byte, 256 units to a full
// turn ("brads"). The +128 offset overflows the signed byte, so the
// stored value is the azimuth rotated by half a turn (0 radians becomes
// -128); this is preserved per spec.md §9 to keep the encoding
// byte-identical to the original.
func ToBrad(radians float64) int8 {
	v := int32(math.Round(radians*128/math.Pi)) + 128
	return int8(v)
}

// FromBrad converts a brad byte to integer degrees (b*180/128, truncated
// toward zero). Applied to ToBrad's output it gives the original azimuth
// shifted by 180 degrees, in [-180, 180).
func FromBrad(b int8) int {
	return int(b) * 180 / 128
}

// Length returns a LineString's great-circle length in meters, the
// haversine sum over its segments (used by osmimport to derive
// StreetEdge.LengthMillimeters from a way's node chain).
func Length(ls LineString) float64 {
	return orbgeo.LengthHaversign(ls)
}

// ToFeature renders a LineString as a GeoJSON feature for diagnostic
// export, the way the teacher's NewRoutingResponse builds geo.Feature
// values for its HTTP responses.
func ToFeature(ls LineString, props map[string]any) *geojson.Feature {
	coords := make([][]float64, len(ls))
	for i, pt := range ls {
		coords[i] = []float64{pt[0], pt[1]}
	}
	f := geojson.NewLineStringFeature(coords)
	for k, v := range props {
		f.SetProperty(k, v)
	}
	return f
}
