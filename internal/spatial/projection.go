package spatial

import (
	"github.com/golang/geo/s2"
)

// Point is a position on the map plane in percent of the canvas
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Project maps latitude/longitude onto a 0..100 percent plane using an
// equirectangular projection: longitude spreads linearly across x and
// latitude runs top (90) to bottom (-90) along y. Out-of-range input is not
// rejected and simply lands off the canvas.
func Project(lat, lng float64) Point {
	return Point{
		X: (lng + 180) / 360 * 100,
		Y: (90 - lat) / 180 * 100,
	}
}

// ToCanvas scales a percent position onto a canvas of the given size
func (p Point) ToCanvas(width, height float64) (float64, float64) {
	return p.X / 100 * width, p.Y / 100 * height
}

// ValidLocation reports whether lat/lng lie within [-90,90] x [-180,180]
func ValidLocation(lat, lng float64) bool {
	return s2.LatLngFromDegrees(lat, lng).IsValid()
}
