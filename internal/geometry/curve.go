package geometry

import (
	"fmt"

	"github.com/jengzang/sendnow-backend-go/internal/stats"
	"seehuhn.de/go/geom/vec"
)

// CurvePoints places samples evenly across width, scaled so the largest
// value touches the top of the chart. A non-positive maximum is treated as 1.
func CurvePoints(values []float64, width, height float64) ([]vec.Vec2, error) {
	return CurvePointsWithin(values, width, height, stats.Max(values))
}

// CurvePointsWithin is CurvePoints against a fixed top-of-chart value, for
// series with an absolute scale such as percentages.
func CurvePointsWithin(values []float64, width, height, maxValue float64) ([]vec.Vec2, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: curve needs at least one sample", ErrInvalidInput)
	}
	if !finite(width, height) || width < 0 || height <= 0 {
		return nil, fmt.Errorf("%w: curve area %vx%v", ErrInvalidInput, width, height)
	}
	for i, v := range values {
		if !finite(v) {
			return nil, fmt.Errorf("%w: sample %d is %v", ErrInvalidInput, i, v)
		}
	}

	if !finite(maxValue) || maxValue <= 0 {
		maxValue = 1
	}

	var step float64
	if len(values) > 1 {
		step = width / float64(len(values)-1)
	}

	pts := make([]vec.Vec2, len(values))
	for i, v := range values {
		pts[i] = vec.Vec2{
			X: float64(i) * step,
			Y: height - v/maxValue*height,
		}
	}
	return pts, nil
}

// Curve builds a smoothed line through the samples. Each segment is a cubic
// Bezier with control points at one and two thirds of the horizontal step,
// the first held at the previous sample's height and the second at the
// current one. A single sample yields a lone move command.
func Curve(values []float64, width, height float64) (*Path, error) {
	pts, err := CurvePoints(values, width, height)
	if err != nil {
		return nil, err
	}
	return Smooth(pts), nil
}

// Area builds the curve closed down to the baseline, for filled charts
func Area(values []float64, width, height float64) (*Path, error) {
	pts, err := CurvePoints(values, width, height)
	if err != nil {
		return nil, err
	}
	return Smooth(pts).
		LineTo(vec.Vec2{X: width, Y: height}).
		LineTo(vec.Vec2{X: 0, Y: height}).
		Close(), nil
}

// Smooth joins pts with the one-third / two-thirds cubic segments of Curve.
// pts must not be empty.
func Smooth(pts []vec.Vec2) *Path {
	p := NewPath().MoveTo(pts[0])
	for i := 1; i < len(pts); i++ {
		prev, cur := pts[i-1], pts[i]
		third := (cur.X - prev.X) / 3
		p.CubeTo(
			vec.Vec2{X: prev.X + third, Y: prev.Y},
			vec.Vec2{X: cur.X - third, Y: cur.Y},
			cur,
		)
	}
	return p
}
