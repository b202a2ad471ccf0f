package geometry

import (
	"fmt"
	"math"

	"github.com/jengzang/sendnow-backend-go/internal/stats"
	"seehuhn.de/go/geom/vec"
)

// Sector describes an annular sector. Angles are in degrees with 0 at the
// top of the circle, increasing clockwise.
type Sector struct {
	Center vec.Vec2
	Inner  float64
	Outer  float64
	Start  float64
	End    float64
}

// SliceAngles is the angular extent of one slice of a pie
type SliceAngles struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Share float64 `json:"share"`
}

// ArcPath builds the closed outline of an annular sector: inner start, outer
// start, outer arc clockwise, inner end, inner arc back counter-clockwise.
// A sweep of 360 or more is drawn as a full ring; see fullRing.
func ArcPath(s Sector) (*Path, error) {
	if !finite(s.Start, s.End, s.Inner, s.Outer, s.Center.X, s.Center.Y) {
		return nil, fmt.Errorf("%w: non-finite sector", ErrInvalidInput)
	}
	if s.End < s.Start {
		return nil, fmt.Errorf("%w: sector end %.2f before start %.2f", ErrInvalidInput, s.End, s.Start)
	}
	if s.Inner < 0 || s.Outer <= 0 || s.Inner > s.Outer {
		return nil, fmt.Errorf("%w: radii inner=%.2f outer=%.2f", ErrInvalidInput, s.Inner, s.Outer)
	}

	start, end := s.Start, s.End
	if end-start >= 360 {
		return fullRing(s.Center, s.Inner, s.Outer, start), nil
	}
	sweep := end - start
	large := sweep > 180

	innerStart := Polar(s.Center, s.Inner, start)
	outerStart := Polar(s.Center, s.Outer, start)
	outerEnd := Polar(s.Center, s.Outer, end)
	innerEnd := Polar(s.Center, s.Inner, end)

	p := NewPath().
		MoveTo(innerStart).
		LineTo(outerStart).
		ArcTo(Arc{Center: s.Center, Radius: s.Outer, Start: screenAngle(start), Delta: radians(sweep), Large: large}, outerEnd).
		LineTo(innerEnd).
		ArcTo(Arc{Center: s.Center, Radius: s.Inner, Start: screenAngle(end), Delta: -radians(sweep), Large: large}, innerStart).
		Close()
	return p, nil
}

// fullRing draws a whole annulus starting at angle start. An SVG arc whose
// end point equals its start point draws nothing, so each ring is split into
// two half-circle arcs the way Circle does. The outer ring runs clockwise and
// the inner ring counter-clockwise so the hole stays unfilled under the
// nonzero rule. With inner 0 the inner ring is a point and is skipped.
func fullRing(c vec.Vec2, inner, outer, start float64) *Path {
	mid := start + 180
	innerStart := Polar(c, inner, start)
	outerStart := Polar(c, outer, start)

	p := NewPath().
		MoveTo(innerStart).
		LineTo(outerStart).
		ArcTo(Arc{Center: c, Radius: outer, Start: screenAngle(start), Delta: math.Pi, Large: true}, Polar(c, outer, mid)).
		ArcTo(Arc{Center: c, Radius: outer, Start: screenAngle(mid), Delta: math.Pi, Large: true}, outerStart).
		LineTo(innerStart)
	if inner > 0 {
		p.ArcTo(Arc{Center: c, Radius: inner, Start: screenAngle(start), Delta: -math.Pi, Large: true}, Polar(c, inner, mid)).
			ArcTo(Arc{Center: c, Radius: inner, Start: screenAngle(mid), Delta: -math.Pi, Large: true}, innerStart)
	}
	return p.Close()
}

// Slices converts values into contiguous angle ranges proportional to each
// value's share of the total. The last slice always ends at exactly 360.
func Slices(values []float64) ([]SliceAngles, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no slices", ErrInvalidInput)
	}

	for i, v := range values {
		if !finite(v) || v < 0 {
			return nil, fmt.Errorf("%w: slice %d has value %v", ErrInvalidInput, i, v)
		}
	}
	if stats.Sum(values) == 0 {
		return nil, fmt.Errorf("%w: slices sum to zero", ErrInvalidInput)
	}

	res := make([]SliceAngles, len(values))
	current := 0.0
	for i, share := range stats.Shares(values) {
		res[i] = SliceAngles{Start: current, End: current + share*360, Share: share}
		current = res[i].End
	}
	res[len(res)-1].End = 360
	return res, nil
}

// LabelPosition returns the point halfway between the radii at the middle
// of the sector's angular range.
func LabelPosition(center vec.Vec2, inner, outer, start, end float64) vec.Vec2 {
	return Polar(center, inner+(outer-inner)/2, (start+end)/2)
}

// Circle builds a circle from two half arcs
func Circle(center vec.Vec2, r float64) *Path {
	top := Polar(center, r, 0)
	bottom := Polar(center, r, 180)
	return NewPath().
		MoveTo(top).
		ArcTo(Arc{Center: center, Radius: r, Start: screenAngle(0), Delta: math.Pi}, bottom).
		ArcTo(Arc{Center: center, Radius: r, Start: screenAngle(180), Delta: math.Pi}, top).
		Close()
}

// Rect builds an axis-aligned rectangle
func Rect(x, y, w, h float64) *Path {
	return NewPath().
		MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()
}

// Polar returns the point at distance r from center, at a clock angle in
// degrees (0 at the top, clockwise).
func Polar(center vec.Vec2, r, deg float64) vec.Vec2 {
	sin, cos := math.Sincos(screenAngle(deg))
	return vec.Vec2{X: center.X + r*cos, Y: center.Y + r*sin}
}

func screenAngle(deg float64) float64 {
	return radians(deg - 90)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
