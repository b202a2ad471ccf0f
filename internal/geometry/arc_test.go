package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var center = vec.Vec2{X: 140, Y: 140}

func arcSegments(t *testing.T, p *Path) []Segment {
	t.Helper()
	var arcs []Segment
	for _, s := range p.Segments() {
		if s.Cmd == CmdArcTo {
			arcs = append(arcs, s)
		}
	}
	require.Len(t, arcs, 2)
	return arcs
}

func TestArcPath_CommandOrder(t *testing.T) {
	p, err := ArcPath(Sector{Center: center, Inner: 84, Outer: 140, Start: 0, End: 90})
	require.NoError(t, err)

	var cmds []Command
	for _, s := range p.Segments() {
		cmds = append(cmds, s.Cmd)
	}
	assert.Equal(t, []Command{CmdMoveTo, CmdLineTo, CmdArcTo, CmdLineTo, CmdArcTo, CmdClose}, cmds)

	// 0 degrees is the top of the circle, 90 is the right-hand side
	segs := p.Segments()
	assert.InDelta(t, 140, segs[0].Points[0].X, 1e-9)
	assert.InDelta(t, 56, segs[0].Points[0].Y, 1e-9)
	assert.InDelta(t, 0, segs[1].Points[0].Y, 1e-9)
	assert.InDelta(t, 280, segs[2].Points[0].X, 1e-9)
	assert.InDelta(t, 140, segs[2].Points[0].Y, 1e-9)

	arcs := arcSegments(t, p)
	assert.True(t, arcs[0].Arc.Sweep(), "outer arc runs clockwise")
	assert.False(t, arcs[1].Arc.Sweep(), "inner arc returns counter-clockwise")

	assert.Equal(t, "M140,56 L140,0 A140 140 0 0 1 280,140 L224,140 A84 84 0 0 0 140,56 Z", p.String())
}

func TestArcPath_LargeArcFlag(t *testing.T) {
	cases := []struct {
		start, end float64
	}{
		{0, 1}, {0, 90}, {0, 179.99}, {0, 180}, {10, 190}, {0, 180.01},
		{45, 300}, {0, 270}, {100, 360}, {0, 359}, {0, 360}, {359, 360},
	}
	for _, tc := range cases {
		p, err := ArcPath(Sector{Center: center, Inner: 50, Outer: 100, Start: tc.start, End: tc.end})
		require.NoError(t, err)
		want := tc.end-tc.start > 180
		for _, s := range arcSegments(t, p) {
			assert.Equal(t, want, s.Arc.Large, "start=%v end=%v", tc.start, tc.end)
		}
	}
}

func TestArcPath_FullCircleDoesNotDegenerate(t *testing.T) {
	c := vec.Vec2{X: 50, Y: 50}
	for _, r := range []float64{10, 25, 40, 140} {
		for _, inner := range []float64{0, r / 2} {
			p, err := ArcPath(Sector{Center: c, Inner: inner, Outer: r, Start: 0, End: 360})
			require.NoError(t, err)

			arcs := 0
			var at vec.Vec2
			for _, s := range p.Segments() {
				if s.Cmd == CmdClose {
					continue
				}
				end := s.Points[len(s.Points)-1]
				if s.Cmd == CmdArcTo {
					arcs++
					from := Num(at.X) + "," + Num(at.Y)
					to := Num(end.X) + "," + Num(end.Y)
					assert.NotEqual(t, from, to, "r=%v inner=%v: arc ends where it starts", r, inner)
					assert.True(t, s.Arc.Large)
				}
				at = end
			}
			if inner > 0 {
				assert.Equal(t, 4, arcs, "r=%v", r)
			} else {
				assert.Equal(t, 2, arcs, "r=%v", r)
			}
			assert.Contains(t, p.String(), "A"+Num(r)+" "+Num(r)+" 0 1 1")
		}
	}
}

func TestArcPath_FullCircleEncoding(t *testing.T) {
	p, err := ArcPath(Sector{Center: vec.Vec2{X: 50, Y: 50}, Inner: 5, Outer: 10, Start: 0, End: 360})
	require.NoError(t, err)
	assert.Equal(t, "M50,45 L50,40 A10 10 0 1 1 50,60 A10 10 0 1 1 50,40 L50,45 A5 5 0 1 0 50,55 A5 5 0 1 0 50,45 Z", p.String())
}

func TestArcPath_Invalid(t *testing.T) {
	cases := map[string]Sector{
		"end before start": {Center: center, Inner: 10, Outer: 20, Start: 90, End: 45},
		"inner > outer":    {Center: center, Inner: 30, Outer: 20, Start: 0, End: 45},
		"negative inner":   {Center: center, Inner: -1, Outer: 20, Start: 0, End: 45},
		"zero outer":       {Center: center, Inner: 0, Outer: 0, Start: 0, End: 45},
		"nan angle":        {Center: center, Inner: 0, Outer: 20, Start: math.NaN(), End: 45},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ArcPath(s)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestArcPath_PieWedge(t *testing.T) {
	p, err := ArcPath(Sector{Center: center, Inner: 0, Outer: 100, Start: 0, End: 120})
	require.NoError(t, err)
	assert.Equal(t, center, p.Segments()[0].Points[0])
}

func TestSlices(t *testing.T) {
	slices, err := Slices([]float64{68, 24, 8})
	require.NoError(t, err)
	require.Len(t, slices, 3)

	assert.Equal(t, 0.0, slices[0].Start)
	for i := 1; i < len(slices); i++ {
		assert.Equal(t, slices[i-1].End, slices[i].Start)
	}
	assert.Equal(t, 360.0, slices[2].End)
	assert.InDelta(t, 244.8, slices[0].End, 1e-9)
	assert.InDelta(t, 0.08, slices[2].Share, 1e-9)
}

func TestSlices_Invalid(t *testing.T) {
	for _, values := range [][]float64{nil, {0, 0}, {1, -1}, {math.Inf(1)}} {
		_, err := Slices(values)
		assert.ErrorIs(t, err, ErrInvalidInput, "%v", values)
	}
}

func TestLabelPosition(t *testing.T) {
	pos := LabelPosition(center, 84, 140, 0, 180)
	assert.InDelta(t, 140+112, pos.X, 1e-9)
	assert.InDelta(t, 140, pos.Y, 1e-9)
}

func TestCircle(t *testing.T) {
	p := Circle(vec.Vec2{X: 10, Y: 10}, 5)
	assert.Equal(t, "M10,5 A5 5 0 0 1 10,15 A5 5 0 0 1 10,5 Z", p.String())
}

func TestFlatten_ArcBecomesCubics(t *testing.T) {
	p, err := ArcPath(Sector{Center: center, Inner: 50, Outer: 100, Start: 0, End: 270})
	require.NoError(t, err)

	data := p.Flatten()
	cubes := 0
	for _, c := range data.Cmds {
		if c == path.CmdCubeTo {
			cubes++
		}
	}
	// three quarter turns on each radius
	assert.Equal(t, 6, cubes)

	// the last flattened point returns to the inner start
	last := data.Coords[len(data.Coords)-1]
	first := data.Coords[0]
	assert.InDelta(t, first.X, last.X, 1e-9)
	assert.InDelta(t, first.Y, last.Y, 1e-9)
}

func TestArcToCubics_EndpointsOnCircle(t *testing.T) {
	a := Arc{Center: center, Radius: 100, Start: screenAngle(30), Delta: radians(200)}
	cubics := arcToCubics(a)
	require.Len(t, cubics, 3)
	for _, c := range cubics {
		assert.InDelta(t, 100, math.Hypot(c[2].X-center.X, c[2].Y-center.Y), 1e-9)
	}
	end := Polar(center, 100, 230)
	assert.InDelta(t, end.X, cubics[2][2].X, 1e-9)
	assert.InDelta(t, end.Y, cubics[2][2].Y, 1e-9)
}
