package geometry

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidInput reports a builder input outside its contract
var ErrInvalidInput = errors.New("invalid geometry input")

// Command identifies the kind of a path segment
type Command uint8

const (
	CmdMoveTo Command = iota
	CmdLineTo
	CmdCubeTo
	CmdArcTo
	CmdClose
)

// Arc is a circular arc segment. Center and angles are kept alongside the
// SVG flags so the arc can be flattened without endpoint reconstruction.
type Arc struct {
	Center vec.Vec2
	Radius float64
	Start  float64 // screen angle in radians (x right, y down)
	Delta  float64 // signed sweep in radians, positive is clockwise on screen
	Large  bool    // SVG large-arc flag
}

// Sweep reports the SVG sweep flag
func (a Arc) Sweep() bool {
	return a.Delta > 0
}

// Segment is one drawing command. Points holds control points followed by
// the end point; it is empty for CmdClose.
type Segment struct {
	Cmd    Command
	Points []vec.Vec2
	Arc    *Arc
}

// Path is an SVG path under construction
type Path struct {
	segs []Segment
}

// NewPath returns an empty path
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at p
func (p *Path) MoveTo(pt vec.Vec2) *Path {
	p.segs = append(p.segs, Segment{Cmd: CmdMoveTo, Points: []vec.Vec2{pt}})
	return p
}

// LineTo adds a straight segment
func (p *Path) LineTo(pt vec.Vec2) *Path {
	p.segs = append(p.segs, Segment{Cmd: CmdLineTo, Points: []vec.Vec2{pt}})
	return p
}

// CubeTo adds a cubic Bezier segment
func (p *Path) CubeTo(c1, c2, pt vec.Vec2) *Path {
	p.segs = append(p.segs, Segment{Cmd: CmdCubeTo, Points: []vec.Vec2{c1, c2, pt}})
	return p
}

// ArcTo adds a circular arc ending at pt
func (p *Path) ArcTo(a Arc, pt vec.Vec2) *Path {
	arc := a
	p.segs = append(p.segs, Segment{Cmd: CmdArcTo, Points: []vec.Vec2{pt}, Arc: &arc})
	return p
}

// Close closes the current subpath
func (p *Path) Close() *Path {
	p.segs = append(p.segs, Segment{Cmd: CmdClose})
	return p
}

// Segments returns the recorded segments
func (p *Path) Segments() []Segment {
	return p.segs
}

// Len returns the number of segments
func (p *Path) Len() int {
	return len(p.segs)
}

// Translate returns a copy of the path shifted by (dx, dy)
func (p *Path) Translate(dx, dy float64) *Path {
	out := &Path{segs: make([]Segment, len(p.segs))}
	for i, s := range p.segs {
		pts := make([]vec.Vec2, len(s.Points))
		for j, pt := range s.Points {
			pts[j] = vec.Vec2{X: pt.X + dx, Y: pt.Y + dy}
		}
		seg := Segment{Cmd: s.Cmd, Points: pts}
		if s.Arc != nil {
			arc := *s.Arc
			arc.Center = vec.Vec2{X: arc.Center.X + dx, Y: arc.Center.Y + dy}
			seg.Arc = &arc
		}
		out.segs[i] = seg
	}
	return out
}

// String encodes the path as an SVG "d" attribute
func (p *Path) String() string {
	var b strings.Builder
	for i, s := range p.segs {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s.Cmd {
		case CmdMoveTo:
			b.WriteString("M")
			writePoint(&b, s.Points[0])
		case CmdLineTo:
			b.WriteString("L")
			writePoint(&b, s.Points[0])
		case CmdCubeTo:
			b.WriteString("C")
			writePoint(&b, s.Points[0])
			b.WriteByte(' ')
			writePoint(&b, s.Points[1])
			b.WriteByte(' ')
			writePoint(&b, s.Points[2])
		case CmdArcTo:
			r := Num(s.Arc.Radius)
			b.WriteString("A")
			b.WriteString(r + " " + r + " 0 " + flag(s.Arc.Large) + " " + flag(s.Arc.Sweep()) + " ")
			writePoint(&b, s.Points[0])
		case CmdClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// Flatten converts the path to a seehuhn path, approximating arcs by cubic
// Bezier curves of at most a quarter turn each.
func (p *Path) Flatten() *path.Data {
	out := &path.Data{}
	for _, s := range p.segs {
		switch s.Cmd {
		case CmdMoveTo:
			out = out.MoveTo(s.Points[0])
		case CmdLineTo:
			out = out.LineTo(s.Points[0])
		case CmdCubeTo:
			out = out.CubeTo(s.Points[0], s.Points[1], s.Points[2])
		case CmdArcTo:
			for _, c := range arcToCubics(*s.Arc) {
				out = out.CubeTo(c[0], c[1], c[2])
			}
		case CmdClose:
			out = out.Close()
		}
	}
	return out
}

func arcToCubics(a Arc) [][3]vec.Vec2 {
	if a.Delta == 0 {
		return nil
	}
	n := int(math.Ceil(math.Abs(a.Delta)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	step := a.Delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	res := make([][3]vec.Vec2, 0, n)
	theta := a.Start
	for i := 0; i < n; i++ {
		next := theta + step
		sin0, cos0 := math.Sincos(theta)
		sin1, cos1 := math.Sincos(next)
		p0 := vec.Vec2{X: a.Center.X + a.Radius*cos0, Y: a.Center.Y + a.Radius*sin0}
		p3 := vec.Vec2{X: a.Center.X + a.Radius*cos1, Y: a.Center.Y + a.Radius*sin1}
		p1 := vec.Vec2{X: p0.X - k*a.Radius*sin0, Y: p0.Y + k*a.Radius*cos0}
		p2 := vec.Vec2{X: p3.X + k*a.Radius*sin1, Y: p3.Y - k*a.Radius*cos1}
		res = append(res, [3]vec.Vec2{p1, p2, p3})
		theta = next
	}
	return res
}

// Num formats a coordinate with at most two decimals
func Num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writePoint(b *strings.Builder, pt vec.Vec2) {
	b.WriteString(Num(pt.X))
	b.WriteByte(',')
	b.WriteString(Num(pt.Y))
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
