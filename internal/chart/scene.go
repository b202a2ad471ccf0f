package chart

import (
	"github.com/jengzang/sendnow-backend-go/internal/geometry"
	"seehuhn.de/go/geom/vec"
)

// NodeType distinguishes drawable shapes from text labels
type NodeType string

const (
	NodeShape NodeType = "shape"
	NodeText  NodeType = "text"
)

// ViewBox is the user coordinate system of a scene
type ViewBox struct {
	X, Y          float64
	Width, Height float64
}

// GradientStop is one colour stop
type GradientStop struct {
	Offset  float64 // 0..1
	Color   string
	Opacity float64
}

// Gradient is a reusable paint server referenced by id
type Gradient struct {
	ID     string
	Radial bool // radial from the centre, otherwise linear top to bottom
	Stops  []GradientStop
}

// Node is a resolved, render-ready scene element
type Node struct {
	Type NodeType

	// Shape data
	Path        *geometry.Path
	Fill        string // colour, or empty for none
	Gradient    string // gradient id; overrides Fill in SVG output
	Stroke      string
	StrokeWidth float64
	Dashed      bool

	// Text data
	Text     string
	At       vec.Vec2
	FontSize float64
	Anchor   string // start, middle, end
	Bold     bool

	Opacity float64
}

// Section is a group of nodes revealed together
type Section struct {
	Name  string
	State ViewState
	Nodes []Node
}

// Scene is the output of a chart renderer
type Scene struct {
	Kind       Kind
	Width      float64 // intrinsic output size
	Height     float64
	ViewBox    ViewBox
	Background string
	Gradients  []Gradient
	Sections   []*Section
}

// NewScene creates a scene whose view box matches its output size
func NewScene(kind Kind, width, height float64) *Scene {
	return &Scene{
		Kind:    kind,
		Width:   width,
		Height:  height,
		ViewBox: ViewBox{Width: width, Height: height},
	}
}

// AddGradient registers a gradient unless one with the same id exists
func (s *Scene) AddGradient(g Gradient) {
	for _, existing := range s.Gradients {
		if existing.ID == g.ID {
			return
		}
	}
	s.Gradients = append(s.Gradients, g)
}

// Section returns the named section, creating it with the observer's state
func (s *Scene) Section(name string, obs VisibilityObserver) *Section {
	for _, sec := range s.Sections {
		if sec.Name == name {
			return sec
		}
	}
	sec := &Section{Name: name, State: obs.State(name)}
	s.Sections = append(s.Sections, sec)
	return sec
}

// FindGradient looks up a gradient by id
func (s *Scene) FindGradient(id string) (Gradient, bool) {
	for _, g := range s.Gradients {
		if g.ID == id {
			return g, true
		}
	}
	return Gradient{}, false
}

// Add appends nodes to the section
func (sec *Section) Add(nodes ...Node) {
	sec.Nodes = append(sec.Nodes, nodes...)
}

// Opacity is the node opacity after applying the section state
func (sec *Section) Opacity(n Node) float64 {
	if sec.State == Pending {
		return 0
	}
	return n.Opacity
}

// FillShape is an opaque filled shape
func FillShape(p *geometry.Path, fill string) Node {
	return Node{Type: NodeShape, Path: p, Fill: fill, Opacity: 1}
}

// GradientShape is a shape painted with a gradient
func GradientShape(p *geometry.Path, gradient string, opacity float64) Node {
	return Node{Type: NodeShape, Path: p, Gradient: gradient, Opacity: opacity}
}

// StrokeShape is an unfilled outline
func StrokeShape(p *geometry.Path, stroke string, width float64) Node {
	return Node{Type: NodeShape, Path: p, Stroke: stroke, StrokeWidth: width, Opacity: 1}
}

// Label is a text node
func Label(text string, at vec.Vec2, size float64, fill, anchor string) Node {
	return Node{Type: NodeText, Text: text, At: at, FontSize: size, Fill: fill, Anchor: anchor, Opacity: 1}
}

// WithOpacity returns a copy of n with the given opacity
func (n Node) WithOpacity(o float64) Node {
	n.Opacity = o
	return n
}

// WithStroke returns a copy of n outlined in colour
func (n Node) WithStroke(stroke string, width float64) Node {
	n.Stroke = stroke
	n.StrokeWidth = width
	return n
}

// Emphasised returns a bold copy of a text node
func (n Node) Emphasised() Node {
	n.Bold = true
	return n
}
