package chart

import (
	"fmt"

	"github.com/jengzang/sendnow-backend-go/internal/geometry"
	"github.com/jengzang/sendnow-backend-go/internal/models"
	"github.com/jengzang/sendnow-backend-go/internal/stats"
	"seehuhn.de/go/geom/vec"
)

const (
	timeSpentDefaultHeight = 300
	timeSpentWidth         = 600
	// the line chart's view box is 100 units wide
	timeSpentUnits = 100
)

// TimeSpent is the average time on page line chart
type TimeSpent struct {
	Points []models.DataPoint `json:"points"`
	Height float64            `json:"height,omitempty"` // Pixel height, labels included
}

// Kind implements View
func (TimeSpent) Kind() Kind { return KindTimeSpent }

// Validate implements View
func (t TimeSpent) Validate() error {
	if len(t.Points) == 0 {
		return fmt.Errorf("%w: time spent chart has no points", geometry.ErrInvalidInput)
	}
	if t.Height != 0 && t.Height <= 50 {
		return fmt.Errorf("%w: chart height %v leaves no plot area", geometry.ErrInvalidInput, t.Height)
	}
	for i, p := range t.Points {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}
	return nil
}

func (t TimeSpent) plotHeight() float64 {
	h := t.Height
	if h == 0 {
		h = timeSpentDefaultHeight
	}
	return h - 50
}

func init() {
	Register(KindTimeSpent, decodeJSON[TimeSpent](), renderTimeSpent)
}

func renderTimeSpent(v View, opts Options) (*Scene, error) {
	t, err := viewAs[TimeSpent](v)
	if err != nil {
		return nil, err
	}

	h := t.plotHeight()
	values := make([]float64, len(t.Points))
	for i, p := range t.Points {
		values[i] = p.Value
	}

	area, err := geometry.Area(values, timeSpentUnits, h)
	if err != nil {
		return nil, err
	}
	line, err := geometry.Curve(values, timeSpentUnits, h)
	if err != nil {
		return nil, err
	}
	pts, err := geometry.CurvePoints(values, timeSpentUnits, h)
	if err != nil {
		return nil, err
	}

	scene := NewScene(KindTimeSpent, timeSpentWidth, h)
	scene.ViewBox = ViewBox{Width: timeSpentUnits, Height: h}
	scene.AddGradient(Gradient{
		ID: "time-spent-fill",
		Stops: []GradientStop{
			{Offset: 0, Color: colorBrand, Opacity: 0.6},
			{Offset: 1, Color: colorBrand, Opacity: 0.1},
		},
	})

	axis := scene.Section("axis", opts.Observer)
	for i, tick := range stats.AxisTicks(stats.Max(values)) {
		y := h * float64(i) / 4
		grid := StrokeShape(geometry.NewPath().
			MoveTo(vec.Vec2{X: 0, Y: y}).
			LineTo(vec.Vec2{X: timeSpentUnits, Y: y}), "#E5E7EB", 0.3)
		grid.Dashed = true
		axis.Add(grid, Label(geometry.Num(tick), vec.Vec2{X: 0.5, Y: y + 3}, 4, "#6B7280", "start"))
	}

	sec := scene.Section("line", opts.Observer)
	sec.Add(
		GradientShape(area, "time-spent-fill", 1),
		StrokeShape(line, colorBrand, 2),
	)
	for i, p := range t.Points {
		sec.Add(FillShape(geometry.Circle(pts[i], 3), "#FFFFFF").WithStroke(colorBrand, 2))
		if p.Annotation != "" {
			sec.Add(
				FillShape(geometry.Circle(pts[i], 6), colorBrand),
				Label(p.Annotation, vec.Vec2{X: pts[i].X, Y: pts[i].Y - 10}, 4, colorBrand, "middle"),
			)
		}
	}
	return scene, nil
}
