package chart

import (
	"fmt"
	"strings"

	"github.com/jengzang/sendnow-backend-go/internal/geometry"
	"github.com/jengzang/sendnow-backend-go/internal/models"
	"seehuhn.de/go/geom/vec"
)

const (
	overviewWidth  = 900
	overviewHeight = 460

	cardHeight = 80
	cardGap    = 16

	// sessions chart frame, in its own 300x100 units
	sessionsWidth  = 300
	sessionsHeight = 100
	trafficWidth   = 480
	trafficHeight  = 240
)

// Overview is the dashboard landing tab: stat cards, a sessions chart and
// a small traffic map
type Overview struct {
	Stats    []models.StatCard    `json:"stats"`
	Sessions []models.DataPoint   `json:"sessions"`
	Traffic  []models.GeoLocation `json:"traffic"`
}

// Kind implements View
func (Overview) Kind() Kind { return KindOverview }

// Validate implements View
func (o Overview) Validate() error {
	if len(o.Stats) == 0 {
		return fmt.Errorf("%w: overview has no stat cards", geometry.ErrInvalidInput)
	}
	for i, s := range o.Stats {
		if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.Value) == "" {
			return fmt.Errorf("%w: stat card %d needs title and value", geometry.ErrInvalidInput, i)
		}
	}
	if len(o.Sessions) == 0 {
		return fmt.Errorf("%w: overview has no session samples", geometry.ErrInvalidInput)
	}
	for i, p := range o.Sessions {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("session %d: %w", i, err)
		}
	}
	return validateLocations(o.Traffic)
}

func init() {
	Register(KindOverview, decodeJSON[Overview](), renderOverview)
}

func renderOverview(v View, opts Options) (*Scene, error) {
	o, err := viewAs[Overview](v)
	if err != nil {
		return nil, err
	}

	scene := NewScene(KindOverview, overviewWidth, overviewHeight)
	scene.AddGradient(Gradient{
		ID: "sessions-fill",
		Stops: []GradientStop{
			{Offset: 0, Color: colorBrand, Opacity: 0.4},
			{Offset: 1, Color: colorBrand, Opacity: 0},
		},
	})

	cards := scene.Section("stats", opts.Observer)
	cardWidth := (overviewWidth - cardGap*float64(len(o.Stats)-1)) / float64(len(o.Stats))
	for i, s := range o.Stats {
		x := float64(i) * (cardWidth + cardGap)
		cards.Add(
			FillShape(geometry.Rect(x, 0, cardWidth, cardHeight), colorPanel),
			Label(s.Title, vec.Vec2{X: x + 16, Y: 26}, 12, colorMuted, "start"),
			Label(s.Value, vec.Vec2{X: x + 16, Y: 56}, 22, colorInk, "start").Emphasised(),
		)
	}

	values := make([]float64, len(o.Sessions))
	for i, p := range o.Sessions {
		values[i] = p.Value
	}
	area, err := geometry.Area(values, sessionsWidth, sessionsHeight)
	if err != nil {
		return nil, err
	}
	line, err := geometry.Curve(values, sessionsWidth, sessionsHeight)
	if err != nil {
		return nil, err
	}

	// sessions chart sits in a 300x100 frame below the cards
	top := float64(cardHeight + 40)
	sessions := scene.Section("sessions", opts.Observer)
	sessions.Add(
		Label("Sessions", vec.Vec2{X: 0, Y: top - 16}, 14, colorInk, "start").Emphasised(),
		GradientShape(area.Translate(0, top), "sessions-fill", 1),
		StrokeShape(line.Translate(0, top), colorBrand, 2),
	)
	last := o.Sessions[len(o.Sessions)-1]
	sessions.Add(
		Label(o.Sessions[0].Label, vec.Vec2{X: 0, Y: top + sessionsHeight + 14}, 10, colorMuted, "start"),
		Label(last.Label, vec.Vec2{X: sessionsWidth, Y: top + sessionsHeight + 14}, 10, colorMuted, "end"),
	)

	origin := vec.Vec2{X: overviewWidth - trafficWidth, Y: top}
	traffic := scene.Section("traffic", opts.Observer)
	traffic.Add(
		Label("Traffic by location", vec.Vec2{X: origin.X, Y: top - 16}, 14, colorInk, "start").Emphasised(),
		FillShape(geometry.Rect(origin.X, origin.Y, trafficWidth, trafficHeight), "#F8F8F8"),
	)
	drawGraticule(traffic, origin, trafficWidth, trafficHeight)

	small := geometry.MarkerScale{Min: opts.Markers.Min / 2, Max: opts.Markers.Max / 2}
	drawMarkers(traffic, o.Traffic, small, origin, trafficWidth, trafficHeight, false)
	return scene, nil
}
