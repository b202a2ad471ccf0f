package chart

import (
	"fmt"
	"strconv"

	"github.com/jengzang/sendnow-backend-go/internal/geometry"
	"github.com/jengzang/sendnow-backend-go/internal/models"
	"seehuhn.de/go/geom/vec"
)

const (
	heatmapWidth  = 800
	heatmapHeight = 450

	colorBrand      = "#7C5832"
	colorBrandLight = "#D4C5B4"
	colorPanel      = "#F8F6F3"
	colorMuted      = "#666666"
	colorInk        = "#333333"
)

// Heatmap is the click heatmap over a page preview
type Heatmap struct {
	Page     string                `json:"page"`
	Hotspots []models.HotspotPoint `json:"hotspots"`
}

// Kind implements View
func (Heatmap) Kind() Kind { return KindHeatmap }

// Validate implements View
func (h Heatmap) Validate() error {
	if len(h.Hotspots) == 0 {
		return fmt.Errorf("%w: heatmap has no hotspots", geometry.ErrInvalidInput)
	}
	for i, p := range h.Hotspots {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("hotspot %d: %w", i, err)
		}
	}
	return nil
}

func init() {
	Register(KindHeatmap, decodeJSON[Heatmap](), renderHeatmap)
}

func renderHeatmap(v View, opts Options) (*Scene, error) {
	h, err := viewAs[Heatmap](v)
	if err != nil {
		return nil, err
	}

	scene := NewScene(KindHeatmap, heatmapWidth, heatmapHeight)
	scene.Background = colorPanel
	for _, band := range opts.Intensity.Bands() {
		scene.AddGradient(Gradient{
			ID:     band.Gradient,
			Radial: true,
			Stops: []GradientStop{
				{Offset: 0, Color: band.Color, Opacity: band.Opacity},
				{Offset: 1, Color: band.Color, Opacity: 0},
			},
		})
	}

	if h.Page != "" {
		scene.Section("page", opts.Observer).Add(
			Label(h.Page, vec.Vec2{X: 20, Y: 24}, 14, colorInk, "start").Emphasised(),
		)
	}

	blobs := scene.Section("hotspots", opts.Observer)
	badges := scene.Section("badges", opts.Observer)
	for _, p := range h.Hotspots {
		c := vec.Vec2{X: p.X / 100 * heatmapWidth, Y: p.Y / 100 * heatmapHeight}
		r := geometry.HotspotRadius(p.Intensity)
		band := opts.Intensity.Bucket(p.Intensity)
		blobs.Add(GradientShape(geometry.Circle(c, r), band.Gradient, 1))

		at := vec.Vec2{X: c.X + r*0.7, Y: c.Y - r*0.7}
		badges.Add(
			FillShape(geometry.Circle(at, 10), colorBrand),
			Label(strconv.Itoa(p.BadgeCount()), at, 10, "#FFFFFF", "middle").Emphasised(),
		)
	}
	return scene, nil
}
