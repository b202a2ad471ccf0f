// Package raster renders chart scenes to PNG previews. Only filled shapes are
// drawn; text and strokes are left to the SVG output.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/jengzang/sendnow-backend-go/internal/chart"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ContentType is the media type of Encode output
const ContentType = "image/png"

// MaxSide bounds either dimension of a preview
const MaxSide = 4096

// Encode rasterizes the scene at width x height pixels and writes it as PNG.
// A zero size falls back to the scene's intrinsic size.
func Encode(w io.Writer, s *chart.Scene, width, height int) error {
	img, err := Render(s, width, height)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Render rasterizes the scene into a new RGBA image
func Render(s *chart.Scene, width, height int) (*image.RGBA, error) {
	if width == 0 {
		width = int(math.Round(s.Width))
	}
	if height == 0 {
		height = int(math.Round(s.Height))
	}
	if width <= 0 || height <= 0 || width > MaxSide || height > MaxSide {
		return nil, fmt.Errorf("preview size %dx%d outside 1..%d", width, height, MaxSide)
	}
	if s.ViewBox.Width <= 0 || s.ViewBox.Height <= 0 {
		return nil, fmt.Errorf("scene has empty view box")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := color.Color(color.White)
	if s.Background != "" {
		c, err := parseColor(s.Background, 1)
		if err != nil {
			return nil, err
		}
		bg = c
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	t := transform{
		dx: -s.ViewBox.X,
		dy: -s.ViewBox.Y,
		sx: float64(width) / s.ViewBox.Width,
		sy: float64(height) / s.ViewBox.Height,
	}

	for _, sec := range s.Sections {
		for _, n := range sec.Nodes {
			if n.Type != chart.NodeShape || n.Path == nil {
				continue
			}
			opacity := sec.Opacity(n)
			if opacity <= 0 {
				continue
			}
			paint, ok, err := fillColor(s, n, opacity)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			fill(img, n.Path.Flatten(), t, paint)
		}
	}
	return img, nil
}

type transform struct {
	dx, dy float64
	sx, sy float64
}

func (t transform) apply(p vec.Vec2) (float32, float32) {
	return float32((p.X + t.dx) * t.sx), float32((p.Y + t.dy) * t.sy)
}

// fill draws one flattened outline with the non-zero winding rule
func fill(dst *image.RGBA, d *path.Data, t transform, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	i := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			x, y := t.apply(d.Coords[i])
			z.MoveTo(x, y)
			i++
		case path.CmdLineTo:
			x, y := t.apply(d.Coords[i])
			z.LineTo(x, y)
			i++
		case path.CmdQuadTo:
			bx, by := t.apply(d.Coords[i])
			cx, cy := t.apply(d.Coords[i+1])
			z.QuadTo(bx, by, cx, cy)
			i += 2
		case path.CmdCubeTo:
			bx, by := t.apply(d.Coords[i])
			cx, cy := t.apply(d.Coords[i+1])
			ex, ey := t.apply(d.Coords[i+2])
			z.CubeTo(bx, by, cx, cy, ex, ey)
			i += 3
		case path.CmdClose:
			z.ClosePath()
		}
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// fillColor resolves a node's paint. Gradients are approximated by their
// first stop. ok is false for unfilled shapes.
func fillColor(s *chart.Scene, n chart.Node, opacity float64) (color.Color, bool, error) {
	if n.Gradient != "" {
		g, found := s.FindGradient(n.Gradient)
		if !found || len(g.Stops) == 0 {
			return nil, false, fmt.Errorf("unknown gradient %q", n.Gradient)
		}
		c, err := parseColor(g.Stops[0].Color, opacity*g.Stops[0].Opacity)
		return c, err == nil, err
	}
	if n.Fill == "" || strings.EqualFold(n.Fill, "none") {
		return nil, false, nil
	}
	c, err := parseColor(n.Fill, opacity)
	return c, err == nil, err
}

func parseColor(hex string, alpha float64) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	a := math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}, nil
}
