package chart

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/jengzang/sendnow-backend-go/internal/geometry"
)

// SVGContentType is the media type of EncodeSVG output
const SVGContentType = "image/svg+xml"

// EncodeSVG writes the scene as a standalone SVG document
func EncodeSVG(w io.Writer, s *Scene) error {
	var b strings.Builder
	num := geometry.Num

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s" preserveAspectRatio="none" data-kind="%s">`,
		num(s.Width), num(s.Height),
		num(s.ViewBox.X), num(s.ViewBox.Y), num(s.ViewBox.Width), num(s.ViewBox.Height),
		s.Kind)

	if len(s.Gradients) > 0 {
		b.WriteString("<defs>")
		for _, g := range s.Gradients {
			writeGradient(&b, g)
		}
		b.WriteString("</defs>")
	}

	if s.Background != "" {
		fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			num(s.ViewBox.X), num(s.ViewBox.Y), num(s.ViewBox.Width), num(s.ViewBox.Height), attr(s.Background))
	}

	for _, sec := range s.Sections {
		fmt.Fprintf(&b, `<g data-section="%s" data-state="%s">`, attr(sec.Name), sec.State)
		for _, n := range sec.Nodes {
			writeNode(&b, n, sec.Opacity(n))
		}
		b.WriteString("</g>")
	}
	b.WriteString("</svg>")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

func writeGradient(b *strings.Builder, g Gradient) {
	if g.Radial {
		fmt.Fprintf(b, `<radialGradient id="%s" cx="50%%" cy="50%%" r="50%%" fx="50%%" fy="50%%">`, attr(g.ID))
	} else {
		fmt.Fprintf(b, `<linearGradient id="%s" x1="0%%" y1="0%%" x2="0%%" y2="100%%">`, attr(g.ID))
	}
	for _, st := range g.Stops {
		fmt.Fprintf(b, `<stop offset="%s%%" stop-color="%s" stop-opacity="%s"/>`,
			geometry.Num(st.Offset*100), attr(st.Color), geometry.Num(st.Opacity))
	}
	if g.Radial {
		b.WriteString("</radialGradient>")
	} else {
		b.WriteString("</linearGradient>")
	}
}

func writeNode(b *strings.Builder, n Node, opacity float64) {
	switch n.Type {
	case NodeShape:
		fill := "none"
		switch {
		case n.Gradient != "":
			fill = "url(#" + attr(n.Gradient) + ")"
		case n.Fill != "":
			fill = attr(n.Fill)
		}
		fmt.Fprintf(b, `<path d="%s" fill="%s"`, n.Path.String(), fill)
		if n.Stroke != "" {
			fmt.Fprintf(b, ` stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"`,
				attr(n.Stroke), geometry.Num(n.StrokeWidth))
			if n.Dashed {
				b.WriteString(` stroke-dasharray="4 4"`)
			}
		}
		fmt.Fprintf(b, ` opacity="%s"/>`, geometry.Num(opacity))
	case NodeText:
		anchor := n.Anchor
		if anchor == "" {
			anchor = "start"
		}
		fmt.Fprintf(b, `<text x="%s" y="%s" font-size="%s" text-anchor="%s" dominant-baseline="middle" fill="%s"`,
			geometry.Num(n.At.X), geometry.Num(n.At.Y), geometry.Num(n.FontSize), anchor, attr(n.Fill))
		if n.Bold {
			b.WriteString(` font-weight="bold"`)
		}
		fmt.Fprintf(b, ` opacity="%s">`, geometry.Num(opacity))
		_ = xml.EscapeText(b, []byte(n.Text))
		b.WriteString("</text>")
	}
}

func attr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
