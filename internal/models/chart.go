package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/biter777/countries"
	"github.com/jengzang/sendnow-backend-go/internal/geometry"
	"github.com/jengzang/sendnow-backend-go/internal/spatial"
	"github.com/lucasb-eyer/go-colorful"
)

// DataPoint is one sample of a line or area chart
type DataPoint struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Annotation string  `json:"annotation,omitempty"` // Tooltip text for highlighted points
}

// DayValue is one bar of the weekly time-per-day chart
type DayValue struct {
	Day     string  `json:"day"`
	Value   float64 `json:"value"` // Minutes
	Highest bool    `json:"highest,omitempty"`
}

// HotspotPoint is a heatmap blob positioned in percent of the page preview
type HotspotPoint struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Intensity float64 `json:"intensity"` // 1-10, 10 is hottest
	Clicks    int     `json:"clicks,omitempty"`
}

// GeoLocation is a visitor origin shown on the map view
type GeoLocation struct {
	Name       string  `json:"name"`
	Country    string  `json:"country"` // ISO 3166-1 alpha-2
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Visitors   int     `json:"visitors"`
	Percentage float64 `json:"percentage"`
}

// PieSlice is one category of the device donut
type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"` // #rrggbb
}

// VideoSegment is a stretch of the video timeline
type VideoSegment struct {
	Start      string  `json:"start"` // MM:SS
	End        string  `json:"end"`   // MM:SS
	Views      int     `json:"views"`
	Engagement float64 `json:"engagement"` // 0-100
	DropOff    bool    `json:"drop_off,omitempty"`
}

// StatCard is a headline metric on the overview tab
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", geometry.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks a line chart sample
func (p DataPoint) Validate() error {
	if strings.TrimSpace(p.Label) == "" {
		return invalid("data point needs a label")
	}
	if !finite(p.Value) || p.Value < 0 {
		return invalid("data point %q has value %v", p.Label, p.Value)
	}
	return nil
}

// Validate checks a bar
func (d DayValue) Validate() error {
	if strings.TrimSpace(d.Day) == "" {
		return invalid("bar needs a day label")
	}
	if !finite(d.Value) || d.Value < 0 {
		return invalid("bar %q has value %v", d.Day, d.Value)
	}
	return nil
}

// Validate checks a hotspot
func (h HotspotPoint) Validate() error {
	if !finite(h.X) || !finite(h.Y) || h.X < 0 || h.X > 100 || h.Y < 0 || h.Y > 100 {
		return invalid("hotspot at %v,%v is outside the preview", h.X, h.Y)
	}
	if !finite(h.Intensity) || h.Intensity < 1 || h.Intensity > 10 {
		return invalid("hotspot intensity %v outside 1..10", h.Intensity)
	}
	if h.Clicks < 0 {
		return invalid("hotspot has negative clicks")
	}
	return nil
}

// BadgeCount is the number shown on a hotspot badge, falling back to an
// estimate from intensity when no click count was recorded.
func (h HotspotPoint) BadgeCount() int {
	if h.Clicks > 0 {
		return h.Clicks
	}
	return int(math.Round(h.Intensity * 3))
}

// Validate checks a map location
func (g GeoLocation) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return invalid("location needs a name")
	}
	if countries.ByName(g.Country) == countries.Unknown {
		return invalid("location %q has unknown country %q", g.Name, g.Country)
	}
	if !spatial.ValidLocation(g.Lat, g.Lng) {
		return invalid("location %q at %v,%v is off the globe", g.Name, g.Lat, g.Lng)
	}
	if g.Visitors < 0 {
		return invalid("location %q has negative visitors", g.Name)
	}
	if !finite(g.Percentage) || g.Percentage < 0 || g.Percentage > 100 {
		return invalid("location %q share %v outside 0..100", g.Name, g.Percentage)
	}
	return nil
}

// CountryName resolves the ISO code to a display name
func (g GeoLocation) CountryName() string {
	return countries.ByName(g.Country).String()
}

// Validate checks a donut slice
func (s PieSlice) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return invalid("slice needs a name")
	}
	if !finite(s.Value) || s.Value < 0 {
		return invalid("slice %q has value %v", s.Name, s.Value)
	}
	if _, err := colorful.Hex(s.Color); err != nil {
		return invalid("slice %q colour %q: %v", s.Name, s.Color, err)
	}
	return nil
}

// Validate checks a video segment
func (v VideoSegment) Validate() error {
	start, err := ParseClock(v.Start)
	if err != nil {
		return err
	}
	end, err := ParseClock(v.End)
	if err != nil {
		return err
	}
	if end < start {
		return invalid("segment %s-%s ends before it starts", v.Start, v.End)
	}
	if v.Views < 0 {
		return invalid("segment %s-%s has negative views", v.Start, v.End)
	}
	if !finite(v.Engagement) || v.Engagement < 0 || v.Engagement > 100 {
		return invalid("segment %s-%s engagement %v outside 0..100", v.Start, v.End, v.Engagement)
	}
	return nil
}

// ParseClock converts "MM:SS" to seconds
func ParseClock(s string) (int, error) {
	mm, ss, ok := strings.Cut(s, ":")
	if !ok {
		return 0, invalid("time %q is not MM:SS", s)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 {
		return 0, invalid("time %q has bad minutes", s)
	}
	seconds, err := strconv.Atoi(ss)
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, invalid("time %q has bad seconds", s)
	}
	return minutes*60 + seconds, nil
}

// FormatClock renders seconds as zero-padded "MM:SS"
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
