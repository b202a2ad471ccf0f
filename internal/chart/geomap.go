package chart

import (
	"fmt"
	"sort"

	"github.com/jengzang/sendnow-backend-go/internal/geometry"
	"github.com/jengzang/sendnow-backend-go/internal/models"
	"github.com/jengzang/sendnow-backend-go/internal/spatial"
	"seehuhn.de/go/geom/vec"
)

const (
	mapUnitsWidth  = 1000
	mapUnitsHeight = 500
	// ranked list panel to the right of the map
	mapListWidth = 300

	mapMarkerColor = "#E74C3C"
)

// MapAnalytics is the visitor origin map with its ranked list
type MapAnalytics struct {
	Locations []models.GeoLocation `json:"locations"`
}

// Kind implements View
func (MapAnalytics) Kind() Kind { return KindMap }

// Validate implements View
func (m MapAnalytics) Validate() error {
	return validateLocations(m.Locations)
}

func validateLocations(locs []models.GeoLocation) error {
	if len(locs) == 0 {
		return fmt.Errorf("%w: no locations", geometry.ErrInvalidInput)
	}
	for i, l := range locs {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("location %d: %w", i, err)
		}
	}
	return nil
}

// RankedLocation is one row of the map's list mode
type RankedLocation struct {
	Rank       int     `json:"rank"`
	Name       string  `json:"name"`
	Country    string  `json:"country"`
	Visitors   int     `json:"visitors"`
	Percentage float64 `json:"percentage"`
}

// Ranking orders locations by visitors, most first; ties keep input order
func (m MapAnalytics) Ranking() []RankedLocation {
	locs := make([]models.GeoLocation, len(m.Locations))
	copy(locs, m.Locations)
	sort.SliceStable(locs, func(i, j int) bool { return locs[i].Visitors > locs[j].Visitors })

	res := make([]RankedLocation, len(locs))
	for i, l := range locs {
		res[i] = RankedLocation{
			Rank:       i + 1,
			Name:       l.Name,
			Country:    l.CountryName(),
			Visitors:   l.Visitors,
			Percentage: l.Percentage,
		}
	}
	return res
}

func init() {
	Register(KindMap, decodeJSON[MapAnalytics](), renderMap)
}

func renderMap(v View, opts Options) (*Scene, error) {
	m, err := viewAs[MapAnalytics](v)
	if err != nil {
		return nil, err
	}

	// 800x400 output for the map itself, widened by the list panel
	scene := NewScene(KindMap, (mapUnitsWidth+mapListWidth)*0.8, mapUnitsHeight*0.8)
	scene.ViewBox = ViewBox{Width: mapUnitsWidth + mapListWidth, Height: mapUnitsHeight}

	base := scene.Section("map", opts.Observer)
	base.Add(FillShape(geometry.Rect(0, 0, mapUnitsWidth, mapUnitsHeight), "#F8F8F8"))
	drawGraticule(base, vec.Vec2{}, mapUnitsWidth, mapUnitsHeight)

	drawMarkers(scene.Section("markers", opts.Observer), m.Locations, opts.Markers, vec.Vec2{}, mapUnitsWidth, mapUnitsHeight, true)

	list := scene.Section("list", opts.Observer)
	x := float64(mapUnitsWidth + 20)
	list.Add(Label("Top locations", vec.Vec2{X: x, Y: 30}, 18, colorInk, "start").Emphasised())
	for i, r := range m.Ranking() {
		y := 70 + float64(i)*40
		list.Add(
			Label(fmt.Sprintf("%d. %s, %s", r.Rank, r.Name, r.Country), vec.Vec2{X: x, Y: y}, 14, colorInk, "start"),
			Label(fmt.Sprintf("%d visitors (%s%%)", r.Visitors, geometry.Num(r.Percentage)), vec.Vec2{X: x, Y: y + 16}, 12, colorMuted, "start"),
		)
	}
	return scene, nil
}

// drawGraticule draws meridians every 30 degrees and parallels every 30
// degrees over a w x h equirectangular frame at origin.
func drawGraticule(sec *Section, origin vec.Vec2, w, h float64) {
	for lng := -150.0; lng <= 150; lng += 30 {
		top := canvasPoint(90, lng, w, h)
		bottom := canvasPoint(-90, lng, w, h)
		sec.Add(StrokeShape(geometry.NewPath().MoveTo(top).LineTo(bottom).Translate(origin.X, origin.Y), "#E5E0DA", 1))
	}
	for lat := -60.0; lat <= 60; lat += 30 {
		left := canvasPoint(lat, -180, w, h)
		right := canvasPoint(lat, 180, w, h)
		sec.Add(StrokeShape(geometry.NewPath().MoveTo(left).LineTo(right).Translate(origin.X, origin.Y), "#E5E0DA", 1))
	}
}

// drawMarkers places a halo and a core dot per location, sized by visitors
// relative to the busiest location.
func drawMarkers(sec *Section, locs []models.GeoLocation, scale geometry.MarkerScale, origin vec.Vec2, w, h float64, named bool) {
	visitors := make([]float64, len(locs))
	for i, l := range locs {
		visitors[i] = float64(l.Visitors)
	}
	radii := scale.Radii(visitors)

	for i, l := range locs {
		c := canvasPoint(l.Lat, l.Lng, w, h)
		c = vec.Vec2{X: c.X + origin.X, Y: c.Y + origin.Y}
		r := radii[i]
		sec.Add(
			FillShape(geometry.Circle(c, r), mapMarkerColor).WithOpacity(0.3),
			FillShape(geometry.Circle(c, r*0.5), mapMarkerColor).WithOpacity(0.8),
		)
		if named {
			sec.Add(Label(l.Name, vec.Vec2{X: c.X, Y: c.Y - r - 6}, 12, colorInk, "middle"))
		}
	}
}

func canvasPoint(lat, lng, w, h float64) vec.Vec2 {
	x, y := spatial.Project(lat, lng).ToCanvas(w, h)
	return vec.Vec2{X: x, Y: y}
}
