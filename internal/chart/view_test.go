package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jengzang/sendnow-backend-go/internal/geometry"
	"github.com/jengzang/sendnow-backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cities = []models.GeoLocation{
	{Name: "Paris", Country: "FR", Lat: 48.8566, Lng: 2.3522, Visitors: 40, Percentage: 40},
	{Name: "Madrid", Country: "ES", Lat: 40.4168, Lng: -3.7038, Visitors: 60, Percentage: 60},
}

func labels(s *Scene, section string) []string {
	var res []string
	for _, sec := range s.Sections {
		if sec.Name != section {
			continue
		}
		for _, n := range sec.Nodes {
			if n.Type == NodeText {
				res = append(res, n.Text)
			}
		}
	}
	return res
}

func shapes(s *Scene, section string) []Node {
	var res []Node
	for _, sec := range s.Sections {
		if sec.Name != section {
			continue
		}
		for _, n := range sec.Nodes {
			if n.Type == NodeShape {
				res = append(res, n)
			}
		}
	}
	return res
}

func TestKinds(t *testing.T) {
	want := []Kind{KindDevices, KindHeatmap, KindMap, KindOverview, KindTimeSpent, KindVideo}
	if diff := cmp.Diff(want, Kinds()); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, IsKnown(KindVideo))
	assert.False(t, IsKnown("pie"))
}

func TestDecode(t *testing.T) {
	v, err := Decode(KindHeatmap, []byte(`{"page":"p","hotspots":[{"x":10,"y":20,"intensity":5}]}`))
	require.NoError(t, err)
	h, ok := v.(Heatmap)
	require.True(t, ok)
	assert.Equal(t, 5.0, h.Hotspots[0].Intensity)

	_, err = Decode(KindHeatmap, []byte(`{`))
	assert.ErrorIs(t, err, geometry.ErrInvalidInput)

	_, err = Decode("pie", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRender_RejectsInvalidDatasets(t *testing.T) {
	cases := map[string]View{
		"empty heatmap":     Heatmap{},
		"hotspot off page":  Heatmap{Hotspots: []models.HotspotPoint{{X: 120, Y: 10, Intensity: 3}}},
		"intensity zero":    Heatmap{Hotspots: []models.HotspotPoint{{X: 10, Y: 10, Intensity: 0}}},
		"zero devices":      DeviceAnalytics{Devices: []models.PieSlice{{Name: "Desktop", Value: 0, Color: "#000000"}}},
		"bad colour":        DeviceAnalytics{Devices: []models.PieSlice{{Name: "Desktop", Value: 1, Color: "brown"}}},
		"negative bar":      DeviceAnalytics{Devices: []models.PieSlice{{Name: "D", Value: 1, Color: "#000000"}}, Weekly: []models.DayValue{{Day: "Mon", Value: -1}}},
		"no points":         TimeSpent{},
		"tiny height":       TimeSpent{Points: []models.DataPoint{{Label: "a", Value: 1}}, Height: 40},
		"unknown country":   MapAnalytics{Locations: []models.GeoLocation{{Name: "X", Country: "Atlantis", Lat: 1, Lng: 1}}},
		"off the globe":     MapAnalytics{Locations: []models.GeoLocation{{Name: "X", Country: "FR", Lat: 91, Lng: 1}}},
		"playhead too late": VideoAnalytics{Duration: "00:10", Current: "00:20", Segments: []models.VideoSegment{{Start: "00:00", End: "00:10"}}},
		"bad clock":         VideoAnalytics{Duration: "1:2:3", Current: "00:00", Segments: []models.VideoSegment{{Start: "00:00", End: "00:10"}}},
		"segment overruns":  VideoAnalytics{Duration: "00:10", Current: "00:00", Segments: []models.VideoSegment{{Start: "00:00", End: "00:20"}}},
		"overview no stats": Overview{Sessions: []models.DataPoint{{Label: "a", Value: 1}}, Traffic: cities},
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Render(v, DefaultOptions())
			assert.ErrorIs(t, err, geometry.ErrInvalidInput)
		})
	}
}

func TestRenderHeatmap(t *testing.T) {
	v := Heatmap{Hotspots: []models.HotspotPoint{
		{X: 50, Y: 50, Intensity: 9, Clicks: 142},
		{X: 10, Y: 10, Intensity: 2},
		{X: 90, Y: 90, Intensity: 6},
	}}
	s, err := Render(v, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 800.0, s.Width)
	assert.Equal(t, 450.0, s.Height)
	assert.Len(t, s.Gradients, 3)

	blobs := shapes(s, "hotspots")
	require.Len(t, blobs, 3)
	assert.Equal(t, []string{"hotspot-red", "hotspot-yellow", "hotspot-orange"},
		[]string{blobs[0].Gradient, blobs[1].Gradient, blobs[2].Gradient})

	// 15 + 4*9 = 51 around (400, 225)
	assert.True(t, strings.HasPrefix(blobs[0].Path.String(), "M400,174 A51 51"), blobs[0].Path.String())

	// clicks when known, otherwise three per intensity step
	assert.Equal(t, []string{"142", "6", "18"}, labels(s, "badges"))
}

func TestRenderDevices(t *testing.T) {
	v := DeviceAnalytics{
		Devices: []models.PieSlice{
			{Name: "Desktop", Value: 68, Color: "#7C5832"},
			{Name: "Mobile", Value: 24, Color: "#B79F85"},
			{Name: "Tablet", Value: 8, Color: "#D4C5B4"},
		},
		Weekly: []models.DayValue{
			{Day: "Mon", Value: 30},
			{Day: "Tue", Value: 60, Highest: true},
		},
	}
	s, err := Render(v, DefaultOptions())
	require.NoError(t, err)

	// an 8% slice is too thin for a label
	assert.Equal(t, []string{"68%", "24%"}, labels(s, "donut"))
	assert.Len(t, shapes(s, "donut"), 3)
	assert.Equal(t, []string{"Desktop", "Mobile", "Tablet"}, labels(s, "legend"))

	var bars []Node
	for _, n := range shapes(s, "weekly") {
		if n.Stroke == "" {
			bars = append(bars, n)
		}
	}
	require.Len(t, bars, 2)
	assert.Equal(t, colorBrandLight, bars[0].Fill)
	assert.Equal(t, colorBrand, bars[1].Fill)

	// full-height bar spans the 230px plot, the half bar 115px
	assert.Contains(t, bars[1].Path.String(), "L"+geometry.Num(bars[1].Path.Segments()[0].Points[0].X)+",250")
	top0 := bars[0].Path.Segments()[0].Points[0].Y
	top1 := bars[1].Path.Segments()[0].Points[0].Y
	assert.InDelta(t, 250-115, top0, 1e-9)
	assert.InDelta(t, 250-230, top1, 1e-9)

	assert.Contains(t, labels(s, "weekly"), "60 Min")
	assert.Contains(t, labels(s, "weekly"), "45 Min")
}

func TestRenderDevices_SingleCategoryIsFullRing(t *testing.T) {
	v := DeviceAnalytics{Devices: []models.PieSlice{{Name: "Desktop", Value: 1, Color: "#7C5832"}}}
	s, err := Render(v, DefaultOptions())
	require.NoError(t, err)

	ring := shapes(s, "donut")
	require.Len(t, ring, 1)
	assert.Contains(t, ring[0].Path.String(), "A140 140 0 1 1")
	assert.Equal(t, []string{"100%"}, labels(s, "donut"))
}

func TestRenderTimeSpent(t *testing.T) {
	v := TimeSpent{Points: []models.DataPoint{
		{Label: "a", Value: 10},
		{Label: "b", Value: 40, Annotation: "peak"},
		{Label: "c", Value: 20},
	}}
	s, err := Render(v, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, ViewBox{Width: 100, Height: 250}, s.ViewBox)
	assert.Equal(t, []string{"40", "30", "20", "10", "0"}, labels(s, "axis"))
	assert.Contains(t, labels(s, "line"), "peak")

	line := shapes(s, "line")
	assert.True(t, strings.HasSuffix(line[0].Path.String(), "L100,250 L0,250 Z"))
	assert.True(t, strings.HasPrefix(line[1].Path.String(), "M0,187.5 C"))
}

func TestRenderTimeSpent_CustomHeight(t *testing.T) {
	v := TimeSpent{Points: []models.DataPoint{{Label: "a", Value: 1}}, Height: 150}
	s, err := Render(v, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.ViewBox.Height)
}

func TestRenderMap(t *testing.T) {
	s, err := Render(MapAnalytics{Locations: cities}, DefaultOptions())
	require.NoError(t, err)

	markers := shapes(s, "markers")
	require.Len(t, markers, 4)
	// Madrid is the busiest, so its halo is the max radius
	assert.Contains(t, markers[2].Path.String(), "A24 24")
	assert.Contains(t, markers[0].Path.String(), "A18 18")

	list := labels(s, "list")
	require.Len(t, list, 5)
	assert.Equal(t, "1. Madrid, Spain", list[1])
	assert.Equal(t, "2. Paris, France", list[3])
}

func TestMapRanking(t *testing.T) {
	got := MapAnalytics{Locations: cities}.Ranking()
	want := []RankedLocation{
		{Rank: 1, Name: "Madrid", Country: "Spain", Visitors: 60, Percentage: 60},
		{Rank: 2, Name: "Paris", Country: "France", Visitors: 40, Percentage: 40},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ranking() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderVideo(t *testing.T) {
	v := VideoAnalytics{
		Duration: "01:40",
		Current:  "00:25",
		Segments: []models.VideoSegment{
			{Start: "00:00", End: "00:50", Engagement: 100},
			{Start: "00:50", End: "01:40", Engagement: 50, DropOff: true},
		},
	}
	assert.InDelta(t, 25, v.Playhead(), 1e-9)

	s, err := Render(v, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, ViewBox{Width: 100, Height: 40}, s.ViewBox)
	head := shapes(s, "playhead")
	require.Len(t, head, 1)
	assert.True(t, strings.HasPrefix(head[0].Path.String(), "M25,16 "), head[0].Path.String())
	assert.Equal(t, []string{"00:25 / 01:40"}, labels(s, "playhead"))

	assert.Equal(t, []string{"00:50 drop-off"}, labels(s, "drop-off"))
	drop := shapes(s, "drop-off")
	require.Len(t, drop, 1)
	assert.Equal(t, "M50,0 L50,40", drop[0].Path.String())

	curve := shapes(s, "engagement")
	assert.Equal(t, "M0,0 C33.33,0 66.67,20 100,20", curve[1].Path.String())
}

func TestKeyMoments(t *testing.T) {
	assert.Equal(t, []int{0, 2, 3}, keyMoments([]float64{90, 10, 80, 85, 20}, 3))
	assert.Equal(t, []int{0, 1}, keyMoments([]float64{1, 2}, 3))
}

func TestRenderOverview(t *testing.T) {
	v := Overview{
		Stats:    []models.StatCard{{Title: "Sessions", Value: "10"}, {Title: "Visitors", Value: "5"}},
		Sessions: []models.DataPoint{{Label: "Mon", Value: 1}, {Label: "Sun", Value: 2}},
		Traffic:  cities,
	}
	s, err := Render(v, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"Sessions", "10", "Visitors", "5"}, labels(s, "stats"))
	assert.Equal(t, []string{"Sessions", "Mon", "Sun"}, labels(s, "sessions"))

	// halved marker scale inside the small traffic map
	var markers []Node
	for _, n := range shapes(s, "traffic") {
		if n.Fill == mapMarkerColor {
			markers = append(markers, n)
		}
	}
	require.Len(t, markers, 4)
	assert.InDelta(t, 12, markers[2].Path.Segments()[1].Arc.Radius, 1e-9)
	assert.InDelta(t, 9, markers[0].Path.Segments()[1].Arc.Radius, 1e-9)
}

func TestRender_PendingObserver(t *testing.T) {
	opts := DefaultOptions()
	opts.Observer = StaticObserver(Pending)
	s, err := Render(MapAnalytics{Locations: cities}, opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeSVG(&buf, s))
	assert.NotContains(t, buf.String(), `data-state="visible"`)
	for _, sec := range s.Sections {
		for _, n := range sec.Nodes {
			assert.Zero(t, sec.Opacity(n))
		}
	}
}

func TestRender_ZeroOptionsUseDefaults(t *testing.T) {
	s, err := Render(MapAnalytics{Locations: cities}, Options{})
	require.NoError(t, err)
	assert.Equal(t, Visible, s.Sections[0].State)
}
