package chart

import (
	"fmt"
	"sort"

	"github.com/jengzang/sendnow-backend-go/internal/geometry"
	"github.com/jengzang/sendnow-backend-go/internal/models"
	"seehuhn.de/go/geom/vec"
)

const (
	videoUnitsWidth  = 100
	videoUnitsHeight = 40
	videoKeyMoments  = 3
)

// VideoAnalytics is the engagement timeline of a shared video
type VideoAnalytics struct {
	Title        string                `json:"title"`
	Duration     string                `json:"duration"` // MM:SS
	TotalViews   int                   `json:"total_views"`
	AvgWatchTime string                `json:"avg_watch_time"`
	Current      string                `json:"current"` // playhead, MM:SS
	Segments     []models.VideoSegment `json:"segments"`
}

// Kind implements View
func (VideoAnalytics) Kind() Kind { return KindVideo }

// Validate implements View
func (v VideoAnalytics) Validate() error {
	duration, err := models.ParseClock(v.Duration)
	if err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	if duration == 0 {
		return fmt.Errorf("%w: video has zero duration", geometry.ErrInvalidInput)
	}
	current, err := models.ParseClock(v.Current)
	if err != nil {
		return fmt.Errorf("playhead: %w", err)
	}
	if current > duration {
		return fmt.Errorf("%w: playhead %s past duration %s", geometry.ErrInvalidInput, v.Current, v.Duration)
	}
	if v.AvgWatchTime != "" {
		if _, err := models.ParseClock(v.AvgWatchTime); err != nil {
			return fmt.Errorf("average watch time: %w", err)
		}
	}
	if v.TotalViews < 0 {
		return fmt.Errorf("%w: negative total views", geometry.ErrInvalidInput)
	}
	if len(v.Segments) == 0 {
		return fmt.Errorf("%w: video has no segments", geometry.ErrInvalidInput)
	}
	for i, s := range v.Segments {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
		end, _ := models.ParseClock(s.End)
		if end > duration {
			return fmt.Errorf("%w: segment %d ends after the video", geometry.ErrInvalidInput, i)
		}
	}
	return nil
}

// Playhead is the playhead's horizontal position as a percentage of the duration
func (v VideoAnalytics) Playhead() float64 {
	duration, err := models.ParseClock(v.Duration)
	if err != nil || duration == 0 {
		return 0
	}
	current, err := models.ParseClock(v.Current)
	if err != nil {
		return 0
	}
	return float64(current) / float64(duration) * 100
}

func init() {
	Register(KindVideo, decodeJSON[VideoAnalytics](), renderVideo)
}

func renderVideo(view View, opts Options) (*Scene, error) {
	v, err := viewAs[VideoAnalytics](view)
	if err != nil {
		return nil, err
	}
	duration, _ := models.ParseClock(v.Duration)

	engagement := make([]float64, len(v.Segments))
	for i, s := range v.Segments {
		engagement[i] = s.Engagement
	}
	// engagement is already a percentage, so the top of the box is 100
	pts, err := geometry.CurvePointsWithin(engagement, videoUnitsWidth, videoUnitsHeight, 100)
	if err != nil {
		return nil, err
	}

	scene := NewScene(KindVideo, 600, 240)
	scene.ViewBox = ViewBox{Width: videoUnitsWidth, Height: videoUnitsHeight}
	scene.Background = "#F3F4F6"
	scene.AddGradient(Gradient{
		ID: "engagement-fill",
		Stops: []GradientStop{
			{Offset: 0, Color: colorBrand, Opacity: 1},
			{Offset: 1, Color: colorBrand, Opacity: 0.1},
		},
	})

	graph := scene.Section("engagement", opts.Observer)
	area := geometry.Smooth(pts).
		LineTo(vec.Vec2{X: videoUnitsWidth, Y: videoUnitsHeight}).
		LineTo(vec.Vec2{X: 0, Y: videoUnitsHeight}).
		Close()
	graph.Add(
		GradientShape(area, "engagement-fill", 0.3),
		StrokeShape(geometry.Smooth(pts), colorBrand, 2),
	)

	for _, i := range keyMoments(engagement, videoKeyMoments) {
		graph.Add(FillShape(geometry.Circle(pts[i], 3), colorBrandLight).WithStroke("#FFFFFF", 2))
	}

	markers := scene.Section("drop-off", opts.Observer)
	for _, s := range v.Segments {
		if !s.DropOff {
			continue
		}
		start, _ := models.ParseClock(s.Start)
		x := float64(start) / float64(duration) * videoUnitsWidth
		line := StrokeShape(geometry.NewPath().
			MoveTo(vec.Vec2{X: x, Y: 0}).
			LineTo(vec.Vec2{X: x, Y: videoUnitsHeight}), "#F87171", 0.5)
		line.Dashed = true
		markers.Add(line, Label(s.Start+" drop-off", vec.Vec2{X: x, Y: 3}, 3, "#DC2626", "end"))
	}

	current, _ := models.ParseClock(v.Current)
	scene.Section("playhead", opts.Observer).Add(
		FillShape(geometry.Circle(vec.Vec2{X: v.Playhead(), Y: videoUnitsHeight / 2}, 4), colorBrand),
		Label(models.FormatClock(current)+" / "+models.FormatClock(duration),
			vec.Vec2{X: v.Playhead(), Y: videoUnitsHeight - 3}, 3, colorInk, "middle"),
	)
	return scene, nil
}

// keyMoments returns the indices of the n most engaging samples, left to right
func keyMoments(values []float64, n int) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] > values[idx[b]] })
	if len(idx) > n {
		idx = idx[:n]
	}
	sort.Ints(idx)
	return idx
}
