package chart

import (
	"fmt"
	"math"

	"github.com/jengzang/sendnow-backend-go/internal/geometry"
	"github.com/jengzang/sendnow-backend-go/internal/models"
	"github.com/jengzang/sendnow-backend-go/internal/stats"
	"seehuhn.de/go/geom/vec"
)

const (
	donutSize       = 280
	donutInnerRatio = 0.6
	// slices at or below this share get no percentage label
	donutLabelShare = 0.08

	weeklyLeft   = 360
	weeklyWidth  = 280
	weeklyHeight = 280
	// reserved under the bars for day labels
	weeklyLabelBand = 50

	devicesWidth  = weeklyLeft + weeklyWidth + 20
	devicesHeight = 340
)

// DeviceAnalytics is the device breakdown donut with the time-per-day panel
type DeviceAnalytics struct {
	Devices []models.PieSlice `json:"devices"`
	Weekly  []models.DayValue `json:"weekly,omitempty"`
}

// Kind implements View
func (DeviceAnalytics) Kind() Kind { return KindDevices }

// Validate implements View
func (d DeviceAnalytics) Validate() error {
	if len(d.Devices) == 0 {
		return fmt.Errorf("%w: no device categories", geometry.ErrInvalidInput)
	}
	var total float64
	for i, s := range d.Devices {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("device %d: %w", i, err)
		}
		total += s.Value
	}
	if total == 0 {
		return fmt.Errorf("%w: device values sum to zero", geometry.ErrInvalidInput)
	}
	for i, day := range d.Weekly {
		if err := day.Validate(); err != nil {
			return fmt.Errorf("day %d: %w", i, err)
		}
	}
	return nil
}

func init() {
	Register(KindDevices, decodeJSON[DeviceAnalytics](), renderDevices)
}

func renderDevices(v View, opts Options) (*Scene, error) {
	d, err := viewAs[DeviceAnalytics](v)
	if err != nil {
		return nil, err
	}

	scene := NewScene(KindDevices, devicesWidth, devicesHeight)
	if err := drawDonut(scene.Section("donut", opts.Observer), d.Devices); err != nil {
		return nil, err
	}
	drawLegend(scene.Section("legend", opts.Observer), d.Devices)
	if len(d.Weekly) > 0 {
		drawWeekly(scene.Section("weekly", opts.Observer), d.Weekly)
	}
	return scene, nil
}

func drawDonut(sec *Section, devices []models.PieSlice) error {
	values := make([]float64, len(devices))
	for i, s := range devices {
		values[i] = s.Value
	}
	slices, err := geometry.Slices(values)
	if err != nil {
		return err
	}

	outer := donutSize / 2.0
	inner := outer * donutInnerRatio
	center := vec.Vec2{X: outer, Y: outer}
	for i, sl := range slices {
		if sl.Share == 0 {
			continue
		}
		p, err := geometry.ArcPath(geometry.Sector{Center: center, Inner: inner, Outer: outer, Start: sl.Start, End: sl.End})
		if err != nil {
			return fmt.Errorf("slice %q: %w", devices[i].Name, err)
		}
		sec.Add(FillShape(p, devices[i].Color))

		if sl.Share > donutLabelShare {
			at := geometry.LabelPosition(center, inner, outer, sl.Start, sl.End)
			text := fmt.Sprintf("%d%%", int(math.Round(sl.Share*100)))
			sec.Add(Label(text, at, 14, "#FFFFFF", "middle").Emphasised())
		}
	}
	return nil
}

func drawLegend(sec *Section, devices []models.PieSlice) {
	const rowY = donutSize + 30
	step := float64(donutSize) / float64(len(devices))
	for i, s := range devices {
		x := float64(i)*step + 6
		sec.Add(
			FillShape(geometry.Circle(vec.Vec2{X: x, Y: rowY}, 6), s.Color),
			Label(s.Name, vec.Vec2{X: x + 10, Y: rowY}, 12, "#374151", "start"),
		)
	}
}

// drawWeekly renders the time-per-day bars. Bar height is value/max of the
// plot height, the plot height being the panel less the label band.
func drawWeekly(sec *Section, days []models.DayValue) {
	values := make([]float64, len(days))
	for i, d := range days {
		values[i] = d.Value
	}
	maxValue := stats.Max(values)
	scale := maxValue
	if scale <= 0 {
		scale = 1
	}

	plotHeight := float64(weeklyHeight - weeklyLabelBand)
	top := 20.0
	baseline := top + plotHeight

	for i, tick := range stats.AxisTicks(maxValue) {
		y := top + plotHeight*float64(i)/4
		grid := StrokeShape(geometry.NewPath().
			MoveTo(vec.Vec2{X: weeklyLeft, Y: y}).
			LineTo(vec.Vec2{X: weeklyLeft + weeklyWidth, Y: y}), "#E5E7EB", 1)
		grid.Dashed = true
		sec.Add(grid, Label(fmt.Sprintf("%s Min", geometry.Num(tick)), vec.Vec2{X: weeklyLeft - 6, Y: y}, 10, "#6B7280", "end"))
	}

	slot := float64(weeklyWidth) / float64(len(days))
	barWidth := slot * 0.6
	for i, d := range days {
		h := d.Value / scale * plotHeight
		x := weeklyLeft + float64(i)*slot + (slot-barWidth)/2
		fill := colorBrandLight
		if d.Highest {
			fill = colorBrand
		}
		sec.Add(
			FillShape(geometry.Rect(x, baseline-h, barWidth, h), fill),
			Label(d.Day, vec.Vec2{X: x + barWidth/2, Y: baseline + 20}, 11, "#6B7280", "middle"),
		)
	}
}
