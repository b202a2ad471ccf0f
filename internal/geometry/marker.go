package geometry

import (
	"fmt"

	"github.com/jengzang/sendnow-backend-go/internal/stats"
)

// MarkerScale maps data values to marker radii
type MarkerScale struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// DefaultMarkerScale matches the map view's 6px..24px markers
var DefaultMarkerScale = MarkerScale{Min: 6, Max: 24}

// Validate checks that the scale is usable
func (s MarkerScale) Validate() error {
	if !finite(s.Min, s.Max) || s.Min < 0 || s.Max < s.Min {
		return fmt.Errorf("%w: marker scale min=%v max=%v", ErrInvalidInput, s.Min, s.Max)
	}
	return nil
}

// Radius interpolates linearly between Min and Max by value/maxValue.
// A non-positive maxValue is treated as 1, so all-zero data collapses to Min.
// Negative values count as zero.
func (s MarkerScale) Radius(value, maxValue float64) float64 {
	if maxValue <= 0 {
		maxValue = 1
	}
	value = max(value, 0)
	return s.Min + (value/maxValue)*(s.Max-s.Min)
}

// Radii sizes every value relative to the largest one in the dataset
func (s MarkerScale) Radii(values []float64) []float64 {
	maxValue := stats.Max(values)
	res := make([]float64, len(values))
	for i, v := range values {
		res[i] = s.Radius(v, maxValue)
	}
	return res
}

// HotspotRadius is the heatmap blob radius: 15px plus 4px per intensity step
func HotspotRadius(intensity float64) float64 {
	return 15 + intensity*4
}
