package geometry

import (
	"fmt"
	"math"
)

// Band is a discrete colour category for heatmap hotspots
type Band struct {
	ID       string  `yaml:"id" json:"id"`
	Gradient string  `yaml:"gradient" json:"gradient"`
	Color    string  `yaml:"color" json:"color"`
	Opacity  float64 `yaml:"opacity" json:"opacity"`
}

// Threshold assigns Band to intensities strictly below UpperBound
type Threshold struct {
	UpperBound float64 `yaml:"upper_bound" json:"upper_bound"`
	Band       Band    `yaml:"band" json:"band"`
}

// IntensityScale buckets intensity scores into bands
type IntensityScale struct {
	thresholds []Threshold
}

// DefaultThresholds reproduces the heatmap's yellow / orange / red split at 5 and 8
func DefaultThresholds() []Threshold {
	return []Threshold{
		{UpperBound: 5, Band: Band{ID: "low", Gradient: "hotspot-yellow", Color: "#FFD700", Opacity: 0.5}},
		{UpperBound: 8, Band: Band{ID: "medium", Gradient: "hotspot-orange", Color: "#FF8C00", Opacity: 0.6}},
		{UpperBound: math.Inf(1), Band: Band{ID: "high", Gradient: "hotspot-red", Color: "#FF4500", Opacity: 0.6}},
	}
}

// NewIntensityScale validates thresholds: at least one, bounds strictly
// increasing, every band named.
func NewIntensityScale(thresholds []Threshold) (*IntensityScale, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("%w: no intensity bands", ErrInvalidInput)
	}
	for i, t := range thresholds {
		if t.Band.ID == "" || t.Band.Gradient == "" {
			return nil, fmt.Errorf("%w: band %d needs id and gradient", ErrInvalidInput, i)
		}
		if math.IsNaN(t.UpperBound) {
			return nil, fmt.Errorf("%w: band %q has NaN bound", ErrInvalidInput, t.Band.ID)
		}
		if i > 0 && t.UpperBound <= thresholds[i-1].UpperBound {
			return nil, fmt.Errorf("%w: band %q bound %v not above %v",
				ErrInvalidInput, t.Band.ID, t.UpperBound, thresholds[i-1].UpperBound)
		}
	}

	ts := make([]Threshold, len(thresholds))
	copy(ts, thresholds)
	return &IntensityScale{thresholds: ts}, nil
}

// DefaultIntensityScale returns the scale built from DefaultThresholds
func DefaultIntensityScale() *IntensityScale {
	s, _ := NewIntensityScale(DefaultThresholds())
	return s
}

// Bucket returns the first band whose bound exceeds intensity. Anything past
// the last bound, NaN included, lands in the last band.
func (s *IntensityScale) Bucket(intensity float64) Band {
	for _, t := range s.thresholds {
		if intensity < t.UpperBound {
			return t.Band
		}
	}
	return s.thresholds[len(s.thresholds)-1].Band
}

// Bands lists the bands in evaluation order
func (s *IntensityScale) Bands() []Band {
	res := make([]Band, len(s.thresholds))
	for i, t := range s.thresholds {
		res[i] = t.Band
	}
	return res
}
