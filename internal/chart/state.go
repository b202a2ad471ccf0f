package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// ViewState is the reveal state of a chart section
type ViewState int

const (
	// Pending sections have not been scrolled into view yet and render at zero opacity
	Pending ViewState = iota
	// Visible sections render their final appearance
	Visible
)

func (s ViewState) String() string {
	if s == Visible {
		return "visible"
	}
	return "pending"
}

// ParseViewState accepts "visible" or "pending"; the empty string is visible
func ParseViewState(s string) (ViewState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "visible":
		return Visible, nil
	case "pending":
		return Pending, nil
	}
	return Pending, fmt.Errorf("unknown view state %q", s)
}

// VisibilityObserver reports whether a named section has been revealed
type VisibilityObserver interface {
	State(section string) ViewState
}

// StaticObserver reports the same state for every section
type StaticObserver ViewState

// State implements VisibilityObserver
func (o StaticObserver) State(string) ViewState {
	return ViewState(o)
}

// DefaultRevealThreshold is the fraction of a section that must intersect the
// viewport before it is revealed
const DefaultRevealThreshold = 0.1

// OnceTracker records viewport intersections. A section becomes visible the
// first time its intersection ratio reaches the threshold and stays visible.
type OnceTracker struct {
	threshold float64

	mu       sync.RWMutex
	revealed map[string]bool
}

// NewOnceTracker creates a tracker; a non-positive threshold uses DefaultRevealThreshold
func NewOnceTracker(threshold float64) *OnceTracker {
	if threshold <= 0 {
		threshold = DefaultRevealThreshold
	}
	return &OnceTracker{
		threshold: threshold,
		revealed:  make(map[string]bool),
	}
}

// Observe records an intersection ratio for section and returns its resulting state
func (t *OnceTracker) Observe(section string, ratio float64) ViewState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ratio >= t.threshold {
		t.revealed[section] = true
	}
	if t.revealed[section] {
		return Visible
	}
	return Pending
}

// State implements VisibilityObserver
func (t *OnceTracker) State(section string) ViewState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.revealed[section] {
		return Visible
	}
	return Pending
}

// ParseIntersections reads "section:ratio" pairs reported by a viewport
// observer. Ratios must lie in [0, 1]; a repeated section keeps the largest.
func ParseIntersections(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	res := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		section, v, ok := strings.Cut(p, ":")
		section = strings.TrimSpace(section)
		if !ok || section == "" {
			return nil, fmt.Errorf("invalid intersection %q, want section:ratio", p)
		}
		ratio, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
			return nil, fmt.Errorf("invalid intersection ratio %q for section %q", v, section)
		}
		res[section] = max(res[section], ratio)
	}
	return res, nil
}

// Reveal feeds every reported intersection to a fresh tracker. Sections that
// were not reported stay pending.
func Reveal(intersections map[string]float64, threshold float64) *OnceTracker {
	t := NewOnceTracker(threshold)
	for section, ratio := range intersections {
		t.Observe(section, ratio)
	}
	return t
}
