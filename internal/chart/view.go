package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/jengzang/sendnow-backend-go/internal/geometry"
)

// Kind names a dashboard view
type Kind string

const (
	KindOverview  Kind = "overview"
	KindHeatmap   Kind = "heatmap"
	KindDevices   Kind = "devices"
	KindTimeSpent Kind = "time-spent"
	KindMap       Kind = "map"
	KindVideo     Kind = "video"
)

// ErrUnknownKind is returned for a view kind with no registered renderer
var ErrUnknownKind = errors.New("unknown chart kind")

// View is one dashboard tab's dataset
type View interface {
	Kind() Kind
	Validate() error
}

// Options carries the shared rendering configuration
type Options struct {
	Observer  VisibilityObserver
	Markers   geometry.MarkerScale
	Intensity *geometry.IntensityScale
}

// DefaultOptions renders every section visible with the stock scales
func DefaultOptions() Options {
	return Options{
		Observer:  StaticObserver(Visible),
		Markers:   geometry.DefaultMarkerScale,
		Intensity: geometry.DefaultIntensityScale(),
	}
}

func (o Options) withDefaults() Options {
	if o.Observer == nil {
		o.Observer = StaticObserver(Visible)
	}
	if o.Markers == (geometry.MarkerScale{}) {
		o.Markers = geometry.DefaultMarkerScale
	}
	if o.Intensity == nil {
		o.Intensity = geometry.DefaultIntensityScale()
	}
	return o
}

// Decoder parses a JSON dataset into a view
type Decoder func(data []byte) (View, error)

// Renderer draws a validated view
type Renderer func(v View, opts Options) (*Scene, error)

type registration struct {
	decode Decoder
	render Renderer
}

var registry = make(map[Kind]registration)

// Register installs the decoder and renderer for a view kind
func Register(kind Kind, decode Decoder, render Renderer) {
	registry[kind] = registration{decode: decode, render: render}
}

// Kinds lists the registered view kinds in name order
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// IsKnown reports whether kind has a renderer
func IsKnown(kind Kind) bool {
	_, ok := registry[kind]
	return ok
}

// Decode parses data as a dataset of the given kind
func Decode(kind Kind, data []byte) (View, error) {
	reg, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	v, err := reg.decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s dataset: %v", geometry.ErrInvalidInput, kind, err)
	}
	return v, nil
}

// Render validates v and draws it with the renderer registered for its kind
func Render(v View, opts Options) (*Scene, error) {
	reg, ok := registry[v.Kind()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, v.Kind())
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s dataset: %w", v.Kind(), err)
	}
	return reg.render(v, opts.withDefaults())
}

// decodeJSON builds a Decoder for a concrete view type
func decodeJSON[T View]() Decoder {
	return func(data []byte) (View, error) {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// viewAs recovers the concrete view type inside a renderer
func viewAs[T View](v View) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: renderer for %s got %T", geometry.ErrInvalidInput, zero.Kind(), v)
	}
	return t, nil
}
