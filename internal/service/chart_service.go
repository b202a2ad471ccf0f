package service

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jengzang/sendnow-backend-go/internal/chart"
	"github.com/jengzang/sendnow-backend-go/internal/content"
	"github.com/jengzang/sendnow-backend-go/internal/geometry"
	"github.com/jengzang/sendnow-backend-go/internal/raster"
	"go.uber.org/zap"
)

// Output formats
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ErrNoSample means a known kind has no sample dataset
var ErrNoSample = errors.New("no sample dataset")

// RenderRequest selects how a chart is drawn
type RenderRequest struct {
	Kind   chart.Kind
	Format string
	State  chart.ViewState
	Width  int
	Height int

	// Intersections, when set, drive per-section state instead of State
	Intersections map[string]float64
}

// Rendered is an encoded chart
type Rendered struct {
	ContentType string
	Body        []byte
}

// ChartService renders dashboard views
type ChartService struct {
	site   *content.Site
	opts   chart.Options
	logger *zap.Logger
}

// NewChartService creates a chart service over the site's sample datasets
func NewChartService(site *content.Site, markers geometry.MarkerScale, intensity *geometry.IntensityScale, logger *zap.Logger) *ChartService {
	return &ChartService{
		site: site,
		opts: chart.Options{
			Markers:   markers,
			Intensity: intensity,
		},
		logger: logger,
	}
}

// Kinds lists the renderable views
func (s *ChartService) Kinds() []chart.Kind {
	return chart.Kinds()
}

// RenderSample draws the built-in dataset for req.Kind
func (s *ChartService) RenderSample(req RenderRequest) (*Rendered, error) {
	if !chart.IsKnown(req.Kind) {
		return nil, fmt.Errorf("%w: %q", chart.ErrUnknownKind, req.Kind)
	}
	v, ok := s.site.Dataset(req.Kind)
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoSample, req.Kind)
	}
	return s.render(v, req)
}

// RenderDataset decodes a caller-supplied JSON dataset and draws it
func (s *ChartService) RenderDataset(req RenderRequest, data []byte) (*Rendered, error) {
	v, err := chart.Decode(req.Kind, data)
	if err != nil {
		return nil, err
	}
	return s.render(v, req)
}

func (s *ChartService) render(v chart.View, req RenderRequest) (*Rendered, error) {
	format := req.Format
	if format == "" {
		format = FormatSVG
	}
	if format != FormatSVG && format != FormatPNG {
		return nil, fmt.Errorf("%w: format %q must be svg or png", geometry.ErrInvalidInput, req.Format)
	}

	opts := s.opts
	opts.Observer = chart.StaticObserver(req.State)
	if len(req.Intersections) > 0 {
		opts.Observer = chart.Reveal(req.Intersections, chart.DefaultRevealThreshold)
	}

	scene, err := chart.Render(v, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	out := &Rendered{}
	switch format {
	case FormatPNG:
		if err := raster.Encode(&buf, scene, req.Width, req.Height); err != nil {
			return nil, fmt.Errorf("%w: %v", geometry.ErrInvalidInput, err)
		}
		out.ContentType = raster.ContentType
	default:
		if err := chart.EncodeSVG(&buf, scene); err != nil {
			return nil, fmt.Errorf("failed to encode svg: %w", err)
		}
		out.ContentType = chart.SVGContentType
	}
	out.Body = buf.Bytes()

	s.logger.Debug("chart rendered",
		zap.String("kind", string(req.Kind)),
		zap.String("format", format),
		zap.Stringer("state", req.State),
		zap.Int("bytes", len(out.Body)),
	)
	return out, nil
}
