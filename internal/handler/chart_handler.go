package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/sendnow-backend-go/internal/chart"
	"github.com/jengzang/sendnow-backend-go/internal/geometry"
	"github.com/jengzang/sendnow-backend-go/internal/service"
	"github.com/jengzang/sendnow-backend-go/pkg/response"
)

// maxDatasetBytes bounds a POSTed dataset
const maxDatasetBytes = 1 << 20

// ChartHandler handles HTTP requests for dashboard charts
type ChartHandler struct {
	service *service.ChartService
}

// NewChartHandler creates a new chart handler
func NewChartHandler(service *service.ChartService) *ChartHandler {
	return &ChartHandler{service: service}
}

// ListKinds handles GET /api/charts
func (h *ChartHandler) ListKinds(c *gin.Context) {
	response.Success(c, h.service.Kinds())
}

// RenderSample handles GET /api/charts/:kind
func (h *ChartHandler) RenderSample(c *gin.Context) {
	req, err := renderRequest(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	out, err := h.service.RenderSample(req)
	h.write(c, out, err)
}

// RenderDataset handles POST /api/charts/:kind
func (h *ChartHandler) RenderDataset(c *gin.Context) {
	req, err := renderRequest(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDatasetBytes)
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Failed to read dataset")
		return
	}

	out, err := h.service.RenderDataset(req, body)
	h.write(c, out, err)
}

func (h *ChartHandler) write(c *gin.Context, out *service.Rendered, err error) {
	switch {
	case err == nil:
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, out.ContentType, out.Body)
	case errors.Is(err, chart.ErrUnknownKind), errors.Is(err, service.ErrNoSample):
		response.NotFound(c, err.Error())
	case errors.Is(err, geometry.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c, "Failed to render chart")
	}
}

func renderRequest(c *gin.Context) (service.RenderRequest, error) {
	state, err := chart.ParseViewState(c.Query("state"))
	if err != nil {
		return service.RenderRequest{}, err
	}

	req := service.RenderRequest{
		Kind:   chart.Kind(c.Param("kind")),
		Format: c.DefaultQuery("format", service.FormatSVG),
		State:  state,
	}
	if req.Width, err = sizeParam(c, "width"); err != nil {
		return service.RenderRequest{}, err
	}
	if req.Height, err = sizeParam(c, "height"); err != nil {
		return service.RenderRequest{}, err
	}
	if req.Intersections, err = chart.ParseIntersections(c.QueryArray("ratio")); err != nil {
		return service.RenderRequest{}, err
	}
	return req, nil
}

func sizeParam(c *gin.Context, name string) (int, error) {
	v := c.Query(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s parameter %q", name, v)
	}
	return n, nil
}
