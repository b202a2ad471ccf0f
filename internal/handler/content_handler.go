package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/sendnow-backend-go/internal/service"
	"github.com/jengzang/sendnow-backend-go/pkg/response"
)

// ContentHandler serves the marketing copy
type ContentHandler struct {
	service *service.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(service *service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// GetAll handles GET /api/content
func (h *ContentHandler) GetAll(c *gin.Context) {
	response.Success(c, h.service.All())
}

// GetSection handles GET /api/content/:section
func (h *ContentHandler) GetSection(c *gin.Context) {
	name := c.Param("section")
	data, ok := h.service.Section(name)
	if !ok {
		response.NotFound(c, "Unknown content section: "+name)
		return
	}
	response.Success(c, data)
}

// Health handles GET /health
func Health(c *gin.Context) {
	response.OK(c, "ok")
}
