package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/sendnow-backend-go/internal/models"
	"github.com/jengzang/sendnow-backend-go/internal/service"
	"github.com/jengzang/sendnow-backend-go/pkg/response"
)

// SubmissionService is what the form handlers need from the service layer
type SubmissionService interface {
	SubmitContact(ctx context.Context, req models.ContactSubmission) (*models.Submission, error)
	SubscribeNewsletter(ctx context.Context, req models.NewsletterSignup) (*models.Submission, error)
}

// SubmissionHandler handles the contact and newsletter forms
type SubmissionHandler struct {
	service SubmissionService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(service SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Contact handles POST /api/contact
func (h *SubmissionHandler) Contact(c *gin.Context) {
	var req models.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		// a body that does not parse, or a field of the wrong type, counts as
		// missing fields
		req = models.ContactSubmission{}
	}

	_, err := h.service.SubmitContact(c.Request.Context(), req)
	respond(c, err, service.MsgContactThanks, service.MsgContactFailed)
}

// Newsletter handles POST /api/newsletter-signup
func (h *SubmissionHandler) Newsletter(c *gin.Context) {
	var req models.NewsletterSignup
	if err := c.ShouldBindJSON(&req); err != nil {
		req = models.NewsletterSignup{}
	}

	_, err := h.service.SubscribeNewsletter(c.Request.Context(), req)
	respond(c, err, service.MsgNewsletterThanks, service.MsgNewsletterFailed)
}

func respond(c *gin.Context, err error, thanks, failed string) {
	switch {
	case err == nil:
		response.OK(c, thanks)
	case service.IsValidationError(err):
		response.BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c, failed)
	}
}
