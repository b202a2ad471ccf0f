package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jengzang/sendnow-backend-go/internal/models"
	"github.com/jengzang/sendnow-backend-go/internal/repository"
	"go.uber.org/zap"
)

// Messages returned by the form endpoints
const (
	MsgContactThanks    = "Thank you for your message. We will get back to you soon!"
	MsgContactInvalid   = "Please provide name, email and message"
	MsgContactFailed    = "An error occurred while submitting your message"
	MsgNewsletterThanks = "Thank you for subscribing to our newsletter!"
	MsgNewsletterBad    = "Please provide a valid email address"
	MsgNewsletterFailed = "An error occurred while processing your subscription"
)

// ValidationError is a client mistake in a form submission
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Sink receives accepted submissions
type Sink interface {
	Record(ctx context.Context, s *models.Submission) error
}

// LogSink writes submissions to the log and keeps nothing
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a log-only sink
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Record logs the submission, message included, so log-only deployments can
// still read what was sent.
func (s *LogSink) Record(_ context.Context, sub *models.Submission) error {
	fields := []zap.Field{
		zap.String("id", sub.ID),
		zap.String("kind", string(sub.Kind)),
		zap.String("email", sub.Email),
		zap.Time("created_at", sub.CreatedAt),
	}
	if sub.Kind == models.KindContact {
		fields = append(fields, zap.String("name", sub.Name), zap.String("message", sub.Message))
	}
	s.logger.Info("submission received", fields...)
	return nil
}

// JournalSink stores submissions in the SQLite journal
type JournalSink struct {
	repo *repository.SubmissionRepository
}

// NewJournalSink creates a sink over the submission repository
func NewJournalSink(repo *repository.SubmissionRepository) *JournalSink {
	return &JournalSink{repo: repo}
}

// Record stores the submission
func (s *JournalSink) Record(ctx context.Context, sub *models.Submission) error {
	return s.repo.Create(ctx, sub)
}

// SubmissionService validates form submissions and hands them to its sinks
type SubmissionService struct {
	sinks  []Sink
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// NewSubmissionService creates a submission service. Every accepted
// submission goes to each sink in order.
func NewSubmissionService(logger *zap.Logger, sinks ...Sink) *SubmissionService {
	return &SubmissionService{
		sinks:  sinks,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// SubmitContact accepts a contact form message. Name, email and message are
// trimmed and must all be non-empty.
func (s *SubmissionService) SubmitContact(ctx context.Context, req models.ContactSubmission) (*models.Submission, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		return nil, &ValidationError{Message: MsgContactInvalid}
	}

	return s.accept(ctx, &models.Submission{
		Kind:    models.KindContact,
		Name:    name,
		Email:   email,
		Message: message,
	})
}

// SubscribeNewsletter accepts a newsletter signup. The email must contain "@".
func (s *SubmissionService) SubscribeNewsletter(ctx context.Context, req models.NewsletterSignup) (*models.Submission, error) {
	email := strings.TrimSpace(req.Email)
	if !strings.Contains(email, "@") {
		return nil, &ValidationError{Message: MsgNewsletterBad}
	}

	return s.accept(ctx, &models.Submission{
		Kind:  models.KindNewsletter,
		Email: email,
	})
}

func (s *SubmissionService) accept(ctx context.Context, sub *models.Submission) (*models.Submission, error) {
	sub.ID = s.newID()
	sub.CreatedAt = s.now().UTC()

	for _, sink := range s.sinks {
		if err := sink.Record(ctx, sub); err != nil {
			s.logger.Error("failed to record submission",
				zap.String("id", sub.ID),
				zap.String("kind", string(sub.Kind)),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to record %s submission: %w", sub.Kind, err)
		}
	}
	return sub, nil
}
