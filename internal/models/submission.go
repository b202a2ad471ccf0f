package models

import "time"

// SubmissionKind names the form a submission came from
type SubmissionKind string

const (
	KindContact    SubmissionKind = "contact"
	KindNewsletter SubmissionKind = "newsletter"
)

// ContactSubmission is the body of POST /api/contact
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// NewsletterSignup is the body of POST /api/newsletter-signup
type NewsletterSignup struct {
	Email string `json:"email"`
}

// Submission is an accepted form submission
type Submission struct {
	ID        string         `json:"id"`
	Kind      SubmissionKind `json:"kind"`
	Name      string         `json:"name,omitempty"`
	Email     string         `json:"email"`
	Message   string         `json:"message,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// SubmissionFilter selects journal entries
type SubmissionFilter struct {
	Kind  SubmissionKind `form:"kind"`
	Limit int            `form:"limit"`
}
