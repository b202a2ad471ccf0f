package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/sendnow-backend-go/internal/models"
)

const defaultListLimit = 100

// SubmissionRepository journals accepted form submissions
type SubmissionRepository struct {
	db *sql.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create stores one submission
func (r *SubmissionRepository) Create(ctx context.Context, s *models.Submission) error {
	query := `INSERT INTO submissions (id, kind, name, email, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, s.ID, string(s.Kind), s.Name, s.Email, s.Message, s.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// List returns the newest submissions first
func (r *SubmissionRepository) List(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, error) {
	query := `SELECT id, kind, name, email, message, created_at FROM submissions`

	var conditions []string
	var args []interface{}
	if filter.Kind != "" {
		conditions = append(conditions, "kind = ?")
		args = append(args, string(filter.Kind))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	query += " ORDER BY created_at DESC, id LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var result []models.Submission
	for rows.Next() {
		var s models.Submission
		var kind string
		if err := rows.Scan(&s.ID, &kind, &s.Name, &s.Email, &s.Message, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		s.Kind = models.SubmissionKind(kind)
		result = append(result, s)
	}
	return result, rows.Err()
}

// Count returns the number of stored submissions of a kind, or of every kind
func (r *SubmissionRepository) Count(ctx context.Context, kind models.SubmissionKind) (int64, error) {
	query := "SELECT COUNT(*) FROM submissions"
	var args []interface{}
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, string(kind))
	}

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return n, nil
}
