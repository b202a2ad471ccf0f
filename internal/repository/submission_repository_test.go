package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jengzang/sendnow-backend-go/internal/database"
	"github.com/jengzang/sendnow-backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRepo(t *testing.T) *SubmissionRepository {
	t.Helper()
	db, err := database.Open(context.Background(), database.Config{Path: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSubmissionRepository(db)
}

func TestSubmissionRepository(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	subs := []models.Submission{
		{ID: "1", Kind: models.KindContact, Name: "Ada", Email: "ada@example.com", Message: "Hi", CreatedAt: base},
		{ID: "2", Kind: models.KindNewsletter, Email: "bob@example.com", CreatedAt: base.Add(time.Minute)},
		{ID: "3", Kind: models.KindNewsletter, Email: "cy@example.com", CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range subs {
		require.NoError(t, repo.Create(ctx, &subs[i]))
	}

	total, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	news, err := repo.Count(ctx, models.KindNewsletter)
	require.NoError(t, err)
	assert.EqualValues(t, 2, news)

	list, err := repo.List(ctx, models.SubmissionFilter{Kind: models.KindNewsletter})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "3", list[0].ID, "newest first")
	assert.Equal(t, models.KindNewsletter, list[0].Kind)
	assert.True(t, list[1].CreatedAt.Equal(base.Add(time.Minute)))

	limited, err := repo.List(ctx, models.SubmissionFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "3", limited[0].ID)

	contact, err := repo.List(ctx, models.SubmissionFilter{Kind: models.KindContact})
	require.NoError(t, err)
	require.Len(t, contact, 1)
	assert.Equal(t, "Hi", contact[0].Message)
}

func TestSubmissionRepository_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	s := models.Submission{ID: "dup", Kind: models.KindNewsletter, Email: "a@b", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, &s))
	assert.Error(t, repo.Create(ctx, &s))
}
