package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAFA-RIKI/first-site-i-made/internal/core/domain"
	"github.com/RAFA-RIKI/first-site-i-made/internal/core/repository"
	"github.com/RAFA-RIKI/first-site-i-made/internal/infrastructure/sqlite"
)

type submissionFixture struct {
	svc     *SubmissionService
	subRepo repository.SubmissionRepository
	ada     *domain.User
	grace   *domain.User
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.ApplyMigrations())

	userRepo := sqlite.NewUserRepository(db)
	subRepo := sqlite.NewSubmissionRepository(db)

	ctx := context.Background()
	ada := domain.NewUser("Ada", "ada@x.com", "hash")
	require.NoError(t, userRepo.Create(ctx, ada))
	grace := domain.NewUser("Grace", "grace@x.com", "hash")
	require.NoError(t, userRepo.Create(ctx, grace))

	return &submissionFixture{
		svc:     NewSubmissionService(subRepo),
		subRepo: subRepo,
		ada:     ada,
		grace:   grace,
	}
}

func TestListNewestFirst(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.ada.ID, "Alan", 41, "Ada")
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, f.ada.ID, "Barbara", 38, "Ada")
	require.NoError(t, err)
	third, err := f.svc.Create(ctx, f.grace.ID, "Edsger", 52, "Grace")
	require.NoError(t, err)

	submissions, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, submissions, 3)
	assert.Equal(t, third.ID, submissions[0].ID)
	assert.Equal(t, second.ID, submissions[1].ID)
	assert.Equal(t, first.ID, submissions[2].ID)
}

func TestDeleteByForeignUserLeavesRowIntact(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()

	sub, err := f.svc.Create(ctx, f.ada.ID, "Alan", 41, "Ada")
	require.NoError(t, err)

	_, err = f.svc.Delete(ctx, sub.ID, f.grace.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	kept, err := f.subRepo.FindByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, kept.ID)
}

func TestDeleteByOwnerRemovesExactlyThatRow(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()

	doomed, err := f.svc.Create(ctx, f.ada.ID, "Alan", 41, "Ada")
	require.NoError(t, err)
	kept, err := f.svc.Create(ctx, f.ada.ID, "Barbara", 38, "Ada")
	require.NoError(t, err)

	deleted, err := f.svc.Delete(ctx, doomed.ID, f.ada.ID)
	require.NoError(t, err)
	assert.Equal(t, doomed.ID, deleted.ID)
	assert.Equal(t, "Alan", deleted.Name)

	_, err = f.subRepo.FindByID(ctx, doomed.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	remaining, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}

func TestDeleteMissingSubmission(t *testing.T) {
	f := newSubmissionFixture(t)

	_, err := f.svc.Delete(context.Background(), 9999, f.ada.ID)
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}
