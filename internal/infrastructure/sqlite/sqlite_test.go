package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/RAFA-RIKI/first-site-i-made/internal/core/domain"
	"github.com/RAFA-RIKI/first-site-i-made/internal/core/repository"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.ApplyMigrations(); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	return db
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := db.ApplyMigrations(); err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
}

func TestUniqueEmailConstraint(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, domain.NewUser("Ada", "ada@x.com", "hash")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	err := repo.Create(ctx, domain.NewUser("Other", "ada@x.com", "hash2"))
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestSubmissionDeleteRollsBackOnMissingRow(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	subs := NewSubmissionRepository(db)
	ctx := context.Background()

	ada := domain.NewUser("Ada", "ada@x.com", "hash")
	if err := users.Create(ctx, ada); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	sub := domain.NewSubmission(ada.ID, "Grace", 37, "Ada")
	if err := subs.Create(ctx, sub); err != nil {
		t.Fatalf("failed to create submission: %v", err)
	}

	if err := subs.Delete(ctx, sub.ID+1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// The existing row survives the rolled-back delete.
	if _, err := subs.FindByID(ctx, sub.ID); err != nil {
		t.Fatalf("expected existing submission to survive, got %v", err)
	}
}
