package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RAFA-RIKI/first-site-i-made/internal/core/domain"
	"github.com/RAFA-RIKI/first-site-i-made/internal/core/repository"
)

type submissionRepository struct {
	db *DB
}

func NewSubmissionRepository(db *DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	query := `
		INSERT INTO submission (user_id, name, age, submitted_by, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		submission.UserID,
		submission.Name,
		submission.Age,
		submission.SubmittedBy,
		submission.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get submission id: %w", err)
	}
	submission.ID = id

	return nil
}

func (r *submissionRepository) FindByID(ctx context.Context, id int64) (*domain.Submission, error) {
	query := `
		SELECT id, user_id, name, age, submitted_by, created_at
		FROM submission
		WHERE id = ?
	`
	var submission domain.Submission
	err := r.db.GetContext(ctx, &submission, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find submission: %w", err)
	}
	return &submission, nil
}

// Delete removes a submission inside a transaction; any failure rolls back
// and leaves the row intact.
func (r *submissionRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM submission WHERE id = ?`, id)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		_ = tx.Rollback()
		return repository.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}

func (r *submissionRepository) ListNewestFirst(ctx context.Context) ([]*domain.Submission, error) {
	query := `
		SELECT id, user_id, name, age, submitted_by, created_at
		FROM submission
		ORDER BY id DESC
	`
	var submissions []*domain.Submission
	err := r.db.SelectContext(ctx, &submissions, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}
