package repository

import (
	"context"

	"github.com/RAFA-RIKI/first-site-i-made/internal/core/domain"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) error
	FindByID(ctx context.Context, id int64) (*domain.Submission, error)
	Delete(ctx context.Context, id int64) error
	ListNewestFirst(ctx context.Context) ([]*domain.Submission, error)
}
