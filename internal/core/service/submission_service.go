package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RAFA-RIKI/first-site-i-made/internal/core/domain"
	"github.com/RAFA-RIKI/first-site-i-made/internal/core/repository"
)

type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
}

func NewSubmissionService(submissionRepo repository.SubmissionRepository) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
	}
}

// List returns all submissions, most recent first.
func (s *SubmissionService) List(ctx context.Context) ([]*domain.Submission, error) {
	submissions, err := s.submissionRepo.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// Create persists a new submission owned by the given user.
func (s *SubmissionService) Create(ctx context.Context, userID int64, name string, age int, submittedBy string) (*domain.Submission, error) {
	submission := domain.NewSubmission(userID, name, age, submittedBy)
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return submission, nil
}

// Delete removes a submission after checking that userID owns it. The
// deleted submission is returned so callers can name it in messages.
func (s *SubmissionService) Delete(ctx context.Context, id, userID int64) (*domain.Submission, error) {
	submission, err := s.submissionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to find submission: %w", err)
	}

	if submission.UserID != userID {
		return nil, ErrNotOwner
	}

	if err := s.submissionRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete submission: %w", err)
	}

	return submission, nil
}
