package domain

import "time"

type Submission struct {
	ID     int64  `db:"id"`
	UserID int64  `db:"user_id"`
	Name   string `db:"name"`
	Age    int    `db:"age"`
	// SubmittedBy is a snapshot of the submitter's display name at creation
	// time, independent of later user changes.
	SubmittedBy string    `db:"submitted_by"`
	CreatedAt   time.Time `db:"created_at"`
}

func NewSubmission(userID int64, name string, age int, submittedBy string) *Submission {
	return &Submission{
		UserID:      userID,
		Name:        name,
		Age:         age,
		SubmittedBy: submittedBy,
		CreatedAt:   time.Now(),
	}
}
