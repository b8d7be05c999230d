package secondary

import (
	"context"

	"github.com/google/uuid"

	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
)

// SubmissionRepository is the audit log for judged submissions.
type SubmissionRepository interface {
	// SaveSubmission saves a submission
	SaveSubmission(ctx context.Context, submission *domain.Submission) error

	// SaveVerdict saves the verdict computed for a submission
	SaveVerdict(ctx context.Context, verdict *domain.Verdict) error

	// GetVerdict retrieves the verdict for a submission by ID
	GetVerdict(ctx context.Context, submissionID uuid.UUID) (*domain.Verdict, error)
}
