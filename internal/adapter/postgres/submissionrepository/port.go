// package submissionrepository contains the PostgreSQL submission audit log
package submissionrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/primary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/secondary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
	"github.com/gwc-sys/StackHack.live-sub000/internal/static/errs"
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository implements the SubmissionRepository interface with
// PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSubmission saves a submission to PostgreSQL
func (r *SubmissionRepository) SaveSubmission(ctx context.Context, submission *domain.Submission) error {
	query := `
		INSERT INTO submissions (
			id, problem_id, language, source_code, mode, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		submission.ID,
		submission.ProblemID,
		submission.Language,
		submission.SourceCode,
		submission.Mode,
		submission.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save submission", "submission_id", submission.ID, "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// SaveVerdict saves a verdict to PostgreSQL. The per-test results are stored
// as a JSON column alongside the aggregate status.
func (r *SubmissionRepository) SaveVerdict(ctx context.Context, verdict *domain.Verdict) error {
	resultsJSON, err := json.Marshal(verdict.TestResults)
	if err != nil {
		r.logger.Error("Failed to marshal test results", "submission_id", verdict.SubmissionID, "error", err)
		return fmt.Errorf("failed to marshal test results: %w", err)
	}

	query := `
		INSERT INTO verdicts (
			submission_id, status, test_results, summary_message, completed_at
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (submission_id) DO UPDATE SET
			status = EXCLUDED.status,
			test_results = EXCLUDED.test_results,
			summary_message = EXCLUDED.summary_message,
			completed_at = EXCLUDED.completed_at
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		verdict.SubmissionID,
		verdict.Status,
		resultsJSON,
		verdict.SummaryMessage,
		verdict.CompletedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save verdict", "submission_id", verdict.SubmissionID, "error", err)
		return fmt.Errorf("failed to save verdict: %w", err)
	}

	return nil
}

// GetVerdict retrieves a verdict from PostgreSQL by submission ID
func (r *SubmissionRepository) GetVerdict(ctx context.Context, submissionID uuid.UUID) (*domain.Verdict, error) {
	query := `
		SELECT submission_id, status, test_results, summary_message, completed_at
		FROM verdicts
		WHERE submission_id = $1
	`

	var (
		verdict     domain.Verdict
		resultsJSON []byte
		completedAt time.Time
	)
	err := r.db.QueryRowContext(ctx, query, submissionID).Scan(
		&verdict.SubmissionID,
		&verdict.Status,
		&resultsJSON,
		&verdict.SummaryMessage,
		&completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrSubmissionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get verdict", "submission_id", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get verdict: %w", err)
	}

	if err := json.Unmarshal(resultsJSON, &verdict.TestResults); err != nil {
		return nil, fmt.Errorf("failed to unmarshal test results: %w", err)
	}
	verdict.CompletedAt = completedAt

	return &verdict, nil
}
