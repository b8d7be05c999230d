// package problemrepository contains the PostgreSQL test-case source
package problemrepository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/primary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/secondary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
)

var _ secondary.ProblemRepository = (*ProblemRepository)(nil)

// ProblemRepository implements the ProblemRepository interface with PostgreSQL
type ProblemRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewProblemRepository creates a new PostgreSQL problem repository
func NewProblemRepository(db *sqlx.DB, logger primary.Logger) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		logger: logger,
	}
}

type testCaseRow struct {
	Input          string `db:"input"`
	ExpectedOutput string `db:"expected_output"`
	Label          string `db:"label"`
	IsSample       bool   `db:"is_sample"`
}

// GetTestCases retrieves the full test-case set for a problem, in
// problem-author order.
func (r *ProblemRepository) GetTestCases(ctx context.Context, problemID string) ([]*domain.TestCase, error) {
	query := `
		SELECT input, expected_output, label, is_sample
		FROM test_cases
		WHERE problem_id = $1
		ORDER BY ord
	`
	return r.selectTestCases(ctx, query, problemID)
}

// GetSampleTestCases retrieves only the visible sample test cases.
func (r *ProblemRepository) GetSampleTestCases(ctx context.Context, problemID string) ([]*domain.TestCase, error) {
	query := `
		SELECT input, expected_output, label, is_sample
		FROM test_cases
		WHERE problem_id = $1 AND is_sample = TRUE
		ORDER BY ord
	`
	return r.selectTestCases(ctx, query, problemID)
}

func (r *ProblemRepository) selectTestCases(ctx context.Context, query, problemID string) ([]*domain.TestCase, error) {
	var rows []testCaseRow
	if err := r.db.SelectContext(ctx, &rows, query, problemID); err != nil {
		r.logger.Error("Failed to select test cases", "problem_id", problemID, "error", err)
		return nil, fmt.Errorf("failed to select test cases: %w", err)
	}

	testCases := make([]*domain.TestCase, 0, len(rows))
	for _, row := range rows {
		testCases = append(testCases, &domain.TestCase{
			Input:          row.Input,
			ExpectedOutput: row.ExpectedOutput,
			Label:          row.Label,
			IsSample:       row.IsSample,
		})
	}

	return testCases, nil
}
