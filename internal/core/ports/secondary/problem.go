package secondary

import (
	"context"

	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
)

// ProblemRepository supplies the test cases belonging to a problem, in
// problem-author order.
type ProblemRepository interface {
	// GetTestCases retrieves the full test-case set for graded submissions.
	GetTestCases(ctx context.Context, problemID string) ([]*domain.TestCase, error)

	// GetSampleTestCases retrieves only the visible sample test cases, used by
	// ungraded runs.
	GetSampleTestCases(ctx context.Context, problemID string) ([]*domain.TestCase, error)
}
