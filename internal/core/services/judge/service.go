package judge

import (
	"context"

	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
)

// IJudgeService judges submissions. One call judges one submission against the
// supplied test cases and returns its terminal verdict.
//
// Test-case selection is the caller's policy: Run mode should be handed only
// sample test cases, since evaluating hidden tests on an ungraded run would
// leak problem answers through the per-test diagnostics.
type IJudgeService interface {
	Judge(ctx context.Context, submission *domain.Submission, testCases []*domain.TestCase) (*domain.Verdict, error)
}
