package judge

import (
	"context"
	"fmt"
	"time"

	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/primary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/secondary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
	"github.com/gwc-sys/StackHack.live-sub000/internal/static/errs"
)

// TestCaseRunner executes one submission's code against an ordered sequence of
// test cases. Execution within a submission is sequential: ordering in the
// result sequence must match the supplied test cases, and the compile
// short-circuit depends on seeing results in order. Independent submissions
// run their own runners concurrently.
type TestCaseRunner struct {
	executor    secondary.ExecutionClient
	runtimes    map[domain.Language]int
	testTimeout time.Duration
	logger      primary.Logger
}

// NewTestCaseRunner creates a new test case runner
func NewTestCaseRunner(
	executor secondary.ExecutionClient,
	runtimes map[domain.Language]int,
	testTimeout time.Duration,
	logger primary.Logger,
) *TestCaseRunner {
	return &TestCaseRunner{
		executor:    executor,
		runtimes:    runtimes,
		testTimeout: testTimeout,
		logger:      logger,
	}
}

// RunAll evaluates every test case in order and returns the per-test results.
//
// A CompilationError result stops iteration immediately: compilation happens
// once conceptually, and every later test case would fail with the same
// diagnostic, so the extra remote calls are pointless. No other outcome
// short-circuits; a wrong answer or crash on one test case still leaves the
// rest evaluated so the caller can report full diagnostics.
//
// When ctx is cancelled between test cases, the results computed so far are
// returned alongside the context error.
func (r *TestCaseRunner) RunAll(ctx context.Context, submission *domain.Submission, testCases []*domain.TestCase) ([]domain.TestResult, error) {
	runtimeID, ok := r.runtimes[submission.Language]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedLanguage, submission.Language)
	}

	results := make([]domain.TestResult, 0, len(testCases))
	for _, testCase := range testCases {
		if err := ctx.Err(); err != nil {
			r.logger.Info("judging abandoned mid-run",
				"submission_id", submission.ID,
				"completed_tests", len(results),
				"error", err)
			return results, err
		}

		req := &domain.ExecutionRequest{
			SourceCode: submission.SourceCode,
			RuntimeID:  runtimeID,
			Stdin:      testCase.Input,
		}
		resp := r.executor.Execute(ctx, req, r.testTimeout)

		result := InterpretResponse(resp, testCase)
		results = append(results, result)

		r.logger.Debug("test case evaluated",
			"submission_id", submission.ID,
			"label", testCase.Label,
			"classification", result.Classification,
			"passed", result.Passed)

		if result.Classification == domain.StatusCompilationError {
			break
		}
	}

	return results, nil
}
