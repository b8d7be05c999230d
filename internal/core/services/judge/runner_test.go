package judge_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwc-sys/StackHack.live-sub000/internal/core/services/judge"
	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
	"github.com/gwc-sys/StackHack.live-sub000/internal/static/errs"
)

func newRunner(executor *fakeExecutor) *judge.TestCaseRunner {
	_, judgeCfg := testConfigs()
	return judge.NewTestCaseRunner(executor, judgeCfg.Runtimes, time.Second, nopLogger{})
}

func TestRunAllPreservesTestCaseOrder(t *testing.T) {
	executor := echoExecutor()
	runner := newRunner(executor)
	testCases := sampleCases("a", "b", "c")

	results, err := runner.RunAll(context.Background(), newSubmission(domain.ModeRun), testCases)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, result := range results {
		assert.Equal(t, testCases[i].Label, result.Label)
		assert.True(t, result.Passed)
	}
	assert.Equal(t, 3, executor.callCount())
}

func TestRunAllShortCircuitsOnCompilationError(t *testing.T) {
	executor := &fakeExecutor{respond: func(*domain.ExecutionRequest) *domain.ExecutionResponse {
		return &domain.ExecutionResponse{CompileOutput: strPtr("syntax error line 3")}
	}}
	runner := newRunner(executor)

	results, err := runner.RunAll(context.Background(), newSubmission(domain.ModeSubmit), sampleCases("a", "b", "c", "d", "e"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.StatusCompilationError, results[0].Classification)
	assert.Equal(t, 1, executor.callCount())
}

func TestRunAllDoesNotShortCircuitOnWrongAnswer(t *testing.T) {
	executor := &fakeExecutor{respond: func(req *domain.ExecutionRequest) *domain.ExecutionResponse {
		out := req.Stdin
		if req.Stdin == "b" {
			out = "not b"
		}
		return &domain.ExecutionResponse{Stdout: &out}
	}}
	runner := newRunner(executor)

	results, err := runner.RunAll(context.Background(), newSubmission(domain.ModeSubmit), sampleCases("a", "b", "c"))
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.True(t, results[0].Passed)
	assert.False(t, results[1].Passed)
	assert.True(t, results[2].Passed)
}

func TestRunAllDoesNotShortCircuitOnTransportError(t *testing.T) {
	call := 0
	executor := &fakeExecutor{respond: func(req *domain.ExecutionRequest) *domain.ExecutionResponse {
		call++
		if call == 1 {
			return &domain.ExecutionResponse{TransportErr: context.DeadlineExceeded}
		}
		out := req.Stdin
		return &domain.ExecutionResponse{Stdout: &out}
	}}
	runner := newRunner(executor)

	results, err := runner.RunAll(context.Background(), newSubmission(domain.ModeSubmit), sampleCases("a", "b"))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, domain.StatusTransportError, results[0].Classification)
	assert.True(t, results[1].Passed)
}

func TestRunAllStopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	executor := &fakeExecutor{respond: func(req *domain.ExecutionRequest) *domain.ExecutionResponse {
		// cancel while the first test case is in flight
		cancel()
		out := req.Stdin
		return &domain.ExecutionResponse{Stdout: &out}
	}}
	runner := newRunner(executor)

	results, err := runner.RunAll(ctx, newSubmission(domain.ModeSubmit), sampleCases("a", "b", "c"))
	require.ErrorIs(t, err, context.Canceled)
	// the first result was already computed and must survive cancellation
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
	assert.Equal(t, 1, executor.callCount())
}

func TestRunAllRejectsUnknownRuntime(t *testing.T) {
	runner := newRunner(echoExecutor())
	submission := domain.NewSubmission("two-sum", "fn main() {}", domain.Language("rust"), domain.ModeRun)

	_, err := runner.RunAll(context.Background(), submission, sampleCases("a"))
	require.ErrorIs(t, err, errs.ErrUnsupportedLanguage)
}
