package judge_test

import (
	"context"
	"sync"
	"time"

	"github.com/gwc-sys/StackHack.live-sub000/internal/config"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/services/judge"
	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

// fakeExecutor scripts execution responses keyed off the request. Calls are
// recorded in order.
type fakeExecutor struct {
	mu      sync.Mutex
	calls   []domain.ExecutionRequest
	respond func(req *domain.ExecutionRequest) *domain.ExecutionResponse
}

func (f *fakeExecutor) Execute(_ context.Context, req *domain.ExecutionRequest, _ time.Duration) *domain.ExecutionResponse {
	f.mu.Lock()
	f.calls = append(f.calls, *req)
	f.mu.Unlock()
	return f.respond(req)
}

func (f *fakeExecutor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeProgress struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeProgress) ReportSolved(_ context.Context, problemID string) error {
	f.mu.Lock()
	f.calls = append(f.calls, problemID)
	f.mu.Unlock()
	return f.err
}

func (f *fakeProgress) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// echoExecutor responds with stdout equal to stdin, which makes "expected ==
// input" test cases pass and everything else fail.
func echoExecutor() *fakeExecutor {
	return &fakeExecutor{respond: func(req *domain.ExecutionRequest) *domain.ExecutionResponse {
		out := req.Stdin
		return &domain.ExecutionResponse{Stdout: &out}
	}}
}

func testConfigs() (*config.ExecutionConfig, *config.JudgeConfig) {
	execCfg := &config.ExecutionConfig{
		BaseURL:     "http://localhost:2358",
		TestTimeout: time.Second,
		MaxInFlight: 4,
	}
	judgeCfg := &config.JudgeConfig{
		Runtimes: map[domain.Language]int{
			domain.LanguagePython: 71,
			domain.LanguageGo:     60,
		},
		ProgressTimeout: time.Second,
	}
	return execCfg, judgeCfg
}

func newService(executor *fakeExecutor, progress *fakeProgress) *judge.JudgeService {
	execCfg, judgeCfg := testConfigs()
	return judge.NewJudgeService(executor, progress, execCfg, judgeCfg, nopLogger{})
}

func newSubmission(mode domain.Mode) *domain.Submission {
	return domain.NewSubmission("two-sum", "print(input())", domain.LanguagePython, mode)
}

func sampleCases(inputs ...string) []*domain.TestCase {
	cases := make([]*domain.TestCase, 0, len(inputs))
	for i, in := range inputs {
		cases = append(cases, &domain.TestCase{
			Input:          in,
			ExpectedOutput: in,
			Label:          "case " + string(rune('1'+i)),
			IsSample:       true,
		})
	}
	return cases
}
