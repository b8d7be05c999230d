package judge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gwc-sys/StackHack.live-sub000/internal/config"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/primary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/secondary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
	"github.com/gwc-sys/StackHack.live-sub000/internal/static/errs"
)

// State is the lifecycle state of one submission's judging run.
type State string

const (
	StateIdle      State = "IDLE"
	StateRunning   State = "RUNNING"
	StateCompleted State = "COMPLETED"
	StateFailed    State = "FAILED"
	StateCancelled State = "CANCELLED"
)

var _ IJudgeService = (*JudgeService)(nil)

// JudgeService implements the IJudgeService interface. It holds no per-
// submission state; each Judge call runs an independent orchestration, so
// concurrent submissions need no coordination beyond the execution client's
// outbound limit.
type JudgeService struct {
	runner          *TestCaseRunner
	progress        secondary.ProgressReporter
	progressTimeout time.Duration
	logger          primary.Logger
}

// NewJudgeService creates a new judge service
func NewJudgeService(
	executor secondary.ExecutionClient,
	progress secondary.ProgressReporter,
	execCfg *config.ExecutionConfig,
	judgeCfg *config.JudgeConfig,
	logger primary.Logger,
) *JudgeService {
	return &JudgeService{
		runner:          NewTestCaseRunner(executor, judgeCfg.Runtimes, execCfg.TestTimeout, logger),
		progress:        progress,
		progressTimeout: judgeCfg.ProgressTimeout,
		logger:          logger,
	}
}

// Judge runs one submission through a fresh orchestration.
func (s *JudgeService) Judge(ctx context.Context, submission *domain.Submission, testCases []*domain.TestCase) (*domain.Verdict, error) {
	return s.NewOrchestration(submission).Start(ctx, testCases)
}

// Orchestration owns the judging lifecycle of a single submission:
// Idle -> Running -> (Completed | Failed | Cancelled). Completed covers every
// grading outcome, including compilation errors and wrong answers; Failed is
// reserved for orchestrator-internal problems such as an empty test-case set
// or a malformed submission.
type Orchestration struct {
	svc        *JudgeService
	submission *domain.Submission

	mu    sync.Mutex
	state State
}

// NewOrchestration creates the orchestration for one submission. Instances are
// single-use: Start may be called exactly once.
func (s *JudgeService) NewOrchestration(submission *domain.Submission) *Orchestration {
	return &Orchestration{
		svc:        s,
		submission: submission,
		state:      StateIdle,
	}
}

// State returns the current lifecycle state.
func (o *Orchestration) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestration) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// Start transitions Idle -> Running, evaluates the test cases, and finalizes
// the verdict. The verdict is terminal; callers get either a verdict or an
// orchestration error, never both.
func (o *Orchestration) Start(ctx context.Context, testCases []*domain.TestCase) (*domain.Verdict, error) {
	o.mu.Lock()
	if o.state != StateIdle {
		o.mu.Unlock()
		return nil, errs.ErrJudgingStarted
	}
	o.state = StateRunning
	o.mu.Unlock()

	submission := o.submission

	if strings.TrimSpace(submission.SourceCode) == "" {
		o.setState(StateFailed)
		return nil, errs.ErrEmptySourceCode
	}
	if !submission.Language.Supported() {
		o.setState(StateFailed)
		return nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedLanguage, submission.Language)
	}
	if len(testCases) == 0 {
		// Caller bug: an empty set must never silently judge as accepted.
		o.svc.logger.Error("judging requested with no test cases",
			"submission_id", submission.ID,
			"problem_id", submission.ProblemID)
		o.setState(StateFailed)
		return nil, errs.ErrNoTestCases
	}

	o.svc.logger.Info("judging started",
		"submission_id", submission.ID,
		"problem_id", submission.ProblemID,
		"mode", submission.Mode,
		"test_cases", len(testCases))

	results, err := o.svc.runner.RunAll(ctx, submission, testCases)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			o.setState(StateCancelled)
			return &domain.Verdict{
				SubmissionID:   submission.ID,
				Status:         domain.StatusCancelled,
				TestResults:    results,
				SummaryMessage: fmt.Sprintf("judging cancelled after %d of %d test cases", len(results), len(testCases)),
				CompletedAt:    time.Now(),
			}, nil
		}
		o.setState(StateFailed)
		return nil, fmt.Errorf("failed to run test cases: %w", err)
	}

	status := aggregateStatus(results)
	verdict := &domain.Verdict{
		SubmissionID:   submission.ID,
		Status:         status,
		TestResults:    results,
		SummaryMessage: summarize(status, results, len(testCases)),
		CompletedAt:    time.Now(),
	}
	o.setState(StateCompleted)

	o.svc.logger.Info("judging completed",
		"submission_id", submission.ID,
		"status", verdict.Status,
		"test_results", len(results))

	if status == domain.StatusAccepted && submission.Mode == domain.ModeSubmit {
		o.svc.reportProgress(submission.ProblemID)
	}

	return verdict, nil
}

// aggregateStatus folds per-test classifications into the verdict status.
// Precedence: compilation error, then all-passed, then transport errors (so
// the UI can offer a retry instead of blaming the code), then backend time
// limits, then wrong answer. Runtime errors stay in the per-test messages; a
// crash alongside partial success is still a wrong answer from a grading
// perspective.
func aggregateStatus(results []domain.TestResult) domain.Status {
	allPassed := len(results) > 0
	var sawTransport, sawTimeout bool

	for _, result := range results {
		switch result.Classification {
		case domain.StatusCompilationError:
			return domain.StatusCompilationError
		case domain.StatusTransportError:
			sawTransport = true
		case domain.StatusTimedOut:
			sawTimeout = true
		}
		if !result.Passed {
			allPassed = false
		}
	}

	switch {
	case allPassed:
		return domain.StatusAccepted
	case sawTransport:
		return domain.StatusTransportError
	case sawTimeout:
		return domain.StatusTimedOut
	default:
		return domain.StatusWrongAnswer
	}
}

func summarize(status domain.Status, results []domain.TestResult, total int) string {
	if status == domain.StatusCompilationError {
		return "compilation failed"
	}
	passed := 0
	for _, result := range results {
		if result.Passed {
			passed++
		}
	}
	return fmt.Sprintf("%d/%d test cases passed", passed, total)
}

// reportProgress notifies the progress store that the problem was solved.
// Best effort: the verdict is already final, so a failure here is logged and
// discarded. A fresh context is used because the request context may already
// be done by the time the verdict is delivered.
func (s *JudgeService) reportProgress(problemID string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.progressTimeout)
	defer cancel()

	if err := s.progress.ReportSolved(ctx, problemID); err != nil {
		s.logger.Warn("failed to report solved problem", "problem_id", problemID, "error", err)
	}
}
