package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status classifies either a single test result or the aggregate verdict.
type Status string

const (
	StatusAccepted         Status = "ACCEPTED"
	StatusWrongAnswer      Status = "WRONG_ANSWER"
	StatusCompilationError Status = "COMPILATION_ERROR"
	StatusRuntimeError     Status = "RUNTIME_ERROR"
	StatusTimedOut         Status = "TIMED_OUT"
	StatusTransportError   Status = "TRANSPORT_ERROR"
	StatusCancelled        Status = "CANCELLED"
)

// TestResult is the outcome of one test case against one execution response.
type TestResult struct {
	Label          string
	Passed         bool
	Classification Status
	Message        string
	TimeMs         int64
	MemoryKb       int64
}

// Verdict is the aggregate, terminal outcome of judging one submission.
// TestResults preserves test-case order; it may be shorter than the supplied
// test-case set when evaluation short-circuited on a compilation error or was
// cancelled.
type Verdict struct {
	SubmissionID   uuid.UUID
	Status         Status
	TestResults    []TestResult
	SummaryMessage string
	CompletedAt    time.Time
}
