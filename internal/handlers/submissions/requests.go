package submissions

import (
	"time"

	"github.com/google/uuid"

	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
)

// JudgeRequest is the body of both run and submit requests.
type JudgeRequest struct {
	ProblemID  string `json:"problem_id"`
	Language   string `json:"language"`
	SourceCode string `json:"source_code"`
}

// TestResultResponse is one per-test line of a verdict.
type TestResultResponse struct {
	Label          string `json:"label"`
	Passed         bool   `json:"passed"`
	Classification string `json:"classification"`
	Message        string `json:"message"`
	TimeMs         int64  `json:"time_ms"`
	MemoryKb       int64  `json:"memory_kb"`
}

// VerdictResponse is the caller-facing verdict.
type VerdictResponse struct {
	SubmissionID   uuid.UUID            `json:"submission_id"`
	Status         string               `json:"status"`
	TestResults    []TestResultResponse `json:"test_results"`
	SummaryMessage string               `json:"summary_message"`
	CompletedAt    time.Time            `json:"completed_at"`
}

func toVerdictResponse(verdict *domain.Verdict) VerdictResponse {
	results := make([]TestResultResponse, 0, len(verdict.TestResults))
	for _, result := range verdict.TestResults {
		results = append(results, TestResultResponse{
			Label:          result.Label,
			Passed:         result.Passed,
			Classification: string(result.Classification),
			Message:        result.Message,
			TimeMs:         result.TimeMs,
			MemoryKb:       result.MemoryKb,
		})
	}
	return VerdictResponse{
		SubmissionID:   verdict.SubmissionID,
		Status:         string(verdict.Status),
		TestResults:    results,
		SummaryMessage: verdict.SummaryMessage,
		CompletedAt:    verdict.CompletedAt,
	}
}
