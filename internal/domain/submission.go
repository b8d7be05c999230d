package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mode distinguishes an ungraded editor run from a graded submission.
type Mode string

const (
	ModeRun    Mode = "RUN"
	ModeSubmit Mode = "SUBMIT"
)

// Submission represents one attempt to run or submit code for a problem.
// A submission is immutable once created; a new attempt creates a new one.
type Submission struct {
	ID         uuid.UUID
	ProblemID  string
	Language   Language
	SourceCode string
	Mode       Mode
	CreatedAt  time.Time
}

// NewSubmission creates a new submission
func NewSubmission(problemID, sourceCode string, language Language, mode Mode) *Submission {
	return &Submission{
		ID:         uuid.New(),
		ProblemID:  problemID,
		Language:   language,
		SourceCode: sourceCode,
		Mode:       mode,
		CreatedAt:  time.Now(),
	}
}
