package errs

import "errors"

var (
	// ErrNoTestCases means the caller supplied an empty test-case set. This is
	// a caller bug, never a grading outcome: an empty set must not judge as
	// accepted.
	ErrNoTestCases = errors.New("no test cases supplied")

	ErrEmptySourceCode     = errors.New("submission source code is empty")
	ErrUnsupportedLanguage = errors.New("unsupported submission language")

	// ErrJudgingStarted means Start was called twice on the same orchestration.
	// Each submission gets its own orchestration instance.
	ErrJudgingStarted = errors.New("judging already started for this submission")

	ErrSubmissionNotFound = errors.New("submission not found")
)
