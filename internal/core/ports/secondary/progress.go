package secondary

import "context"

// ProgressReporter records that a problem was solved. Fire-and-forget from the
// judging core's perspective: a failure here must never alter an already
// finalized verdict.
type ProgressReporter interface {
	ReportSolved(ctx context.Context, problemID string) error
}
