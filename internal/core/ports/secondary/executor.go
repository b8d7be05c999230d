package secondary

import (
	"context"
	"time"

	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
)

// ExecutionClient runs one program against one stdin on the remote execution
// backend. The timeout bounds the whole remote call, not just program runtime.
//
// Execute never returns a Go error: transport failures come back inside the
// response as TransportErr, forcing every caller to handle them explicitly
// instead of conflating them with program failures. The client performs no
// retries; retry policy needs caller context (a timed-out attempt is more
// likely an infinite loop in submitted code than a transient fault).
type ExecutionClient interface {
	Execute(ctx context.Context, req *domain.ExecutionRequest, timeout time.Duration) *domain.ExecutionResponse
}
