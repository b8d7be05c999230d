package domain

// ExecutionRequest is the unit of work sent to the execution backend: one
// program run against one stdin.
type ExecutionRequest struct {
	SourceCode string
	RuntimeID  int
	Stdin      string
}

// ExecutionResponse is the raw outcome of one remote execution. Multi-language
// backends return inconsistent shapes, so every field is optional and the
// verdict interpreter applies a fixed precedence instead of trusting any single
// status string.
//
// TransportErr is set when the remote call itself failed (network error,
// client-side timeout). It is data, not a Go error return: "the judge is down"
// must stay distinguishable from "the code is wrong" at every layer.
type ExecutionResponse struct {
	Stdout        *string
	Stderr        *string
	CompileOutput *string
	TimeMs        *int64
	MemoryKb      *int64
	// TimedOut is set when the backend reports the program exceeded its own
	// per-run time limit, as opposed to the HTTP call timing out.
	TimedOut     bool
	TransportErr error
}
