package execution

// wireRequest is the execution backend's submission payload.
type wireRequest struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin,omitempty"`
}

// wireResponse is the backend's execution result. Fields are pointers because
// the backend nulls whichever streams a run did not produce; Time is a string
// of seconds (e.g. "0.013") and Memory is in kilobytes.
type wireResponse struct {
	Stdout        *string     `json:"stdout"`
	Stderr        *string     `json:"stderr"`
	CompileOutput *string     `json:"compile_output"`
	Time          *string     `json:"time"`
	Memory        *int64      `json:"memory"`
	Status        *wireStatus `json:"status"`
}

type wireStatus struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// Backend status id for "Time Limit Exceeded". The rest of the status table is
// deliberately ignored: classification trusts the raw output fields, not the
// backend's status string.
const statusTimeLimitExceeded = 5
