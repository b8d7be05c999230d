package domain

// TestCase is one input/expected-output pair belonging to a problem.
// Expected-output comparison is whitespace-trimmed exact match.
type TestCase struct {
	Input          string
	ExpectedOutput string
	Label          string
	IsSample       bool
}
