package judge

import (
	"fmt"
	"strings"

	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
)

// InterpretResponse maps one raw execution response plus a test case's
// expected output onto a normalized test result.
//
// A single response can carry several non-empty fields at once depending on
// the backend's mood, so classification follows a fixed precedence, first
// match wins:
//
//  1. transport failure
//  2. backend-reported time limit exceeded
//  3. compile output
//  4. stderr
//  5. stdout comparison
//  6. empty response
//
// Output comparison is exact string equality after trimming leading and
// trailing whitespace only. Internal whitespace, line endings, and case must
// match; there is no floating-point tolerance or structural comparison.
func InterpretResponse(resp *domain.ExecutionResponse, testCase *domain.TestCase) domain.TestResult {
	result := domain.TestResult{Label: testCase.Label}
	if resp.TimeMs != nil {
		result.TimeMs = *resp.TimeMs
	}
	if resp.MemoryKb != nil {
		result.MemoryKb = *resp.MemoryKb
	}

	switch {
	case resp.TransportErr != nil:
		result.Classification = domain.StatusTransportError
		result.Message = fmt.Sprintf("execution backend unreachable: %v", resp.TransportErr)
	case resp.TimedOut:
		result.Classification = domain.StatusTimedOut
		result.Message = "time limit exceeded"
	case resp.CompileOutput != nil && *resp.CompileOutput != "":
		result.Classification = domain.StatusCompilationError
		result.Message = *resp.CompileOutput
	case resp.Stderr != nil && *resp.Stderr != "":
		result.Classification = domain.StatusRuntimeError
		result.Message = *resp.Stderr
	case resp.Stdout != nil:
		got := strings.TrimSpace(*resp.Stdout)
		want := strings.TrimSpace(testCase.ExpectedOutput)
		if got == want {
			result.Passed = true
			result.Classification = domain.StatusAccepted
			result.Message = "OK"
		} else {
			result.Classification = domain.StatusWrongAnswer
			result.Message = fmt.Sprintf("Expected: %s, Got: %s", want, got)
		}
	default:
		result.Classification = domain.StatusRuntimeError
		result.Message = "no output produced"
	}

	return result
}
