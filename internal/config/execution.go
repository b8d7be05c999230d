package config

import (
	"strconv"
	"time"
)

// ExecutionConfig configures the client for the remote multi-language
// execution backend.
type ExecutionConfig struct {
	BaseURL string
	APIKey  string
	// TestTimeout bounds one whole remote call, not just program runtime.
	TestTimeout time.Duration
	// MaxInFlight bounds concurrent outbound execution calls across all
	// submissions being judged.
	MaxInFlight int
}

func NewExecutionConfig() *ExecutionConfig {
	timeoutSec, err := strconv.Atoi(getEnv("EXECUTION_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 10
	}
	maxInFlight, err := strconv.Atoi(getEnv("EXECUTION_MAX_IN_FLIGHT", "8"))
	if err != nil || maxInFlight <= 0 {
		maxInFlight = 8
	}
	return &ExecutionConfig{
		BaseURL:     getEnv("EXECUTION_BASE_URL", "http://localhost:2358"),
		APIKey:      getEnv("EXECUTION_API_KEY", ""),
		TestTimeout: time.Duration(timeoutSec) * time.Second,
		MaxInFlight: maxInFlight,
	}
}
