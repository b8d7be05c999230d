package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
)

// JudgeConfig holds judging policy plus the external language -> runtime id
// mapping table for the execution backend.
type JudgeConfig struct {
	// Runtimes maps a supported language to the backend's versioned runtime id.
	Runtimes map[domain.Language]int
	// ProgressTimeout bounds the best-effort progress-store call made after an
	// accepted graded submission.
	ProgressTimeout time.Duration
}

func NewJudgeConfig() *JudgeConfig {
	cfg := &JudgeConfig{
		Runtimes: map[domain.Language]int{
			domain.LanguagePython:     71,
			domain.LanguageJavaScript: 63,
			domain.LanguageJava:       62,
			domain.LanguageCpp:        54,
			domain.LanguageGo:         60,
		},
		ProgressTimeout: 5 * time.Second,
	}

	// RUNTIME_OVERRIDES has the form "python=92,go=95" and patches individual
	// runtime ids without redeploying.
	overrides := getEnv("RUNTIME_OVERRIDES", "")
	if overrides != "" {
		for _, pair := range strings.Split(overrides, ",") {
			parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
			if len(parts) != 2 {
				continue
			}
			id, err := strconv.Atoi(parts[1])
			if err != nil {
				continue
			}
			cfg.Runtimes[domain.Language(parts[0])] = id
		}
	}

	return cfg
}
