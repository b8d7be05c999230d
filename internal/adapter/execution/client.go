package execution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/gwc-sys/StackHack.live-sub000/internal/config"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/primary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/secondary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
)

var _ secondary.ExecutionClient = (*Client)(nil)

// Client implements the ExecutionClient port against a Judge0-class HTTP
// backend. Outbound calls across all submissions share a weighted semaphore so
// the remote service's capacity is the only queue this core leans on.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	inflight   *semaphore.Weighted
	logger     primary.Logger
}

// NewClient creates a new execution backend client
func NewClient(cfg *config.ExecutionConfig, logger primary.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{},
		inflight:   semaphore.NewWeighted(int64(cfg.MaxInFlight)),
		logger:     logger,
	}
}

// Execute runs one program against one stdin on the backend. Transport
// failures never escape as Go errors; they come back inside the response as
// TransportErr so callers cannot mistake backend downtime for a wrong answer.
func (c *Client) Execute(ctx context.Context, req *domain.ExecutionRequest, timeout time.Duration) *domain.ExecutionResponse {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := c.inflight.Acquire(ctx, 1); err != nil {
		return transportFailure(fmt.Errorf("waiting for execution slot: %w", err))
	}
	defer c.inflight.Release(1)

	body, err := json.Marshal(wireRequest{
		SourceCode: req.SourceCode,
		LanguageID: req.RuntimeID,
		Stdin:      req.Stdin,
	})
	if err != nil {
		return transportFailure(fmt.Errorf("failed to marshal execution request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/submissions?wait=true", bytes.NewReader(body))
	if err != nil {
		return transportFailure(fmt.Errorf("failed to build execution request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("X-Auth-Token", c.apiKey)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("execution backend call failed", "error", err)
		return transportFailure(err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		c.logger.Warn("execution backend returned error status",
			"status", httpResp.StatusCode,
			"body", string(snippet))
		return transportFailure(fmt.Errorf("execution backend returned status %d", httpResp.StatusCode))
	}

	var wire wireResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&wire); err != nil {
		c.logger.Warn("failed to decode execution backend response", "error", err)
		return transportFailure(fmt.Errorf("failed to decode execution response: %w", err))
	}

	return fromWire(&wire)
}

func transportFailure(err error) *domain.ExecutionResponse {
	return &domain.ExecutionResponse{TransportErr: err}
}

// fromWire normalizes the backend's loosely typed response shape.
func fromWire(wire *wireResponse) *domain.ExecutionResponse {
	resp := &domain.ExecutionResponse{
		Stdout:        wire.Stdout,
		Stderr:        wire.Stderr,
		CompileOutput: wire.CompileOutput,
		MemoryKb:      wire.Memory,
	}
	if wire.Time != nil {
		if seconds, err := strconv.ParseFloat(*wire.Time, 64); err == nil {
			ms := int64(seconds * 1000)
			resp.TimeMs = &ms
		}
	}
	if wire.Status != nil && wire.Status.ID == statusTimeLimitExceeded {
		resp.TimedOut = true
	}
	return resp
}
