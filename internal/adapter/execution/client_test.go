package execution_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwc-sys/StackHack.live-sub000/internal/adapter/execution"
	"github.com/gwc-sys/StackHack.live-sub000/internal/config"
	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func newTestClient(baseURL string) *execution.Client {
	return execution.NewClient(&config.ExecutionConfig{
		BaseURL:     baseURL,
		APIKey:      "test-key",
		TestTimeout: 2 * time.Second,
		MaxInFlight: 2,
	}, nopLogger{})
}

func execRequest() *domain.ExecutionRequest {
	return &domain.ExecutionRequest{
		SourceCode: "print(input())",
		RuntimeID:  71,
		Stdin:      "5",
	}
}

func TestExecuteMapsSuccessfulResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/submissions", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("wait"))
		assert.Equal(t, "test-key", r.Header.Get("X-Auth-Token"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "print(input())", body["source_code"])
		assert.Equal(t, float64(71), body["language_id"])
		assert.Equal(t, "5", body["stdin"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"stdout":"5\n","stderr":null,"compile_output":null,"time":"0.013","memory":3456,"status":{"id":3,"description":"Accepted"}}`))
	}))
	defer srv.Close()

	resp := newTestClient(srv.URL).Execute(context.Background(), execRequest(), time.Second)

	require.NoError(t, resp.TransportErr)
	require.NotNil(t, resp.Stdout)
	assert.Equal(t, "5\n", *resp.Stdout)
	assert.Nil(t, resp.Stderr)
	assert.Nil(t, resp.CompileOutput)
	require.NotNil(t, resp.TimeMs)
	assert.Equal(t, int64(13), *resp.TimeMs)
	require.NotNil(t, resp.MemoryKb)
	assert.Equal(t, int64(3456), *resp.MemoryKb)
	assert.False(t, resp.TimedOut)
}

func TestExecuteMapsCompileOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"stdout":null,"stderr":null,"compile_output":"syntax error line 3","status":{"id":6,"description":"Compilation Error"}}`))
	}))
	defer srv.Close()

	resp := newTestClient(srv.URL).Execute(context.Background(), execRequest(), time.Second)

	require.NoError(t, resp.TransportErr)
	require.NotNil(t, resp.CompileOutput)
	assert.Equal(t, "syntax error line 3", *resp.CompileOutput)
}

func TestExecuteFlagsBackendTimeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"stdout":null,"status":{"id":5,"description":"Time Limit Exceeded"}}`))
	}))
	defer srv.Close()

	resp := newTestClient(srv.URL).Execute(context.Background(), execRequest(), time.Second)

	require.NoError(t, resp.TransportErr)
	assert.True(t, resp.TimedOut)
}

func TestExecuteConvertsConnectionFailureToTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse every connection

	resp := newTestClient(srv.URL).Execute(context.Background(), execRequest(), time.Second)

	require.Error(t, resp.TransportErr)
	assert.Nil(t, resp.Stdout)
}

func TestExecuteConvertsErrorStatusToTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "queue full", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	resp := newTestClient(srv.URL).Execute(context.Background(), execRequest(), time.Second)

	require.Error(t, resp.TransportErr)
	assert.Contains(t, resp.TransportErr.Error(), "503")
}

func TestExecuteConvertsCallTimeoutToTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"stdout":"late"}`))
	}))
	defer srv.Close()

	resp := newTestClient(srv.URL).Execute(context.Background(), execRequest(), 50*time.Millisecond)

	require.Error(t, resp.TransportErr)
}

func TestExecuteConvertsMalformedBodyToTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"stdout": `))
	}))
	defer srv.Close()

	resp := newTestClient(srv.URL).Execute(context.Background(), execRequest(), time.Second)

	require.Error(t, resp.TransportErr)
}
