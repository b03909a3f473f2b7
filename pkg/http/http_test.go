package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoRequest struct {
	Prompt string `json:"prompt"`
}

type echoResponse struct {
	Response string `json:"response"`
}

func TestConnector_DoRequest(t *testing.T) {
	var gotAuth, gotAgent, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"response":"Amir - Prince"}`))
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()},
		WithAuthToken("secret"),
		WithUserAgent("babyname-test"),
		WithRequestLogging(),
	)

	var resp echoResponse
	err := c.DoRequest(context.Background(), http.MethodPost, "/api/generate", echoRequest{Prompt: "hi"}, &resp)

	require.NoError(t, err)
	assert.Equal(t, "Amir - Prince", resp.Response)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "babyname-test", gotAgent)
	assert.Equal(t, "application/json", gotContentType)
}

func TestConnector_DoRequest_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()}, WithAuthToken(""))

	require.NoError(t, c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestConnector_DoRequest_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()})
	err := c.DoRequest(context.Background(), http.MethodPost, "/api/generate", echoRequest{}, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Contains(t, httpErr.Message, "model not found")
}

func TestConnector_DoRequest_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: url, Logger: zap.NewNop()})
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestRedactHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("Accept", "application/json")

	got := redactHeaders(h)

	assert.Equal(t, "REDACTED", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "Bearer secret", h.Get("Authorization"))
}

func TestTruncatePayload(t *testing.T) {
	assert.Equal(t, "short", truncatePayload([]byte("short")))

	long := strings.Repeat("é", maxLoggedPayload)
	got := truncatePayload([]byte(long))
	assert.True(t, strings.HasSuffix(got, "...(truncated)"))
	assert.LessOrEqual(t, len(got), maxLoggedPayload+len("...(truncated)"))
}

func TestNewClient_NoAnswerDeadlineByDefault(t *testing.T) {
	c := newClient()

	assert.Zero(t, c.Timeout)
	transport, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Zero(t, transport.ResponseHeaderTimeout)
}

func TestConnector_DoRequest_WaitsForSlowModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		w.Write([]byte(`{"response":"Amir - Prince"}`))
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()},
		WithRequestTimeout(0),
		WithResponseHeaderTimeout(0),
	)

	var resp echoResponse
	require.NoError(t, c.DoRequest(context.Background(), http.MethodPost, "/api/generate", echoRequest{Prompt: "hi"}, &resp))
	assert.Equal(t, "Amir - Prince", resp.Response)
}
