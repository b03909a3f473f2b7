package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/futig/babyname/internal/config"
	"github.com/futig/babyname/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

func ollamaConfig(url string) config.OllamaConfig {
	return config.OllamaConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           time.Second,
			KeepAlive:             time.Second,
			IdleConnTimeout:       time.Second,
			ResponseHeaderTimeout: 5 * time.Second,
			Url:                   url,
		},
		GenerateEndpoint: "/api/generate",
		Model:            "llama3.2",
	}
}

func TestConnector_Generate(t *testing.T) {
	var got entity.OllamaGenerateRequest
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entity.OllamaGenerateResponse{
			Model:    "llama3.2",
			Response: "\n Amir - Prince\nBadshah - King \n",
			Done:     true,
		})
	}))
	defer srv.Close()

	c := NewConnector(ollamaConfig(srv.URL), zap.NewNop())
	text, err := c.Generate(context.Background(), "give me names")

	require.NoError(t, err)
	assert.Equal(t, "Amir - Prince\nBadshah - King", text)
	assert.Equal(t, "llama3.2", got.Model)
	assert.Equal(t, "give me names", got.Prompt)
	assert.False(t, got.Stream)
	assert.Equal(t, 1, calls)
}

func TestConnector_Generate_HTTPErrorNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":"model 'nope' not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewConnector(ollamaConfig(srv.URL), zap.NewNop())
	_, err := c.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, 1, calls)
}

func TestConnector_Generate_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"   ","done":true}`))
	}))
	defer srv.Close()

	c := NewConnector(ollamaConfig(srv.URL), zap.NewNop())
	_, err := c.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, entity.ErrEmptyResponse)
}

func TestConnector_Generate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewConnector(ollamaConfig(url), zap.NewNop())
	_, err := c.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "network error")
}

func TestGeminiConnector_Generate(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Amir - Prince\n"},{"text":"Badshah - King"}]}}]}`))
	}))
	defer srv.Close()

	c, err := NewGeminiConnector(context.Background(),
		config.GeminiConfig{APIKey: "test-key", Model: "gemini-2.0-flash"},
		zap.NewNop(),
		genai.HTTPOptions{BaseURL: srv.URL + "/"},
	)
	require.NoError(t, err)

	text, err := c.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "Amir - Prince\nBadshah - King", text)
	assert.Contains(t, path, "gemini-2.0-flash:generateContent")
}

func TestGeminiConnector_Generate_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c, err := NewGeminiConnector(context.Background(),
		config.GeminiConfig{APIKey: "test-key", Model: "gemini-2.0-flash"},
		zap.NewNop(),
		genai.HTTPOptions{BaseURL: srv.URL + "/"},
	)
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, entity.ErrEmptyResponse)
}

func TestOpenAIConnector_Generate(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m",` +
			`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":" Amir - Prince "}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIConnector(config.OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "m"}, zap.NewNop())
	text, err := c.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "Amir - Prince", text)
	assert.Equal(t, "m", body["model"])
}

func TestOpenAIConnector_Generate_Unauthorized(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIConnector(config.OpenAIConfig{APIKey: "bad", BaseURL: srv.URL, Model: "m"}, zap.NewNop())
	_, err := c.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestMockConnector_Generate(t *testing.T) {
	text, err := NewMockConnector(zap.NewNop()).Generate(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Contains(t, text, " - ")
	assert.NotContains(t, text, "error")
}

func TestDisabledConnector_Generate(t *testing.T) {
	want := &entity.MissingCredentialError{Variable: "GEMINI_API_KEY"}

	_, err := NewDisabledConnector(want).Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, entity.ErrMissingCredential)
}
