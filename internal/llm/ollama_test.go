package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/interfacing/internal/errors"
)

func TestOllamaClient_Generate(t *testing.T) {
	offlineTokenizer(t)

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"model":             "llama3.1",
			"created_at":        "2024-01-01T00:00:00Z",
			"message":           map[string]any{"role": "assistant", "content": "You kick the door. It holds."},
			"done":              true,
			"prompt_eval_count": 40,
			"eval_count":        9,
		}))
	}))
	defer srv.Close()

	client, err := New(context.Background(), &Config{Provider: ProviderOllama, BaseURL: srv.URL + "/v1/"})
	require.NoError(t, err)
	assert.Equal(t, DefaultOllamaModel, client.Model())

	resp, err := client.Generate(context.Background(), &Request{Prompt: "narrate", MaxTokens: 200, Temperature: 0.7})
	require.NoError(t, err)

	assert.Equal(t, "You kick the door. It holds.", resp.Text)
	assert.Equal(t, 40, resp.PromptTokens)
	assert.Equal(t, 9, resp.CompletionTokens)
	assert.Equal(t, 49, resp.TotalTokens)

	assert.Equal(t, false, got["stream"])
	opts := got["options"].(map[string]any)
	assert.InDelta(t, 200, opts["num_predict"], 0)
	assert.InDelta(t, 0.7, opts["temperature"], 0.001)
}

func TestOllamaClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error": "model not found"}`)
	}))
	defer srv.Close()

	client, err := New(context.Background(), &Config{Provider: ProviderOllama, BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), &Request{Prompt: "x"})
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestOllamaClient_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := New(context.Background(), &Config{Provider: ProviderOllama, BaseURL: srv.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Generate(ctx, &Request{Prompt: "x"})
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}
