package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descmate/descmate/internal/config"
	"github.com/descmate/descmate/internal/errors"
)

func newTestServer(t *testing.T, status int, response any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "gpt-4", payload["model"])

		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewClient(t *testing.T) {
	t.Run("should reject an empty API key", func(t *testing.T) {
		client, err := NewClient("", config.ModelGPT4)

		assert.Nil(t, client)
		assert.ErrorIs(t, err, errors.ErrNoProviderConfigured)
	})

	t.Run("should report its name", func(t *testing.T) {
		client, err := NewClient("sk-test", config.ModelGPT4)

		require.NoError(t, err)
		assert.Equal(t, "openai", client.Name())
	})
}

func TestGenerateSummary(t *testing.T) {
	t.Run("should return the first choice's content", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "- did the thing\n"}},
				{"message": map[string]any{"content": "ignored second choice"}},
			},
		})
		client := NewClientWithHTTP("sk-test", config.ModelGPT4, server.URL, server.Client())

		summary, err := client.GenerateSummary(context.Background(), "describe this")

		require.NoError(t, err)
		assert.Equal(t, "- did the thing", summary)
	})

	t.Run("should fail on zero choices", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, map[string]any{"choices": []any{}})
		client := NewClientWithHTTP("sk-test", config.ModelGPT4, server.URL, server.Client())

		_, err := client.GenerateSummary(context.Background(), "describe this")

		assert.ErrorIs(t, err, errors.ErrEmptyAIResponse)
	})

	t.Run("should fail on a missing message content", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{}},
			},
		})
		client := NewClientWithHTTP("sk-test", config.ModelGPT4, server.URL, server.Client())

		_, err := client.GenerateSummary(context.Background(), "describe this")

		assert.ErrorIs(t, err, errors.ErrEmptyAIResponse)
	})

	t.Run("should surface HTTP errors as generation failures", func(t *testing.T) {
		server := newTestServer(t, http.StatusTooManyRequests, map[string]any{"error": "rate limited"})
		client := NewClientWithHTTP("sk-test", config.ModelGPT4, server.URL, server.Client())

		_, err := client.GenerateSummary(context.Background(), "describe this")

		assert.ErrorIs(t, err, errors.ErrAIGeneration)
		assert.Contains(t, err.Error(), "429")
	})
}
