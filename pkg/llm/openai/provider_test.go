package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golexai-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

func TestCompleteSuccess(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "legal advice"}}],
			"usage": {"total_tokens": 42}
		}`))
	}))
	defer srv.Close()

	provider := NewOpenAIProvider("test-key", srv.URL, "")

	result, err := provider.Complete(context.Background(), "You are a lawyer.", []llm.Message{
		{Role: "user", Content: "Draft a contract."},
	})

	assert.NoError(t, err)
	assert.Equal(t, "legal advice", result.Content)
	assert.Equal(t, 42, result.TokensUsed)

	// System prompt is prepended, defaults fill in model and temperature
	assert.Equal(t, "gpt-4", captured.Model)
	assert.InDelta(t, 0.7, captured.Temperature, 0.001)
	assert.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "You are a lawyer.", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestCompleteNoSystemPrompt(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}], "usage": {"total_tokens": 1}}`))
	}))
	defer srv.Close()

	provider := NewOpenAIProvider("key", srv.URL, "gpt-4o")

	_, err := provider.Complete(context.Background(), "", []llm.Message{
		{Role: "user", Content: "hello"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "gpt-4o", captured.Model)
	assert.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
}

func TestCompleteOptionsOverrideDefaults(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}], "usage": {"total_tokens": 1}}`))
	}))
	defer srv.Close()

	provider := NewOpenAIProvider("key", srv.URL, "")

	_, err := provider.Complete(context.Background(), "", []llm.Message{{Role: "user", Content: "hi"}},
		llm.WithModel("gpt-3.5-turbo"),
		llm.WithTemperature(0.2),
		llm.WithMaxTokens(256),
	)

	assert.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo", captured.Model)
	assert.InDelta(t, 0.2, captured.Temperature, 0.001)
	assert.Equal(t, 256, captured.MaxTokens)
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer srv.Close()

	provider := NewOpenAIProvider("key", srv.URL, "")

	result, err := provider.Complete(context.Background(), "", []llm.Message{{Role: "user", Content: "hi"}})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [], "usage": {"total_tokens": 0}}`))
	}))
	defer srv.Close()

	provider := NewOpenAIProvider("key", srv.URL, "")

	result, err := provider.Complete(context.Background(), "", []llm.Message{{Role: "user", Content: "hi"}})

	assert.Error(t, err)
	assert.Nil(t, result)
}
