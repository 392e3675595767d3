package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"course-recommender/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenAIModel_Complete(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"roadmap\":[]}"}, "finish_reason": "stop"}]
		}`))
	}))
	defer srv.Close()

	model, err := NewOpenAIModel(&config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4o-mini",
	}, 0.3, zap.NewNop())
	require.NoError(t, err)

	content, err := model.Complete(context.Background(), ChatRequest{System: "sys", User: "hello", JSON: true})
	require.NoError(t, err)
	assert.Equal(t, `{"roadmap":[]}`, content)

	assert.Equal(t, "gpt-4o-mini", captured["model"])
	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "hello", messages[1].(map[string]any)["content"])

	format, ok := captured["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])
}

func TestOpenAIModel_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	model, err := NewOpenAIModel(&config.OpenAIConfig{APIKey: "k", BaseURL: srv.URL, Model: "m"}, 0, zap.NewNop())
	require.NoError(t, err)

	_, err = model.Complete(context.Background(), ChatRequest{User: "hello"})
	assert.Error(t, err)
}

func TestNewOpenAIModel_RequiresKey(t *testing.T) {
	_, err := NewOpenAIModel(&config.OpenAIConfig{Model: "m"}, 0, zap.NewNop())
	assert.Error(t, err)
}

func TestNewChatModel_UnknownProvider(t *testing.T) {
	_, err := NewChatModel(context.Background(), &config.LLMConfig{Provider: "mystery"}, zap.NewNop())
	assert.Error(t, err)
}
