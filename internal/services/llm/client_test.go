package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/onegreenvn/lecture-content-backend/internal/config"
	"github.com/onegreenvn/lecture-content-backend/internal/services/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *llm.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return llm.NewClient(config.OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL + "/v1",
		Timeout: 10 * time.Second,
	})
}

func TestComplete_SendsPromptsAndReturnsContent(t *testing.T) {
	var received map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Welcome to the lecture."},"finish_reason":"stop"}]}`))
	})

	text, err := client.Complete(context.Background(), llm.CompletionRequest{
		Model:        "gpt-4o-mini",
		SystemPrompt: "You are an engaging professor.",
		UserPrompt:   "Explain AI.",
		Temperature:  0.7,
		MaxTokens:    1500,
		JSONMode:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Welcome to the lecture.", text)
	assert.Equal(t, "gpt-4o-mini", received["model"])
	assert.EqualValues(t, 1500, received["max_tokens"])

	messages, ok := received["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "Explain AI.", messages[1].(map[string]any)["content"])

	format, ok := received["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])
}

func TestComplete_NoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[]}`))
	})

	_, err := client.Complete(context.Background(), llm.CompletionRequest{Model: "m"})

	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
}

func TestComplete_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`))
	})

	_, err := client.Complete(context.Background(), llm.CompletionRequest{Model: "m"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestSynthesize_ReturnsAudioBytes(t *testing.T) {
	var received map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/audio/speech"), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-mp3-bytes"))
	})

	audio, err := client.Synthesize(context.Background(), llm.SpeechRequest{
		Model: "tts-1-hd",
		Voice: "nova",
		Input: "Hello class",
		Speed: 0.97,
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("ID3-mp3-bytes"), audio)
	assert.Equal(t, "tts-1-hd", received["model"])
	assert.Equal(t, "nova", received["voice"])
	assert.Equal(t, "Hello class", received["input"])
	assert.InDelta(t, 0.97, received["speed"], 1e-9)
}
