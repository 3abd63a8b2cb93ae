// Package llm talks to the OpenAI chat completion and speech APIs.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/onegreenvn/lecture-content-backend/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion is returned when the API answers without any choice
var ErrEmptyCompletion = errors.New("completion returned no choices")

// CompletionRequest is a single system+user chat completion
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	// MaxTokens of 0 leaves the limit to the API
	MaxTokens int
	// JSONMode asks the model for a single JSON object
	JSONMode bool
}

// SpeechRequest describes one text-to-speech call
type SpeechRequest struct {
	Model string
	Voice string
	Input string
	Speed float64
}

// Client wraps the OpenAI API client
type Client struct {
	api *openai.Client
}

// NewClient creates a client from configuration
func NewClient(cfg config.OpenAIConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
	}

	return &Client{
		api: openai.NewClientWithConfig(clientConfig),
	}
}

// Complete runs a chat completion and returns the text of the first choice
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

// Synthesize converts text to MP3 audio
func (c *Client) Synthesize(ctx context.Context, req SpeechRequest) ([]byte, error) {
	resp, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(req.Model),
		Input:          req.Input,
		Voice:          openai.SpeechVoice(req.Voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          req.Speed,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech audio: %w", err)
	}

	return audio, nil
}
