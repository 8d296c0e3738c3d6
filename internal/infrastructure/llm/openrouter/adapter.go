// Package openrouter implements the model capability on top of any
// OpenAI-compatible chat completion endpoint (OpenRouter by default).
package openrouter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"react-browser-agent/internal/application/port/output"
	"react-browser-agent/internal/domain/entity"
)

var _ output.LLMPort = (*Adapter)(nil)

type Adapter struct {
	client *openai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Logger  output.LoggerPort
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: "https://openrouter.ai/api/v1",
	}
}

// loggingTransport mirrors outgoing requests into the structured log so a
// failed run can be replayed from the log file alone.
type loggingTransport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))
	}
	t.logger.Debug("LLM HTTP request", "method", req.Method, "url", req.URL.String(), "bodyLen", len(body))

	resp, err := t.base.RoundTrip(req)
	if resp != nil {
		t.logger.Debug("LLM HTTP response", "status", resp.Status)
	}
	return resp, err
}

func NewAdapter(cfg Config) *Adapter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	if cfg.Logger != nil {
		clientCfg.HTTPClient = &http.Client{
			Transport: &loggingTransport{base: http.DefaultTransport, logger: cfg.Logger},
		}
	}

	return &Adapter{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// Complete sends the transcript and returns the generated text of the first
// choice. Any failure here is fatal to the calling run; no retries.
func (a *Adapter) Complete(ctx context.Context, req output.CompletionRequest) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    convertMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

func convertMessages(messages []entity.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		result = append(result, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return result
}
