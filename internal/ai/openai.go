// README: OpenAI chat-completions text completer over plain HTTP.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	openAIEndpoint     = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel = "gpt-4-turbo-preview"
)

// openAIHTTPClient guards against stalled connections; per-request deadlines
// still come from the caller's context via NewRequestWithContext.
var openAIHTTPClient = &http.Client{Timeout: 60 * time.Second}

// OpenAICompleter implements TextCompleter against the OpenAI REST API.
type OpenAICompleter struct {
	apiKey      string
	model       string
	temperature float32
}

// NewOpenAICompleter validates the credential and fixes model/temperature.
func NewOpenAICompleter(cfg Config) (*OpenAICompleter, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingKey
	}
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	temp := cfg.Temperature
	if temp == 0 {
		temp = defaultTemperature
	}
	return &OpenAICompleter{apiKey: cfg.APIKey, model: model, temperature: temp}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float32       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt as a single user message and returns the reply.
func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIEndpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := openAIHTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("%w: unmarshal response: %v", ErrUnavailable, err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("%w: api error: %s", ErrUnavailable, cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices array", ErrUnavailable)
	}
	return cr.Choices[0].Message.Content, nil
}
