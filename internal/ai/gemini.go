// README: Gemini-backed text completer using Google's official SDK.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	defaultGeminiModel = "gemini-2.0-flash"
	defaultTemperature = 0.7
)

// Config carries the provider credential and sampling settings. Model and
// Temperature are optional; zero values fall back to the package defaults.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
}

// GeminiCompleter implements TextCompleter on top of the Gemini SDK.
type GeminiCompleter struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiCompleter initializes the Gemini client. A missing API key fails
// here, not on the first call.
func NewGeminiCompleter(ctx context.Context, cfg Config) (*GeminiCompleter, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingKey
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	name := cfg.Model
	if name == "" {
		name = defaultGeminiModel
	}
	model := client.GenerativeModel(name)

	temp := cfg.Temperature
	if temp == 0 {
		temp = defaultTemperature
	}
	model.SetTemperature(temp)

	return &GeminiCompleter{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (c *GeminiCompleter) Close() {
	c.client.Close()
}

// Complete sends the prompt and returns the concatenated reply text.
func (c *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no response candidates", ErrUnavailable)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: empty text parts", ErrUnavailable)
	}
	return text.String(), nil
}
