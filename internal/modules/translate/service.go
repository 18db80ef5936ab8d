// README: DeepL text translation proxy.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const deeplEndpoint = "https://api-free.deepl.com/v2/translate"

type Service struct {
	apiKey string
	http   *http.Client
}

func NewService(apiKey string) *Service {
	return &Service{
		apiKey: apiKey,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

type deeplRequest struct {
	Text       []string `json:"text"`
	SourceLang string   `json:"source_lang"`
	TargetLang string   `json:"target_lang"`
}

type deeplResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate converts text between languages, defaulting ja -> en.
// Without a configured key the input passes through unchanged so the rest of
// the app keeps working in development.
func (s *Service) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if sourceLang == "" {
		sourceLang = "ja"
	}
	if targetLang == "" {
		targetLang = "en"
	}
	if s.apiKey == "" {
		log.Printf("translate: DEEPL_API_KEY not set, returning original text")
		return text, nil
	}

	reqBody, err := json.Marshal(deeplRequest{
		Text:       []string{text},
		SourceLang: strings.ToUpper(sourceLang),
		TargetLang: strings.ToUpper(targetLang),
	})
	if err != nil {
		return "", fmt.Errorf("translate: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, deeplEndpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("translate: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+s.apiKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("translate: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: status %d", resp.StatusCode)
	}

	var dr deeplResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return "", fmt.Errorf("translate: unmarshal response: %w", err)
	}
	if len(dr.Translations) == 0 {
		return "", fmt.Errorf("translate: empty translations array")
	}
	return dr.Translations[0].Text, nil
}
