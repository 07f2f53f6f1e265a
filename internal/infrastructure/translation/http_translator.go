package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/storefront/backend/internal/domain/i18n"
	"github.com/storefront/backend/internal/infrastructure/config"
)

// maxResponseSize is the maximum allowed response size from the provider (1MB)
const maxResponseSize = 1 * 1024 * 1024

// ErrProviderRequestFailed indicates the translation provider rejected
// or failed to answer a request
var ErrProviderRequestFailed = errors.New("translation: provider request failed")

// HTTPTranslator implements the Translator interface against an HTTP
// machine-translation provider
type HTTPTranslator struct {
	config     config.TranslationConfig
	httpClient *http.Client
}

// NewHTTPTranslator creates a new HTTPTranslator with the given configuration
func NewHTTPTranslator(cfg config.TranslationConfig) *HTTPTranslator {
	return &HTTPTranslator{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	Error          string `json:"error,omitempty"`
}

// Translate sends the text to the provider and returns the translated
// text. The provider is expected to leave the batch delimiter intact.
func (t *HTTPTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Text:   text,
		Source: t.config.SourceLanguage,
		Target: targetLanguage,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.config.BaseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.config.APIKey)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: HTTP %d", ErrProviderRequestFailed, resp.StatusCode)
	}

	var result translateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse provider response: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrProviderRequestFailed, result.Error)
	}

	return result.TranslatedText, nil
}

// Ensure HTTPTranslator implements Translator
var _ i18n.Translator = (*HTTPTranslator)(nil)
