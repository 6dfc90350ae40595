package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"jobdeck/internal/config"
	"jobdeck/internal/logging"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// GeminiProvider calls the Google Generative Language API. The model name
// is part of the path and the API key travels as a query parameter.
type GeminiProvider struct {
	endpoint string
	client   *http.Client
	logger   logging.Logger
}

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(cfg *config.Config) *GeminiProvider {
	return &GeminiProvider{
		endpoint: cfg.LLM.Gemini.Endpoint,
		client:   &http.Client{Timeout: cfg.LLM.RemoteTimeout},
		logger:   logging.GetGlobalLogger(),
	}
}

// generateContentRequest mirrors the generateContent request body
type generateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// generateContentResponse mirrors the relevant fields of the response
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Invoke sends the prompt to Gemini and returns the first candidate's text
func (p *GeminiProvider) Invoke(ctx context.Context, model, prompt, apiKey string) (string, error) {
	body, err := json.Marshal(generateContentRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", utils.NewProviderError("Gemini", fmt.Sprintf("marshal request: %v", err))
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", p.endpoint, model, url.QueryEscape(apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", utils.NewProviderError("Gemini", fmt.Sprintf("create request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", utils.NewProviderError("Gemini", err.Error())
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", utils.NewProviderError("Gemini", fmt.Sprintf("read response: %v", err))
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", utils.NewProviderAuthError("Gemini")
	case http.StatusTooManyRequests:
		return "", utils.NewProviderRateLimitedError("Gemini")
	}

	var genResp generateContentResponse
	if err := json.Unmarshal(respBytes, &genResp); err != nil {
		return "", utils.NewProviderError("Gemini", fmt.Sprintf("HTTP %d: unparseable response", resp.StatusCode))
	}

	if genResp.Error != nil {
		return "", utils.NewProviderError("Gemini", genResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", utils.NewProviderError("Gemini", fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", utils.NewProviderError("Gemini", "no candidates in response")
	}

	text := genResp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", utils.NewProviderError("Gemini", "empty candidate text")
	}

	return text, nil
}

// Name returns the provider identifier
func (p *GeminiProvider) Name() string {
	return models.ProviderGemini
}
