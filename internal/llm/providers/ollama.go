package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"jobdeck/internal/config"
	"jobdeck/internal/logging"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// OllamaProvider talks to a locally-hosted Ollama instance. No API key;
// the generation timeout is long because on-machine inference can take
// minutes on modest hardware.
type OllamaProvider struct {
	generateURL string
	tagsURL     string
	client      *http.Client
	logger      logging.Logger
}

// NewOllamaProvider creates a new Ollama provider instance
func NewOllamaProvider(cfg *config.Config) *OllamaProvider {
	return &OllamaProvider{
		generateURL: cfg.LLM.Ollama.Endpoint + "/api/generate",
		tagsURL:     cfg.LLM.Ollama.Endpoint + "/api/tags",
		client:      &http.Client{Timeout: cfg.LLM.LocalTimeout},
		logger:      logging.GetGlobalLogger(),
	}
}

// generateRequest mirrors the Ollama /api/generate request body
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse mirrors the relevant field of the Ollama response
type generateResponse struct {
	Response string `json:"response"`
}

// tagsResponse mirrors the Ollama /api/tags response
type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Invoke sends the prompt to the local model and returns its reply
func (p *OllamaProvider) Invoke(ctx context.Context, model, prompt, _ string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", utils.NewProviderError("Ollama", fmt.Sprintf("marshal request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.generateURL, bytes.NewReader(body))
	if err != nil {
		return "", utils.NewProviderError("Ollama", fmt.Sprintf("create request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", utils.NewProviderError("Ollama", err.Error())
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", utils.NewProviderError("Ollama", fmt.Sprintf("read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", utils.NewProviderError("Ollama", fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(respBytes)))
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBytes, &genResp); err != nil {
		return "", utils.NewProviderError("Ollama", fmt.Sprintf("parse response: %v", err))
	}

	if genResp.Response == "" {
		return "", utils.NewProviderError("Ollama", "empty response from model")
	}

	return genResp.Response, nil
}

// ListModels queries the live model list. Callers bound the context; a slow
// or absent Ollama must not stall anything beyond that.
func (p *OllamaProvider) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.tagsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama tags returned HTTP %d", resp.StatusCode)
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("parse tags response: %w", err)
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Name returns the provider identifier
func (p *OllamaProvider) Name() string {
	return models.ProviderOllama
}
