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

// OpenAIProvider calls the OpenAI chat-completions endpoint with the API key
// as a bearer token.
type OpenAIProvider struct {
	endpoint    string
	maxTokens   int
	temperature float32
	client      *http.Client
	logger      logging.Logger
}

// NewOpenAIProvider creates a new OpenAI provider instance
func NewOpenAIProvider(cfg *config.Config) *OpenAIProvider {
	return &OpenAIProvider{
		endpoint:    cfg.LLM.OpenAI.Endpoint,
		maxTokens:   cfg.LLM.MaxTokens,
		temperature: cfg.LLM.Temperature,
		client:      &http.Client{Timeout: cfg.LLM.RemoteTimeout},
		logger:      logging.GetGlobalLogger(),
	}
}

// chatRequest mirrors the OpenAI /v1/chat/completions request body
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse mirrors the relevant fields of the OpenAI response
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Invoke sends the prompt to OpenAI and returns the first choice's content
func (p *OpenAIProvider) Invoke(ctx context.Context, model, prompt, apiKey string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", utils.NewProviderError("OpenAI", fmt.Sprintf("marshal request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", utils.NewProviderError("OpenAI", fmt.Sprintf("create request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", utils.NewProviderError("OpenAI", err.Error())
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", utils.NewProviderError("OpenAI", fmt.Sprintf("read response: %v", err))
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", utils.NewProviderAuthError("OpenAI")
	case http.StatusTooManyRequests:
		return "", utils.NewProviderRateLimitedError("OpenAI")
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", utils.NewProviderError("OpenAI", fmt.Sprintf("HTTP %d: unparseable response", resp.StatusCode))
	}

	if chatResp.Error != nil {
		return "", utils.NewProviderError("OpenAI", chatResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", utils.NewProviderError("OpenAI", fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", utils.NewProviderError("OpenAI", "no choices in response")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// Name returns the provider identifier
func (p *OpenAIProvider) Name() string {
	return models.ProviderOpenAI
}
