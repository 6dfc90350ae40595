package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"jobdeck/internal/config"
	"jobdeck/internal/logging"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// ClaudeProvider calls Anthropic's Messages API through the official SDK.
// The SDK sets the x-api-key and anthropic-version headers. The API key
// arrives per request, so the client is built per call.
type ClaudeProvider struct {
	endpoint  string
	maxTokens int
	timeout   option.RequestOption
	logger    logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	return &ClaudeProvider{
		endpoint:  cfg.LLM.Claude.Endpoint,
		maxTokens: cfg.LLM.MaxTokens,
		timeout:   option.WithRequestTimeout(cfg.LLM.RemoteTimeout),
		logger:    logging.GetGlobalLogger(),
	}
}

// Invoke sends the prompt to Claude and returns the first text content block
func (p *ClaudeProvider) Invoke(ctx context.Context, model, prompt, apiKey string) (string, error) {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(p.endpoint),
		p.timeout,
	)

	response, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(p.maxTokens),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", p.mapError(err)
	}

	if len(response.Content) == 0 {
		return "", utils.NewProviderError("Claude", "empty response")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return "", utils.NewProviderError("Claude", "no text content in response")
	}

	return responseText, nil
}

// mapError converts SDK errors to the shared taxonomy
func (p *ClaudeProvider) mapError(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return utils.NewProviderAuthError("Claude")
		case http.StatusTooManyRequests:
			return utils.NewProviderRateLimitedError("Claude")
		}
	}
	return utils.NewProviderError("Claude", err.Error())
}

// Name returns the provider identifier
func (p *ClaudeProvider) Name() string {
	return models.ProviderClaude
}
