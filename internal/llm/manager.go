package llm

import (
	"context"
	"time"

	"jobdeck/internal/config"
	"jobdeck/internal/llm/providers"
	"jobdeck/internal/logging"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// Manager dispatches generic LLM calls to the adapter registered for the
// requested provider. It performs no retries of its own: a failed paid call
// must not be silently resubmitted.
type Manager struct {
	cfg       *config.Config
	registry  *Registry
	providers map[string]Provider
	ollama    *providers.OllamaProvider
	logger    logging.Logger
}

// NewManager creates a dispatcher with all supported provider adapters
// registered. Adding a provider means adding an adapter and a registry
// entry; the dispatch path does not change.
func NewManager(cfg *config.Config) *Manager {
	ollama := providers.NewOllamaProvider(cfg)

	m := &Manager{
		cfg:       cfg,
		registry:  NewRegistry(cfg),
		providers: make(map[string]Provider),
		ollama:    ollama,
		logger:    logging.GetGlobalLogger(),
	}

	m.register(ollama)
	m.register(providers.NewOpenAIProvider(cfg))
	m.register(providers.NewClaudeProvider(cfg))
	m.register(providers.NewGeminiProvider(cfg))

	return m
}

func (m *Manager) register(p Provider) {
	m.providers[p.Name()] = p
}

// Registry exposes the provider descriptor table
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Call routes a generic LLM call to the right adapter. Unknown providers and
// missing-but-required API keys are rejected before any network traffic.
func (m *Manager) Call(ctx context.Context, providerID, model, prompt, apiKey string) (string, error) {
	descriptor, err := m.registry.Resolve(providerID)
	if err != nil {
		return "", err
	}

	if descriptor.RequiresAPIKey && apiKey == "" {
		return "", utils.NewProviderAuthError(descriptor.Name)
	}

	provider, ok := m.providers[providerID]
	if !ok {
		return "", utils.NewUnsupportedProviderError(providerID)
	}

	start := time.Now()
	m.logger.Info("Dispatching LLM call", map[string]interface{}{
		"provider": providerID,
		"model":    model,
	})

	text, err := provider.Invoke(ctx, model, prompt, apiKey)
	if err != nil {
		m.logger.Error("LLM call failed", map[string]interface{}{
			"provider": providerID,
			"model":    model,
			"error":    err.Error(),
		})
		return "", err
	}

	m.logger.Info("LLM call completed", map[string]interface{}{
		"provider":        providerID,
		"model":           model,
		"processing_time": utils.FormatDuration(time.Since(start)),
		"response_length": len(text),
	})
	return text, nil
}

// ListModels returns the model names available per provider. Remote
// providers use their static lists; the local provider is queried live with
// a short timeout and falls back to the configured static list on any
// failure, never surfacing that failure to the caller.
func (m *Manager) ListModels(ctx context.Context) map[string][]string {
	result := make(map[string][]string, len(m.registry.IDs()))
	for _, id := range m.registry.IDs() {
		descriptor, _ := m.registry.Resolve(id)
		result[id] = descriptor.Models
	}

	listCtx, cancel := context.WithTimeout(ctx, m.cfg.LLM.ListModelsTimeout)
	defer cancel()

	ollamaModels, err := m.ollama.ListModels(listCtx)
	if err != nil {
		m.logger.Debug("Ollama not available, using fallback model list", map[string]interface{}{
			"error": err.Error(),
		})
		ollamaModels = m.cfg.LLM.Ollama.FallbackModels
	}
	result[models.ProviderOllama] = ollamaModels

	return result
}

// OllamaStatus reports whether the local inference service is reachable and
// how many models it serves.
func (m *Manager) OllamaStatus(ctx context.Context) (bool, int, error) {
	statusCtx, cancel := context.WithTimeout(ctx, m.cfg.LLM.ListModelsTimeout)
	defer cancel()

	modelNames, err := m.ollama.ListModels(statusCtx)
	if err != nil {
		return false, 0, err
	}
	return true, len(modelNames), nil
}
