package llm

import (
	"jobdeck/internal/config"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// Registry is the static table of provider descriptors. It is built once at
// startup and read-only afterwards.
type Registry struct {
	descriptors map[string]models.ProviderDescriptor
	order       []string
}

// NewRegistry builds the provider table from configuration
func NewRegistry(cfg *config.Config) *Registry {
	descriptors := []models.ProviderDescriptor{
		{
			ID:                 models.ProviderOllama,
			Name:               "Ollama (Local)",
			Endpoint:           cfg.LLM.Ollama.Endpoint + "/api/generate",
			ListModelsEndpoint: cfg.LLM.Ollama.Endpoint + "/api/tags",
			// Filled in live via the list-models query; empty by default
			Models:         nil,
			RequiresAPIKey: false,
		},
		{
			ID:             models.ProviderOpenAI,
			Name:           "OpenAI",
			Endpoint:       cfg.LLM.OpenAI.Endpoint,
			Models:         cfg.LLM.OpenAI.Models,
			RequiresAPIKey: true,
		},
		{
			ID:             models.ProviderClaude,
			Name:           "Claude (Anthropic)",
			Endpoint:       cfg.LLM.Claude.Endpoint,
			Models:         cfg.LLM.Claude.Models,
			RequiresAPIKey: true,
		},
		{
			ID:             models.ProviderGemini,
			Name:           "Google Gemini",
			Endpoint:       cfg.LLM.Gemini.Endpoint,
			Models:         cfg.LLM.Gemini.Models,
			RequiresAPIKey: true,
		},
	}

	r := &Registry{descriptors: make(map[string]models.ProviderDescriptor, len(descriptors))}
	for _, d := range descriptors {
		r.descriptors[d.ID] = d
		r.order = append(r.order, d.ID)
	}
	return r
}

// Resolve returns the descriptor for the given provider identifier
func (r *Registry) Resolve(providerID string) (models.ProviderDescriptor, error) {
	d, ok := r.descriptors[providerID]
	if !ok {
		return models.ProviderDescriptor{}, utils.NewUnsupportedProviderError(providerID)
	}
	return d, nil
}

// IDs returns the known provider identifiers in registration order
func (r *Registry) IDs() []string {
	return r.order
}
