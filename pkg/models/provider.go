package models

// Provider identifiers as they appear in API requests
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderGemini = "gemini"
)

// ProviderDescriptor describes one LLM provider: where to reach it, which
// models it serves and whether callers must supply an API key.
type ProviderDescriptor struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Endpoint           string   `json:"endpoint"`
	ListModelsEndpoint string   `json:"list_models_endpoint,omitempty"`
	Models             []string `json:"models"`
	RequiresAPIKey     bool     `json:"requires_api_key"`
}
