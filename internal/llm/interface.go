package llm

import "context"

// Provider is the contract every LLM adapter implements: send one prompt to
// one model and get plain text back. Adapters translate to their provider's
// wire format and map failures to the shared error taxonomy.
type Provider interface {
	// Invoke sends the prompt to the given model and returns the text reply
	Invoke(ctx context.Context, model, prompt, apiKey string) (string, error)

	// Name returns the provider identifier
	Name() string
}

// ModelLister is implemented by providers whose model list can be queried
// live (the locally-hosted one).
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}
