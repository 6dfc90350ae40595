package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdeck/internal/config"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.LLM.ListModelsTimeout = 500 * time.Millisecond
	return cfg
}

func TestCall_UnknownProviderRejectedWithoutNetwork(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.LLM.Ollama.Endpoint = server.URL
	cfg.LLM.OpenAI.Endpoint = server.URL

	m := NewManager(cfg)
	_, err := m.Call(context.Background(), "mistral", "some-model", "prompt", "")

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindUnsupportedProvider, cerr.Kind)
	assert.Equal(t, 0, calls)
}

func TestCall_MissingKeyRejectedWithoutNetwork(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.LLM.OpenAI.Endpoint = server.URL

	m := NewManager(cfg)
	_, err := m.Call(context.Background(), models.ProviderOpenAI, "gpt-4o-mini", "prompt", "")

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindProviderAuth, cerr.Kind)
	assert.Equal(t, 0, calls)
}

func TestCall_DispatchesToLocalProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		w.Write([]byte(`{"response":"model reply"}`))
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.LLM.Ollama.Endpoint = server.URL

	m := NewManager(cfg)
	text, err := m.Call(context.Background(), models.ProviderOllama, "llama3.2:3b", "prompt", "")
	require.NoError(t, err)
	assert.Equal(t, "model reply", text)
}

func TestListModels_LiveOllamaModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.Write([]byte(`{"models":[{"name":"llama3.2:3b"},{"name":"phi4:latest"}]}`))
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.LLM.Ollama.Endpoint = server.URL

	m := NewManager(cfg)
	result := m.ListModels(context.Background())

	assert.Equal(t, []string{"llama3.2:3b", "phi4:latest"}, result[models.ProviderOllama])
	assert.Equal(t, cfg.LLM.OpenAI.Models, result[models.ProviderOpenAI])
	assert.Equal(t, cfg.LLM.Claude.Models, result[models.ProviderClaude])
	assert.Equal(t, cfg.LLM.Gemini.Models, result[models.ProviderGemini])
}

func TestListModels_FallsBackWhenOllamaUnreachable(t *testing.T) {
	cfg := testConfig(t)
	cfg.LLM.Ollama.Endpoint = "http://127.0.0.1:1"

	m := NewManager(cfg)
	result := m.ListModels(context.Background())

	assert.Equal(t, cfg.LLM.Ollama.FallbackModels, result[models.ProviderOllama])
}

func TestOllamaStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"models":[{"name":"llama3.2:3b"}]}`))
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.LLM.Ollama.Endpoint = server.URL

	available, count, err := NewManager(cfg).OllamaStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, available)
	assert.Equal(t, 1, count)

	cfg.LLM.Ollama.Endpoint = "http://127.0.0.1:1"
	available, count, err = NewManager(cfg).OllamaStatus(context.Background())
	require.Error(t, err)
	assert.False(t, available)
	assert.Zero(t, count)
}

func TestRegistry_AllProvidersResolvable(t *testing.T) {
	r := NewRegistry(testConfig(t))

	ids := r.IDs()
	assert.ElementsMatch(t, []string{
		models.ProviderOllama, models.ProviderOpenAI,
		models.ProviderClaude, models.ProviderGemini,
	}, ids)

	for _, id := range ids {
		d, err := r.Resolve(id)
		require.NoError(t, err)
		assert.NotEmpty(t, d.Endpoint, "provider %s", id)
		assert.NotEmpty(t, d.Name, "provider %s", id)
	}

	openai, err := r.Resolve(models.ProviderOpenAI)
	require.NoError(t, err)
	assert.True(t, openai.RequiresAPIKey)

	ollama, err := r.Resolve(models.ProviderOllama)
	require.NoError(t, err)
	assert.False(t, ollama.RequiresAPIKey)
}
