package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdeck/internal/config"
	"jobdeck/pkg/utils"
)

func providerConfig(t *testing.T, endpoint string) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.LLM.OpenAI.Endpoint = endpoint
	cfg.LLM.Ollama.Endpoint = endpoint
	cfg.LLM.Gemini.Endpoint = endpoint
	return cfg
}

func TestOpenAIInvoke_SendsExpectedRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body.Model)
		assert.Equal(t, float32(0.7), body.Temperature)
		assert.Equal(t, 4000, body.MaxTokens)
		require.Len(t, body.Messages, 1)
		assert.Equal(t, "user", body.Messages[0].Role)
		assert.Equal(t, "hello", body.Messages[0].Content)

		w.Write([]byte(`{"choices":[{"message":{"content":"hi there"}}]}`))
	}))
	defer server.Close()

	p := NewOpenAIProvider(providerConfig(t, server.URL))
	text, err := p.Invoke(context.Background(), "gpt-4o-mini", "hello", "sk-test")
	require.NoError(t, err)
	assert.Equal(t, "hi there", text)
}

func TestOpenAIInvoke_MapsStatusCodes(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		kind   utils.ErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, `{}`, utils.KindProviderAuth},
		{"forbidden", http.StatusForbidden, `{}`, utils.KindProviderAuth},
		{"rate limited", http.StatusTooManyRequests, `{}`, utils.KindProviderRateLimited},
		{"server error", http.StatusInternalServerError, `{"error":{"message":"overloaded"}}`, utils.KindProvider},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			p := NewOpenAIProvider(providerConfig(t, server.URL))
			_, err := p.Invoke(context.Background(), "gpt-4o-mini", "hello", "sk-test")
			require.Error(t, err)

			cerr, ok := utils.AsCustomError(err)
			require.True(t, ok)
			assert.Equal(t, tc.kind, cerr.Kind)
		})
	}
}

func TestOpenAIInvoke_ErrorBodyMessageSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"model not found","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	p := NewOpenAIProvider(providerConfig(t, server.URL))
	_, err := p.Invoke(context.Background(), "gpt-nope", "hello", "sk-test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestOllamaInvoke_ParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "llama3.2:3b", body.Model)
		assert.Equal(t, "hello", body.Prompt)
		assert.False(t, body.Stream)

		w.Write([]byte(`{"response":"local reply"}`))
	}))
	defer server.Close()

	p := NewOllamaProvider(providerConfig(t, server.URL))
	text, err := p.Invoke(context.Background(), "llama3.2:3b", "hello", "")
	require.NoError(t, err)
	assert.Equal(t, "local reply", text)
}

func TestOllamaInvoke_EmptyResponseIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"response":""}`))
	}))
	defer server.Close()

	p := NewOllamaProvider(providerConfig(t, server.URL))
	_, err := p.Invoke(context.Background(), "llama3.2:3b", "hello", "")
	require.Error(t, err)

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindProvider, cerr.Kind)
}

func TestGeminiInvoke_ModelInPathAndKeyInQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "g-key", r.URL.Query().Get("key"))

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"gemini reply"}]}}]}`))
	}))
	defer server.Close()

	p := NewGeminiProvider(providerConfig(t, server.URL))
	text, err := p.Invoke(context.Background(), "gemini-2.0-flash", "hello", "g-key")
	require.NoError(t, err)
	assert.Equal(t, "gemini reply", text)
}

func TestGeminiInvoke_RateLimitMapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	p := NewGeminiProvider(providerConfig(t, server.URL))
	_, err := p.Invoke(context.Background(), "gemini-2.0-flash", "hello", "g-key")
	require.Error(t, err)

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindProviderRateLimited, cerr.Kind)
}
