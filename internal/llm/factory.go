package llm

import (
	"fmt"
	"strings"
	"sync"
)

// Supported provider names. Groq is the hosted default; Ollama targets a
// local deployment.
const (
	ProviderGroq   = "groq"
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// Settings carries the per-provider credentials and endpoints the factory
// needs. Values come from the environment via internal/config.
type Settings struct {
	Default string

	GroqAPIKey string
	GroqModel  string

	OllamaBaseURL string
	OllamaModel   string

	OpenAIAPIKey string
	OpenAIModel  string
}

// Factory hands out one lazily-built client per provider. Requests may
// override the default provider per call, so clients are cached rather
// than constructed once in main.
type Factory struct {
	mu       sync.Mutex
	settings Settings
	clients  map[string]Client
}

// NewFactory constructs a Factory from the given settings.
func NewFactory(settings Settings) *Factory {
	return &Factory{
		settings: settings,
		clients:  make(map[string]Client),
	}
}

// Client returns the client for the named provider, falling back to the
// configured default when provider is empty. Unknown providers and
// missing credentials are reported as ProviderError.
func (f *Factory) Client(provider string) (Client, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		provider = f.settings.Default
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.clients[provider]; ok {
		return c, nil
	}

	c, err := f.build(provider)
	if err != nil {
		return nil, err
	}
	f.clients[provider] = c
	return c, nil
}

func (f *Factory) build(provider string) (Client, error) {
	s := f.settings
	switch provider {
	case ProviderGroq:
		if s.GroqAPIKey == "" {
			return nil, &ProviderError{Provider: provider, Err: fmt.Errorf("GROQ_API_KEY not set")}
		}
		return NewOpenAIClient(provider, s.GroqAPIKey, "https://api.groq.com/openai/v1", s.GroqModel), nil
	case ProviderOllama:
		// Ollama ignores the API key but the client requires one.
		return NewOpenAIClient(provider, "ollama", strings.TrimSuffix(s.OllamaBaseURL, "/")+"/v1", s.OllamaModel), nil
	case ProviderOpenAI:
		if s.OpenAIAPIKey == "" {
			return nil, &ProviderError{Provider: provider, Err: fmt.Errorf("OPENAI_API_KEY not set")}
		}
		return NewOpenAIClient(provider, s.OpenAIAPIKey, "", s.OpenAIModel), nil
	default:
		return nil, &ProviderError{Provider: provider, Err: fmt.Errorf("unknown provider, use %q or %q", ProviderGroq, ProviderOllama)}
	}
}
