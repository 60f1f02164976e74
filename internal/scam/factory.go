package scam

import (
	"fmt"
	"strings"
	"sync"

	"scamcheck/backend/internal/scam/contract"
	"scamcheck/backend/internal/scam/providers"
)

type Factory struct {
	mu        sync.Mutex
	instances map[string]contract.Provider
}

func NewFactory() *Factory {
	return &Factory{instances: map[string]contract.Provider{}}
}

func (f *Factory) CreateProvider(config *contract.ProviderConfig) contract.Provider {
	f.mu.Lock()
	defer f.mu.Unlock()

	// The key covers every field a provider reads at request time, so a
	// reconfigured checker never gets a stale cached instance back.
	key := fmt.Sprintf("%s:%s:%s:%s:%g:%d",
		config.ProviderName, config.ModelName, config.BaseURL, config.APIKey,
		config.Temperature, config.MaxTokens)
	if provider, ok := f.instances[key]; ok {
		return provider
	}

	cfg := *config
	var provider contract.Provider
	switch strings.ToLower(config.ProviderName) {
	case "openai", "azure_openai", "azureopenai":
		provider = providers.NewOpenAIProvider(&cfg)
	case "claude", "anthropic":
		provider = providers.NewClaudeProvider(&cfg)
	case "cohere":
		provider = providers.NewCohereProvider(&cfg)
	case "google", "gemini":
		// OpenAI-compatible gateway; base_url should point at the Gemini API.
		provider = providers.NewOpenAIProvider(&cfg)
	default:
		return nil
	}
	f.instances[key] = provider
	return provider
}
