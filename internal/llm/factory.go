package llm

import (
	"context"
	"fmt"

	"github.com/sidverma/skillgap/internal/store"
)

// NewProvider builds the configured backend, wrapped with retry and
// event-logging middleware.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	logged := WithLogging(base, events)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from SKILLGAP_* variables, falling
// back to key discovery when no provider is selected explicitly.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, events)
}
