package llm

import (
	"context"
	"fmt"

	"taskdeck/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from the environment. Explicit
// TASKDECK_* configuration wins; otherwise well-known API key variables
// are probed. Returns (nil, false, nil) when no credentials are present,
// in which case the caller should run with canned fallback content.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, bool, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		p, perr := NewProvider(ctx, cfg, eventRepo)
		if perr != nil {
			return nil, false, perr
		}
		return p, true, nil
	}

	cfg, ok := DiscoverConfig()
	if !ok {
		return nil, false, nil
	}

	p, err := NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}
