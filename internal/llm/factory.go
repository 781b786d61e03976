package llm

import (
	"context"
	"fmt"
)

// NewProvider builds a Provider from configuration, wrapped with retry
// and, when a recorder is given, request-event logging.
// Middleware order: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, recorder EventRecorder, warn func(msg string, err error)) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	wrapped := base
	if recorder != nil {
		wrapped = WithLogging(wrapped, recorder, warn)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}
