package intelligence

import (
	"context"
	"fmt"
	"strings"

	"silesiagrand/config"
)

// NewProviderFromConfig builds the provider named by LLM_PROVIDER.
func NewProviderFromConfig(ctx context.Context, cfg config.Config) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.LLMProvider)) {
	case "", "gemini":
		return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}
