package llm

import (
	"context"
	"fmt"

	"dsa-tutor/internal/config"
	"dsa-tutor/internal/domain"

	"github.com/tmc/langchaingo/llms"
)

// New builds the model client selected by cfg.Provider, bounded by cfg.Timeout.
func New(ctx context.Context, cfg config.LLMConfig) (domain.ModelClient, error) {
	var client domain.ModelClient
	switch cfg.Provider {
	case config.ProviderGenAI:
		c, err := NewGenAIClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		client = c
	case config.ProviderGoogleAI, config.ProviderOpenAI, config.ProviderOllama:
		var (
			model llms.Model
			err   error
		)
		switch cfg.Provider {
		case config.ProviderGoogleAI:
			model, err = NewGoogleAIModel(ctx, cfg)
		case config.ProviderOpenAI:
			model, err = NewOpenAIModel(cfg)
		default:
			model, err = NewOllamaModel(cfg)
		}
		if err != nil {
			return nil, err
		}
		client = NewLangchainClient(model, cfg.Model, cfg.Temperature)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
	return WithTimeout(client, cfg.Timeout), nil
}
