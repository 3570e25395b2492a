package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"dsa-tutor/internal/config"
	"dsa-tutor/internal/domain"
	"dsa-tutor/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// LangchainClient implements domain.ModelClient on top of any langchaingo model.
type LangchainClient struct {
	model       llms.Model
	name        string
	temperature float64
}

// NewLangchainClient wraps an already constructed langchaingo model.
func NewLangchainClient(model llms.Model, name string, temperature float64) *LangchainClient {
	return &LangchainClient{model: model, name: name, temperature: temperature}
}

// NewGoogleAIModel builds the langchaingo Gemini backend.
func NewGoogleAIModel(ctx context.Context, cfg config.LLMConfig) (llms.Model, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	model, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create googleai client: %w", err)
	}
	return model, nil
}

// NewOpenAIModel builds the langchaingo OpenAI backend.
func NewOpenAIModel(cfg config.LLMConfig) (llms.Model, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai API key cannot be empty")
	}
	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return model, nil
}

// NewOllamaModel builds the langchaingo Ollama backend.
func NewOllamaModel(cfg config.LLMConfig) (llms.Model, error) {
	model, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(&http.Client{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return model, nil
}

// Complete implements domain.ModelClient
func (c *LangchainClient) Complete(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	var opts []llms.CallOption
	if c.temperature > 0 {
		opts = append(opts, llms.WithTemperature(c.temperature))
	}

	response, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, opts...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.String("model", c.name), zap.Error(err))
			return "", domain.NewLLMServiceError(fmt.Errorf("LLM request timed out: %w", err))
		}
		l.Error("Failed to get response from LLM", zap.String("model", c.name), zap.Error(err))
		return "", domain.NewLLMServiceError(err)
	}

	l.Debug("Raw LLM response received", zap.String("model", c.name), zap.Int("length", len(response)))
	return response, nil
}

var _ domain.ModelClient = (*LangchainClient)(nil)
