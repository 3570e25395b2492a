package llm

import (
	"context"
	"errors"
	"fmt"

	"dsa-tutor/internal/config"
	"dsa-tutor/internal/domain"
	"dsa-tutor/internal/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var (
	// ErrEmptyResponse is returned when the model produced no candidates.
	ErrEmptyResponse = errors.New("model returned no content")
	// ErrContentBlocked is returned when safety filters suppressed the reply.
	ErrContentBlocked = errors.New("content blocked by safety filters")
)

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GenAIClient implements domain.ModelClient with the Google Gen AI SDK.
type GenAIClient struct {
	models      contentGenerator
	model       string
	temperature float64
}

// NewGenAIClient creates a Gemini API client for the configured model.
func NewGenAIClient(ctx context.Context, cfg config.LLMConfig) (*GenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	if cfg.Model == "" {
		return nil, errors.New("gemini model name cannot be empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GenAIClient{models: client.Models, model: cfg.Model, temperature: cfg.Temperature}, nil
}

// Complete implements domain.ModelClient
func (c *GenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	var genCfg *genai.GenerateContentConfig
	if c.temperature > 0 {
		t := float32(c.temperature)
		genCfg = &genai.GenerateContentConfig{Temperature: &t}
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), genCfg)
	if err != nil {
		l.Error("Gemini API call error", zap.String("model", c.model), zap.Error(err))
		return "", domain.NewLLMServiceError(err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		l.Error("Gemini API returned no content", zap.String("model", c.model))
		return "", domain.NewLLMServiceError(ErrEmptyResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		l.Warn("Gemini API blocked content", zap.String("model", c.model))
		return "", domain.NewLLMServiceError(ErrContentBlocked)
	}

	text := resp.Text()
	l.Debug("Raw LLM response received", zap.String("model", c.model), zap.Int("length", len(text)))
	return text, nil
}

var _ domain.ModelClient = (*GenAIClient)(nil)
