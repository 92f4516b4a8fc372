package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// AnthropicRepository generates suggestions through the Anthropic API.
type AnthropicRepository struct {
	llm         *anthropic.LLM
	temperature float64
}

var _ domainRepos.SuggestionRepository = (*AnthropicRepository)(nil)

// NewAnthropicRepository creates an Anthropic-backed suggestion repository.
func NewAnthropicRepository(cfg entities.LLMSettings) (domainRepos.SuggestionRepository, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic provider requires an API key (LLM_API_KEY)")
	}

	client, err := anthropic.New(
		anthropic.WithToken(cfg.APIKey),
		anthropic.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize anthropic client: %w", err)
	}

	return &AnthropicRepository{
		llm:         client,
		temperature: cfg.Temperature,
	}, nil
}

// Name returns the provider identifier.
func (it *AnthropicRepository) Name() string {
	return "anthropic"
}

// Generate sends one chat generation and returns the raw response text.
func (it *AnthropicRepository) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := it.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, system),
			llms.TextParts(llms.ChatMessageTypeHuman, user),
		},
		llms.WithTemperature(it.temperature),
	)
	if err != nil {
		return "", fmt.Errorf("anthropic generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("anthropic returned no choices")
	}
	return resp.Choices[0].Content, nil
}
