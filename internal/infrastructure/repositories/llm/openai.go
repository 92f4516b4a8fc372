package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// OpenAIRepository generates suggestions through the OpenAI chat-completion
// API (or any OpenAI-compatible endpoint via a custom base URL).
type OpenAIRepository struct {
	client      *openai.Client
	model       string
	temperature float32
}

var _ domainRepos.SuggestionRepository = (*OpenAIRepository)(nil)

// NewOpenAIRepository creates an OpenAI-backed suggestion repository.
func NewOpenAIRepository(cfg entities.LLMSettings) (domainRepos.SuggestionRepository, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai provider requires an API key (LLM_API_KEY)")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIRepository{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
	}, nil
}

// Name returns the provider identifier.
func (it *OpenAIRepository) Name() string {
	return "openai"
}

// Generate sends one chat completion and returns the raw response text.
func (it *OpenAIRepository) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := it.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       it.model,
		Temperature: it.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
