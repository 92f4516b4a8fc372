package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// OllamaRepository generates suggestions through a local Ollama server.
// This is the default backend: it needs no API key.
type OllamaRepository struct {
	llm         *ollama.LLM
	temperature float64
}

var _ domainRepos.SuggestionRepository = (*OllamaRepository)(nil)

// NewOllamaRepository creates an Ollama-backed suggestion repository.
func NewOllamaRepository(cfg entities.LLMSettings) (domainRepos.SuggestionRepository, error) {
	opts := []ollama.Option{ollama.WithModel(cfg.Model)}
	if cfg.BaseURL != "" {
		opts = append(opts, ollama.WithServerURL(cfg.BaseURL))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ollama client: %w", err)
	}

	return &OllamaRepository{
		llm:         client,
		temperature: cfg.Temperature,
	}, nil
}

// Name returns the provider identifier.
func (it *OllamaRepository) Name() string {
	return "ollama"
}

// Generate sends one chat generation and returns the raw response text.
func (it *OllamaRepository) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := it.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, system),
			llms.TextParts(llms.ChatMessageTypeHuman, user),
		},
		llms.WithTemperature(it.temperature),
	)
	if err != nil {
		return "", fmt.Errorf("ollama generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("ollama returned no choices")
	}
	return resp.Choices[0].Content, nil
}
