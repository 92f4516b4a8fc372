package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/docdrift/internal/domain/repositories"
	"github.com/rios0rios0/docdrift/internal/infrastructure/repositories/docs"
	gitRepo "github.com/rios0rios0/docdrift/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/docdrift/internal/infrastructure/repositories/llm"
	"github.com/rios0rios0/docdrift/internal/infrastructure/repositories/render"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.ChangeRepository {
		return gitRepo.NewChangeRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.LocatorFactory {
		return docs.NewHeuristicLocator
	}); err != nil {
		return err
	}

	// Register backend registry with all suggestion-backend factories
	if err := container.Provide(func() *llm.Registry {
		reg := llm.NewRegistry()
		reg.Register("ollama", llm.NewOllamaRepository)
		reg.Register("openai", llm.NewOpenAIRepository)
		reg.Register("anthropic", llm.NewAnthropicRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register renderer registry with all output formats
	if err := container.Provide(func() *render.Registry {
		reg := render.NewRegistry()
		reg.Register(render.NewTerminalRenderer())
		reg.Register(render.NewJSONRenderer())
		reg.Register(render.NewHTMLRenderer())
		return reg
	}); err != nil {
		return err
	}

	return nil
}
