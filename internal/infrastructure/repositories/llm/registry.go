// Package llm provides the suggestion-generator backends. Selection and
// authentication happen here, at construction time, from the explicit
// settings value; the engine core never reads ambient state.
package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// ClientFactory is a constructor function that creates a suggestion backend
// from the LLM settings.
type ClientFactory func(cfg entities.LLMSettings) (domainRepos.SuggestionRepository, error)

// Registry manages all registered suggestion-backend implementations.
type Registry struct {
	factories map[string]ClientFactory
}

// NewRegistry creates an empty backend registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]ClientFactory),
	}
}

// Register adds a backend factory under the given provider name (e.g. "openai").
func (r *Registry) Register(name string, factory ClientFactory) {
	r.factories[name] = factory
}

// Get returns a configured backend instance for the provider in cfg.
func (r *Registry) Get(cfg entities.LLMSettings) (domainRepos.SuggestionRepository, error) {
	factory, ok := r.factories[strings.ToLower(cfg.Provider)]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider: %q (known: %s)",
			cfg.Provider, strings.Join(r.Names(), ", "))
	}
	return factory(cfg)
}

// Names returns the sorted list of registered provider names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
