// Package render turns finished drift reports into their output formats.
package render

import (
	"fmt"
	"sort"
	"strings"

	domainRepos "github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// Registry manages all registered report renderers.
type Registry struct {
	renderers map[string]domainRepos.RendererRepository
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]domainRepos.RendererRepository),
	}
}

// Register adds a renderer under its own name.
func (r *Registry) Register(renderer domainRepos.RendererRepository) {
	r.renderers[renderer.Name()] = renderer
}

// Get returns the renderer for the given format name.
func (r *Registry) Get(name string) (domainRepos.RendererRepository, error) {
	renderer, ok := r.renderers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %q (known: %s)",
			name, strings.Join(r.Names(), ", "))
	}
	return renderer, nil
}

// Names returns the sorted list of registered format names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
