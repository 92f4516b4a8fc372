//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/docdrift/internal/domain/entities"
	"github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// StubLocatorRepository implements repositories.LocatorRepository with a fixed
// reference table keyed by symbol name.
type StubLocatorRepository struct {
	RefsBySymbol map[string][]entities.DocumentationReference

	// spy: changes that were looked up
	Located []entities.CodeChange
}

var _ repositories.LocatorRepository = (*StubLocatorRepository)(nil)

func (s *StubLocatorRepository) Locate(change entities.CodeChange) []entities.DocumentationReference {
	s.Located = append(s.Located, change)
	return s.RefsBySymbol[change.Symbol]
}

// Factory wraps the stub as a repositories.LocatorFactory that ignores its
// arguments and always returns this instance.
func (s *StubLocatorRepository) Factory() repositories.LocatorFactory {
	return func(_ string, _ []string) repositories.LocatorRepository {
		return s
	}
}
