//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	"github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// ExtractCall records a single invocation of Extract.
type ExtractCall struct {
	RepoPath string
	Spec     entities.RangeSpec
}

// StubChangeRepository implements repositories.ChangeRepository with a canned
// extraction result.
type StubChangeRepository struct {
	Extraction *entities.Extraction
	Err        error

	// spy: calls received
	Calls []ExtractCall
}

var _ repositories.ChangeRepository = (*StubChangeRepository)(nil)

func (s *StubChangeRepository) Extract(
	_ context.Context, repoPath string, spec entities.RangeSpec,
) (*entities.Extraction, error) {
	s.Calls = append(s.Calls, ExtractCall{RepoPath: repoPath, Spec: spec})
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Extraction, nil
}
