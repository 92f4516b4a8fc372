package repositories

import (
	"context"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
)

// ChangeRepository resolves a revision-range specification against a
// repository into symbol-level code-change records. Inspection is strictly
// read-only.
//
// Extract fails with *entities.RepositoryStateError when repoPath is not a
// valid repository and *entities.RevisionResolutionError when a ref in the
// spec does not resolve.
type ChangeRepository interface {
	Extract(ctx context.Context, repoPath string, spec entities.RangeSpec) (*entities.Extraction, error)
}
