package repositories

import (
	"github.com/rios0rios0/docdrift/internal/domain/entities"
)

// LocatorRepository finds documentation that plausibly describes a changed
// symbol or file. Locate never fails; an empty result means no documentation
// correlates, which is itself a meaningful signal downstream.
type LocatorRepository interface {
	Locate(change entities.CodeChange) []entities.DocumentationReference
}

// LocatorFactory builds a locator for one run, indexed over the repository's
// documentation and the set of paths changed in the revision range.
type LocatorFactory func(repoPath string, changedPaths []string) LocatorRepository
