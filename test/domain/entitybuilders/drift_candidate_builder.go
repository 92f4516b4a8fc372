//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/docdrift/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DriftCandidateBuilder helps create test drift candidates with a fluent interface.
type DriftCandidateBuilder struct {
	*testkit.BaseBuilder
	change        entities.CodeChange
	documentation []entities.DocumentationReference
	driftType     entities.DriftType
	description   string
}

// NewDriftCandidateBuilder creates a new drift-candidate builder with sensible defaults.
func NewDriftCandidateBuilder() *DriftCandidateBuilder {
	return &DriftCandidateBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		change:      NewCodeChangeBuilder().BuildCodeChange(),
		documentation: []entities.DocumentationReference{
			{FilePath: "docs/api.md", Snippet: "ProcessOrder handles order submission.", Changed: false},
		},
		driftType:   entities.DriftSignatureChange,
		description: "declaration of ProcessOrder changed but its documentation did not",
	}
}

// WithChange sets the underlying code change.
func (b *DriftCandidateBuilder) WithChange(change entities.CodeChange) *DriftCandidateBuilder {
	b.change = change
	return b
}

// WithDocumentation sets the correlated documentation references.
func (b *DriftCandidateBuilder) WithDocumentation(
	refs ...entities.DocumentationReference,
) *DriftCandidateBuilder {
	b.documentation = refs
	return b
}

// WithType sets the drift type.
func (b *DriftCandidateBuilder) WithType(driftType entities.DriftType) *DriftCandidateBuilder {
	b.driftType = driftType
	return b
}

// WithDescription sets the candidate description.
func (b *DriftCandidateBuilder) WithDescription(description string) *DriftCandidateBuilder {
	b.description = description
	return b
}

// Build creates the drift candidate (satisfies testkit.Builder interface).
func (b *DriftCandidateBuilder) Build() interface{} {
	return b.BuildDriftCandidate()
}

// BuildDriftCandidate creates the drift candidate with a concrete return type.
func (b *DriftCandidateBuilder) BuildDriftCandidate() entities.DriftCandidate {
	return entities.DriftCandidate{
		Change:        b.change,
		Documentation: b.documentation,
		Type:          b.driftType,
		Description:   b.description,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DriftCandidateBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.change = NewCodeChangeBuilder().BuildCodeChange()
	b.documentation = []entities.DocumentationReference{
		{FilePath: "docs/api.md", Snippet: "ProcessOrder handles order submission.", Changed: false},
	}
	b.driftType = entities.DriftSignatureChange
	b.description = "declaration of ProcessOrder changed but its documentation did not"
	return b
}

// Clone creates a deep copy of the DriftCandidateBuilder.
func (b *DriftCandidateBuilder) Clone() testkit.Builder {
	refs := make([]entities.DocumentationReference, len(b.documentation))
	copy(refs, b.documentation)
	return &DriftCandidateBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		change:        b.change,
		documentation: refs,
		driftType:     b.driftType,
		description:   b.description,
	}
}
