//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/docdrift/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// CodeChangeBuilder helps create test code changes with a fluent interface.
type CodeChangeBuilder struct {
	*testkit.BaseBuilder
	filePath       string
	symbol         string
	previousSymbol string
	kind           entities.ChangeKind
	oldCode        string
	newCode        string
	summary        string
}

// NewCodeChangeBuilder creates a new code-change builder with sensible defaults.
func NewCodeChangeBuilder() *CodeChangeBuilder {
	return &CodeChangeBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		filePath:    "pkg/service.go",
		symbol:      "ProcessOrder",
		kind:        entities.ChangeModified,
		oldCode:     "func ProcessOrder(id string) error {\n\treturn nil\n}",
		newCode:     "func ProcessOrder(id string, retries int) error {\n\treturn nil\n}",
		summary:     "modified ProcessOrder in pkg/service.go",
	}
}

// WithFilePath sets the changed file path.
func (b *CodeChangeBuilder) WithFilePath(path string) *CodeChangeBuilder {
	b.filePath = path
	return b
}

// WithSymbol sets the changed symbol name.
func (b *CodeChangeBuilder) WithSymbol(symbol string) *CodeChangeBuilder {
	b.symbol = symbol
	return b
}

// WithPreviousSymbol sets the name the symbol had before a rename.
func (b *CodeChangeBuilder) WithPreviousSymbol(symbol string) *CodeChangeBuilder {
	b.previousSymbol = symbol
	return b
}

// WithKind sets the change kind.
func (b *CodeChangeBuilder) WithKind(kind entities.ChangeKind) *CodeChangeBuilder {
	b.kind = kind
	return b
}

// WithOldCode sets the snippet from the base revision.
func (b *CodeChangeBuilder) WithOldCode(code string) *CodeChangeBuilder {
	b.oldCode = code
	return b
}

// WithNewCode sets the snippet from the target revision.
func (b *CodeChangeBuilder) WithNewCode(code string) *CodeChangeBuilder {
	b.newCode = code
	return b
}

// WithSummary sets the one-line change summary.
func (b *CodeChangeBuilder) WithSummary(summary string) *CodeChangeBuilder {
	b.summary = summary
	return b
}

// Build creates the code change (satisfies testkit.Builder interface).
func (b *CodeChangeBuilder) Build() interface{} {
	return b.BuildCodeChange()
}

// BuildCodeChange creates the code change with a concrete return type.
func (b *CodeChangeBuilder) BuildCodeChange() entities.CodeChange {
	return entities.CodeChange{
		FilePath:       b.filePath,
		Symbol:         b.symbol,
		PreviousSymbol: b.previousSymbol,
		Kind:           b.kind,
		OldCode:        b.oldCode,
		NewCode:        b.newCode,
		Summary:        b.summary,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CodeChangeBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.filePath = "pkg/service.go"
	b.symbol = "ProcessOrder"
	b.previousSymbol = ""
	b.kind = entities.ChangeModified
	b.oldCode = "func ProcessOrder(id string) error {\n\treturn nil\n}"
	b.newCode = "func ProcessOrder(id string, retries int) error {\n\treturn nil\n}"
	b.summary = "modified ProcessOrder in pkg/service.go"
	return b
}

// Clone creates a deep copy of the CodeChangeBuilder.
func (b *CodeChangeBuilder) Clone() testkit.Builder {
	return &CodeChangeBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		filePath:       b.filePath,
		symbol:         b.symbol,
		previousSymbol: b.previousSymbol,
		kind:           b.kind,
		oldCode:        b.oldCode,
		newCode:        b.newCode,
		summary:        b.summary,
	}
}
