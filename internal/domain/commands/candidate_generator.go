package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
)

// DeclarationHeuristic decides whether a modified symbol changed its declared
// interface (signature) rather than only its internal logic. It is a
// pluggable policy so the signature/behavior boundary can evolve without
// touching the rest of the pipeline.
type DeclarationHeuristic func(oldCode, newCode string) bool

// CandidateGenerator decides whether a code change paired with its
// documentation references yields a drift candidate, and with which type.
// The decision is deterministic and total: every change maps to no candidate
// or exactly one.
type CandidateGenerator struct {
	policy             entities.AnalysisPolicy
	declarationChanged DeclarationHeuristic
}

// NewCandidateGenerator creates a generator with the default declaration
// heuristic (first-declaration-line comparison).
func NewCandidateGenerator(policy entities.AnalysisPolicy) *CandidateGenerator {
	return NewCandidateGeneratorWithHeuristic(policy, DeclarationLineChanged)
}

// NewCandidateGeneratorWithHeuristic creates a generator with a custom
// signature/behavior heuristic.
func NewCandidateGeneratorWithHeuristic(
	policy entities.AnalysisPolicy,
	heuristic DeclarationHeuristic,
) *CandidateGenerator {
	return &CandidateGenerator{
		policy:             policy,
		declarationChanged: heuristic,
	}
}

// Generate applies the decision rules in their fixed order; the first
// matching rule wins. The order must be preserved exactly for
// reproducibility.
func (it *CandidateGenerator) Generate(
	change entities.CodeChange,
	refs []entities.DocumentationReference,
) (entities.DriftCandidate, bool) {
	if it.policy.IgnorePrivateSymbols && isPrivateSymbol(change) {
		return entities.DriftCandidate{}, false
	}

	if change.Kind == entities.ChangeRemoved && !anyChanged(refs) {
		return it.candidate(change, refs, entities.DriftRemovedWithoutDocUpdate), true
	}

	// Inline references cannot speak for standalone documentation, so the
	// signature/behavior rule only considers doc-file references.
	docRefs := documentationRefs(change, refs)
	if change.Kind == entities.ChangeModified && len(docRefs) > 0 && !anyChanged(docRefs) {
		driftType := entities.DriftBehaviorChange
		if it.declarationChanged(change.OldCode, change.NewCode) {
			driftType = entities.DriftSignatureChange
		}
		return it.candidate(change, refs, driftType), true
	}

	if it.policy.CheckExamples && hasUnchangedExampleRef(change, refs) {
		return it.candidate(change, refs, entities.DriftMissingExampleUpdate), true
	}

	if it.policy.CheckInlineComments && len(refs) > 0 && onlyInlineRefs(change, refs) {
		return it.candidate(change, refs, entities.DriftStaleInlineComment), true
	}

	if change.Kind == entities.ChangeAdded && len(refs) == 0 {
		return it.candidate(change, refs, entities.DriftUndocumentedAddition), true
	}

	return entities.DriftCandidate{}, false
}

func (it *CandidateGenerator) candidate(
	change entities.CodeChange,
	refs []entities.DocumentationReference,
	driftType entities.DriftType,
) entities.DriftCandidate {
	return entities.DriftCandidate{
		Change:        change,
		Documentation: refs,
		Type:          driftType,
		Description:   describeDrift(driftType, change),
	}
}

// DeclarationLineChanged is the default signature/behavior heuristic: the
// change touches the declared interface when the first non-empty line of the
// snippet differs between revisions.
func DeclarationLineChanged(oldCode, newCode string) bool {
	return firstNonEmptyLine(oldCode) != firstNonEmptyLine(newCode)
}

func firstNonEmptyLine(code string) string {
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// isPrivateSymbol applies the name-convention heuristic: a leading
// underscore, or a lower-case initial for Go sources.
func isPrivateSymbol(change entities.CodeChange) bool {
	if change.Symbol == "" {
		return false
	}
	if strings.HasPrefix(change.Symbol, "_") {
		return true
	}
	if filepath.Ext(change.FilePath) == ".go" {
		first := []rune(change.Symbol)[0]
		return unicode.IsLower(first)
	}
	return false
}

func anyChanged(refs []entities.DocumentationReference) bool {
	for _, ref := range refs {
		if ref.Changed {
			return true
		}
	}
	return false
}

func documentationRefs(
	change entities.CodeChange,
	refs []entities.DocumentationReference,
) []entities.DocumentationReference {
	result := make([]entities.DocumentationReference, 0, len(refs))
	for _, ref := range refs {
		if !ref.IsInline(change) {
			result = append(result, ref)
		}
	}
	return result
}

func onlyInlineRefs(change entities.CodeChange, refs []entities.DocumentationReference) bool {
	for _, ref := range refs {
		if !ref.IsInline(change) {
			return false
		}
	}
	return true
}

// hasUnchangedExampleRef reports whether an example-bearing documentation
// reference exists that did not change while the code did. Example-bearing
// means the snippet carries a fenced code block or the doc path mentions
// examples.
func hasUnchangedExampleRef(change entities.CodeChange, refs []entities.DocumentationReference) bool {
	for _, ref := range refs {
		if ref.IsInline(change) || ref.Changed {
			continue
		}
		if strings.Contains(ref.Snippet, "```") ||
			strings.Contains(strings.ToLower(ref.FilePath), "example") {
			return true
		}
	}
	return false
}

// describeDrift builds the candidate description used as fallback text
// everywhere downstream.
func describeDrift(driftType entities.DriftType, change entities.CodeChange) string {
	target := change.FilePath
	if change.Symbol != "" {
		target = fmt.Sprintf("%s (%s)", change.Symbol, change.FilePath)
	}

	switch driftType {
	case entities.DriftRemovedWithoutDocUpdate:
		return fmt.Sprintf("%s was removed but related documentation was not updated", target)
	case entities.DriftSignatureChange:
		return fmt.Sprintf("The declaration of %s changed but related documentation was not updated", target)
	case entities.DriftBehaviorChange:
		return fmt.Sprintf("The implementation of %s changed but related documentation was not updated", target)
	case entities.DriftMissingExampleUpdate:
		return fmt.Sprintf("Documentation examples mentioning %s did not change while the code did", target)
	case entities.DriftStaleInlineComment:
		return fmt.Sprintf("Inline comments around %s may no longer match the changed code", target)
	case entities.DriftUndocumentedAddition:
		return fmt.Sprintf("%s was added without any related documentation", target)
	default:
		return fmt.Sprintf("Possible documentation drift around %s", target)
	}
}
