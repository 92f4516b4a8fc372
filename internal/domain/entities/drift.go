package entities

// DriftType is a stable string identifier for the kind of documentation
// drift a candidate represents. New values may be added without breaking
// existing ones.
type DriftType string

const (
	DriftSignatureChange         DriftType = "signature_change"
	DriftBehaviorChange          DriftType = "behavior_change"
	DriftRemovedWithoutDocUpdate DriftType = "removed_without_doc_update"
	DriftMissingExampleUpdate    DriftType = "missing_example_update"
	DriftStaleInlineComment      DriftType = "stale_inline_comment"
	DriftUndocumentedAddition    DriftType = "undocumented_addition"
)

// DriftCandidate is the internal hypothesis that drift may exist for a given
// code change. It is transient: produced and consumed within one run.
type DriftCandidate struct {
	Change        CodeChange
	Documentation []DocumentationReference
	Type          DriftType
	Description   string
}

// DefaultSeverity returns the severity used for a drift type whenever the
// suggestion step cannot produce a better-informed value.
func DefaultSeverity(driftType DriftType) Severity {
	switch driftType {
	case DriftRemovedWithoutDocUpdate:
		return SeverityCritical
	case DriftStaleInlineComment:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
