package entities

// Metadata keys attached to generated issues.
const (
	MetadataProvider = "provider"
	MetadataSymbol   = "symbol"
	MetadataFallback = "generated_by_fallback"
)

// DriftIssue is the finalized, user-facing drift finding. One issue traces
// back to exactly one DriftCandidate; immutable once built.
type DriftIssue struct {
	DriftType            DriftType         `json:"drift_type"`
	Severity             Severity          `json:"severity"`
	FilePath             string            `json:"file_path"`
	Summary              string            `json:"summary"`
	Suggestion           string            `json:"suggestion"`
	CodeSnippet          string            `json:"code_snippet"`
	DocumentationSnippet string            `json:"documentation_snippet,omitempty"`
	Metadata             map[string]string `json:"metadata,omitempty"`
}

// GeneratedByFallback reports whether this issue carries the deterministic
// local fallback text instead of a generated suggestion.
func (i DriftIssue) GeneratedByFallback() bool {
	return i.Metadata[MetadataFallback] == "true"
}
