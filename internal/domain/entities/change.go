package entities

// ChangeKind classifies how a symbol or file changed within a revision range.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeModified ChangeKind = "modified"
	ChangeRemoved  ChangeKind = "removed"
)

// CodeChange is one symbol-level (or file-level when Symbol is empty) change
// extracted from a revision range. Immutable once produced; its identity
// within a run is (FilePath, Symbol, Kind).
type CodeChange struct {
	FilePath string
	Symbol   string
	// PreviousSymbol carries the old name when a modification renamed the
	// symbol; documentation mentioning either name is related.
	PreviousSymbol string
	Kind           ChangeKind
	OldCode        string
	NewCode        string
	Summary        string
}

// CodeText returns the most current rendering of the change: the new code
// when present, otherwise the old code.
func (c CodeChange) CodeText() string {
	if c.NewCode != "" {
		return c.NewCode
	}
	return c.OldCode
}

// DocumentationReference points at documentation that plausibly describes a
// changed symbol or file. Changed reports whether that documentation file was
// itself modified in the same revision range.
type DocumentationReference struct {
	FilePath string
	Snippet  string
	Changed  bool
}

// IsInline reports whether the reference points into the changed source file
// itself (an inline comment) rather than a standalone documentation file.
func (r DocumentationReference) IsInline(change CodeChange) bool {
	return r.FilePath == change.FilePath
}

// Extraction is the full result of diffing one revision range: the ordered
// change records, every path touched in the range, and the resolved
// revision metadata for the final report.
type Extraction struct {
	Changes      []CodeChange
	ChangedPaths []string
	Metadata     RunMetadata
}
