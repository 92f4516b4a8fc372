package entities

import "time"

// RunMetadata records how the revision range of a run was specified and what
// it resolved to.
type RunMetadata struct {
	RepoPath       string    `json:"repo_path"`
	FromRef        string    `json:"from_ref,omitempty"`
	ToRef          string    `json:"to_ref,omitempty"`
	Since          string    `json:"since,omitempty"`
	Branch         string    `json:"branch,omitempty"`
	ResolvedBase   string    `json:"resolved_base,omitempty"`
	ResolvedTarget string    `json:"resolved_target,omitempty"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// DriftReport is the final outcome of one analysis run: the ordered issue
// sequence that survived severity filtering, plus run metadata. Read-only
// after assembly.
type DriftReport struct {
	Issues   []DriftIssue `json:"issues"`
	Metadata RunMetadata  `json:"metadata"`
}

// NewDriftReport assembles the final report: it retains only issues whose
// severity is at or above the threshold, preserving their relative order.
// Filtering happens here and nowhere else in the pipeline; re-assembling an
// already-filtered sequence with the same threshold yields the same sequence.
func NewDriftReport(issues []DriftIssue, threshold Severity, metadata RunMetadata) *DriftReport {
	filtered := make([]DriftIssue, 0, len(issues))
	for _, issue := range issues {
		if issue.Severity.AtLeast(threshold) {
			filtered = append(filtered, issue)
		}
	}

	if metadata.GeneratedAt.IsZero() {
		metadata.GeneratedAt = time.Now().UTC()
	}

	return &DriftReport{
		Issues:   filtered,
		Metadata: metadata,
	}
}

// HasCriticalIssues reports whether at least one retained issue is critical.
// Callers use this to decide a non-zero exit condition.
func (r *DriftReport) HasCriticalIssues() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
