package entities

// RangeMode identifies which form of revision-range specification is in
// effect for a run.
type RangeMode string

const (
	// RangeExplicit compares FromRef against ToRef.
	RangeExplicit RangeMode = "explicit"
	// RangeSince compares a single base ref against the current HEAD.
	RangeSince RangeMode = "since"
	// RangeBranch compares a branch against the current HEAD.
	RangeBranch RangeMode = "branch"
	// RangeDefault compares HEAD~1 against HEAD when nothing was specified.
	RangeDefault RangeMode = "default"
)

// DefaultSinceRef is the base ref used when no range form is given.
const DefaultSinceRef = "HEAD~1"

// RangeSpec describes the revision range of one run. Exactly one form is
// honored per run; when several are supplied, precedence is
// explicit from/to > since > branch.
type RangeSpec struct {
	FromRef string
	ToRef   string
	Since   string
	Branch  string
}

// Mode returns the specification form honored for this spec, applying the
// documented precedence order.
func (s RangeSpec) Mode() RangeMode {
	switch {
	case s.FromRef != "" && s.ToRef != "":
		return RangeExplicit
	case s.Since != "":
		return RangeSince
	case s.Branch != "":
		return RangeBranch
	default:
		return RangeDefault
	}
}

// Refs resolves the spec into a (base, target) ref pair according to Mode.
func (s RangeSpec) Refs() (string, string) {
	switch s.Mode() {
	case RangeExplicit:
		return s.FromRef, s.ToRef
	case RangeSince:
		return s.Since, "HEAD"
	case RangeBranch:
		return s.Branch, "HEAD"
	default:
		return DefaultSinceRef, "HEAD"
	}
}
