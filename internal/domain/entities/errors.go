package entities

import (
	"errors"
	"fmt"
)

// ErrCriticalIssues signals that a completed run produced at least one
// critical issue. It is not a failure of the run itself; callers map it to a
// non-zero exit code.
var ErrCriticalIssues = errors.New("drift report contains critical issues")

// RevisionResolutionError indicates that a revision reference in the range
// specification did not resolve. The run aborts before any candidate is
// produced.
type RevisionResolutionError struct {
	Ref string
	Err error
}

func (e *RevisionResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve revision %q: %v", e.Ref, e.Err)
}

func (e *RevisionResolutionError) Unwrap() error {
	return e.Err
}

// RepositoryStateError indicates that the target path is not a usable
// repository. The run aborts before any candidate is produced.
type RepositoryStateError struct {
	Path string
	Err  error
}

func (e *RepositoryStateError) Error() string {
	return fmt.Sprintf("not a valid repository at %q: %v", e.Path, e.Err)
}

func (e *RepositoryStateError) Unwrap() error {
	return e.Err
}
