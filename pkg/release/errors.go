package release

import (
	"errors"
	"fmt"

	"github.com/vertti/releasegate/pkg/version"
)

// Rejection kinds. Every error returned by the validators is a *TransitionError
// whose Kind is one of these.
var (
	// ErrInvalidVersion means the stable/prerelease boundary was crossed illegally.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrInvalidVersionNumber means MAJOR.MINOR.BUGFIX is not a single major or minor bump.
	ErrInvalidVersionNumber = errors.New("invalid version number")
	// ErrInvalidSuffix means the alpha/beta/rc stage or counter did not advance by one step.
	ErrInvalidSuffix = errors.New("invalid suffix")
	// ErrMalformedVersion means an input could not be parsed at all.
	ErrMalformedVersion = version.ErrMalformedVersion
)

// TransitionError describes a rejected old -> new transition.
// Old and New hold the compared values: full versions, cores or suffixes
// depending on which rule rejected the transition.
type TransitionError struct {
	Kind error
	Old  string
	New  string
	Err  error // parse failure for ErrMalformedVersion
}

func (e *TransitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v (transition %s -> %s)", e.Err, quoteEmpty(e.Old), quoteEmpty(e.New))
	}
	return fmt.Sprintf("%v %s after %s", e.Kind, quoteEmpty(e.New), quoteEmpty(e.Old))
}

// Unwrap exposes both the kind and the parse cause to errors.Is and errors.As.
func (e *TransitionError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func reject(kind error, oldValue, newValue fmt.Stringer) *TransitionError {
	return &TransitionError{Kind: kind, Old: oldValue.String(), New: newValue.String()}
}

func quoteEmpty(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
