package ahocorasick

import "fmt"

// ErrorKind classifies errors raised by the automaton, per the two-kind
// taxonomy: operations called in the wrong lifecycle phase are usage
// errors, while allocation failures and caller-callback failures are
// resource errors.
type ErrorKind uint8

const (
	// UsageError indicates an operation was called in the wrong
	// lifecycle phase. No state is mutated when this is returned.
	UsageError ErrorKind = iota

	// ResourceError indicates an out-of-memory condition or a
	// caller-supplied callback signaling failure.
	ResourceError
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case UsageError:
		return "usage error"
	case ResourceError:
		return "resource error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// AutomatonError is the error type returned by every operation in this
// package. Kind distinguishes usage errors (safe to retry differently)
// from resource errors (the index should be torn down rather than reused).
type AutomatonError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *AutomatonError) Error() string {
	return e.Message
}

// Sentinel errors returned by Builder and Automaton methods.
var (
	// ErrFinalized indicates AddPattern was called after Build already
	// succeeded on this Builder.
	ErrFinalized = &AutomatonError{
		Kind:    UsageError,
		Message: "ahocorasick: pattern added after builder was finalized",
	}

	// ErrAlreadyFinalized indicates Build was called a second time on
	// the same Builder. The second call is a no-op and returns this
	// error rather than a new Automaton.
	ErrAlreadyFinalized = &AutomatonError{
		Kind:    UsageError,
		Message: "ahocorasick: builder already finalized",
	}

	// ErrNilVisitor indicates Each was called with a nil Visitor.
	ErrNilVisitor = &AutomatonError{
		Kind:    UsageError,
		Message: "ahocorasick: nil visitor callback",
	}

	// ErrClosed indicates a method was called on an Automaton after
	// Release.
	ErrClosed = &AutomatonError{
		Kind:    UsageError,
		Message: "ahocorasick: automaton already released",
	}

	// ErrAborted indicates a Visitor returned false, aborting the query
	// before the end of the phrase was reached.
	ErrAborted = &AutomatonError{
		Kind:    ResourceError,
		Message: "ahocorasick: query aborted by callback",
	}
)
