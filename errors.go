package luapat

import "fmt"

// Kind classifies an [Error].
type Kind uint8

const (
	// Unterminated bracket set, trailing '%', missing arguments to %b,
	// missing '[' after %f.
	KindMalformedPattern Kind = iota + 1

	// Back-reference or replacement reference to a capture that does not
	// exist or is not closed yet, or a ')' without an open capture.
	KindInvalidCapture

	// More than MaxCaptures captures opened at once.
	KindTooManyCaptures

	// The matcher ran out of its recursion budget (MaxMatchDepth).
	KindPatternTooComplex

	// A gsub replacement is malformed or produced an unusable value.
	KindInvalidReplacement
)

func (k Kind) String() string {
	switch k {
	case KindMalformedPattern:
		return "malformed pattern"
	case KindInvalidCapture:
		return "invalid capture"
	case KindTooManyCaptures:
		return "too many captures"
	case KindPatternTooComplex:
		return "pattern too complex"
	case KindInvalidReplacement:
		return "invalid replacement"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is returned by every operation of this package when a pattern or a
// replacement cannot be used. Errors abort the whole call; they are never
// recovered internally.
type Error struct {
	Kind Kind
	err  string
}

func (e Error) Error() string {
	return e.err
}

// Is reports whether target is an Error of the same Kind, so that the
// sentinels below work with errors.Is.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Kind == e.Kind
}

var _ error = (*Error)(nil)

// Sentinels for errors.Is. Only their Kind is compared.
var (
	ErrMalformedPattern   = Error{Kind: KindMalformedPattern, err: "malformed pattern"}
	ErrInvalidCapture     = Error{Kind: KindInvalidCapture, err: "invalid capture"}
	ErrTooManyCaptures    = Error{Kind: KindTooManyCaptures, err: "too many captures"}
	ErrPatternTooComplex  = Error{Kind: KindPatternTooComplex, err: "pattern too complex"}
	ErrInvalidReplacement = Error{Kind: KindInvalidReplacement, err: "invalid replacement"}
)

func newError(kind Kind, msg string) Error {
	return Error{Kind: kind, err: msg}
}

func newErrorf(kind Kind, format string, args ...any) Error {
	return Error{Kind: kind, err: fmt.Sprintf(format, args...)}
}
