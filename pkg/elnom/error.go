package elnom

import (
	"errors"
	"fmt"
)

// Error is a parse failure bound to the position where an expectation was
// not met. Input holds the exact unconsumed suffix at that point, so a
// caller can derive an offset by comparing lengths with the buffer it
// supplied; no separate position channel exists.
//
// Fatal marks a failure promoted by Cut: branch, optional and repetition
// combinators stop backtracking and surface it unchanged.
type Error[I Input] struct {
	Kind  Kind
	Input I
	Fatal bool
}

// NewError returns a recoverable parse failure of the given kind at in.
func NewError[I Input](kind Kind, in I) *Error[I] {
	return &Error[I]{Kind: kind, Input: in}
}

// NewFatal returns a fatal parse failure of the given kind at in.
func NewFatal[I Input](kind Kind, in I) *Error[I] {
	return &Error[I]{Kind: kind, Input: in, Fatal: true}
}

func (e *Error[I]) Error() string {
	if e.Fatal {
		return fmt.Sprintf("unrecoverable parse error (%s) at %s", e.Kind, snippet(e.Input))
	}
	return fmt.Sprintf("parse error (%s) at %s", e.Kind, snippet(e.Input))
}

func (e *Error[I]) failKind() Kind { return e.Kind }
func (e *Error[I]) isFatal() bool  { return e.Fatal }

// Incomplete reports that the buffer ended before a length-prefixed slice
// could be filled; Needed is the number of missing units. Only LengthData
// produces it. Control flow treats it like a fatal failure except where
// Complete and LengthValue convert it back into a recoverable one.
type Incomplete struct {
	Needed uint
}

func (e *Incomplete) Error() string {
	return fmt.Sprintf("incomplete input: %d more units needed", e.Needed)
}

// failure is satisfied by *Error[string] and *Error[[]byte]; it lets
// mode-agnostic combinators classify errors without knowing the buffer
// type they were raised on.
type failure interface {
	error
	failKind() Kind
	isFatal() bool
}

// IsRecoverable reports whether err is a recoverable parse failure, the
// only class that branch and repetition combinators backtrack over.
func IsRecoverable(err error) bool {
	var f failure
	return errors.As(err, &f) && !f.isFatal()
}

// IsFatal reports whether err is a parse failure promoted by Cut.
func IsFatal(err error) bool {
	var f failure
	return errors.As(err, &f) && f.isFatal()
}

// ErrKind extracts the failing parser's kind from a parse error. The
// second return is false for nil, *Incomplete and foreign errors.
func ErrKind(err error) (Kind, bool) {
	var f failure
	if !errors.As(err, &f) {
		return 0, false
	}
	return f.failKind(), true
}

// NeededSize extracts the missing unit count from an *Incomplete error.
func NeededSize(err error) (uint, bool) {
	var inc *Incomplete
	if !errors.As(err, &inc) {
		return 0, false
	}
	return inc.Needed, true
}

const snippetMax = 32

// snippet renders the head of a buffer for error messages.
func snippet[I Input](in I) string {
	switch v := any(in).(type) {
	case string:
		if len(v) > snippetMax {
			return fmt.Sprintf("%q...", v[:snippetMax])
		}
		return fmt.Sprintf("%q", v)
	case []byte:
		if len(v) > snippetMax {
			return fmt.Sprintf("%q...", v[:snippetMax])
		}
		return fmt.Sprintf("%q", v)
	}
	return ""
}
