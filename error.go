package deepexn

import (
	"fmt"
)

type Kind int

const (
	KindLeaf Kind = iota
	KindStructured
	KindFinally
	KindReraised
)

func (k Kind) String() string {
	switch k {
	case KindStructured:
		return "structured"
	case KindFinally:
		return "finally"
	case KindReraised:
		return "reraised"
	}
	return "leaf"
}

// KindOf classifies the outermost error only; use errors.As to search a chain.
func KindOf(err error) Kind {
	switch err.(type) {
	case *StructuredError:
		return KindStructured
	case *FinallyError:
		return KindFinally
	case *ReraisedError:
		return KindReraised
	}
	return KindLeaf
}

// StructuredError is created from a structured description and renders back to it.
type StructuredError struct {
	data  Sexp
	stack Stack
}

func (e *StructuredError) Data() Sexp    { return e.data }
func (e *StructuredError) Error() string { return Machine(e, RenderOptions{}) }

// FinallyError reports that an operation failed and the cleanup run after it failed too.
type FinallyError struct {
	Primary error
	Cleanup error
}

func NewFinally(primary, cleanup error) *FinallyError {
	return &FinallyError{Primary: primary, Cleanup: cleanup}
}

func (e *FinallyError) Error() string   { return Machine(e, RenderOptions{}) }
func (e *FinallyError) Unwrap() []error { return []error{e.Primary, e.Cleanup} }

// ReraisedError pairs a context label with the error it was raised from.
type ReraisedError struct {
	Context string
	Cause   error
	stack   Stack
}

func (e *ReraisedError) Error() string { return Machine(e, RenderOptions{}) }
func (e *ReraisedError) Unwrap() error { return e.Cause }

// PanicError is a recovered panic value. It counts as a leaf error.
type PanicError struct {
	Value any
	stack Stack
}

func (e *PanicError) Error() string { return Machine(e, RenderOptions{}) }

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Backtrace returns the stack captured when the outermost error was raised.
func Backtrace(err error) (Stack, bool) {
	var stack Stack
	switch e := err.(type) {
	case *StructuredError:
		stack = e.stack
	case *ReraisedError:
		stack = e.stack
	case *PanicError:
		stack = e.stack
	}
	return stack, len(stack) > 0
}

// WithoutBacktrace returns err with no stack attached. Errors of this package
// are copied with their stack dropped; any other error is returned as is.
func WithoutBacktrace(err error) error {
	switch e := err.(type) {
	case *StructuredError:
		c := *e
		c.stack = nil
		return &c
	case *ReraisedError:
		c := *e
		c.stack = nil
		return &c
	case *PanicError:
		c := *e
		c.stack = nil
		return &c
	}
	return err
}

func isDeepexnError(err error) bool {
	switch err.(type) {
	case *StructuredError, *FinallyError, *ReraisedError, *PanicError:
		return true
	}
	return false
}

func toAtom(v any) Sexp {
	switch x := v.(type) {
	case Sexp:
		return x
	case string:
		return Atom(x)
	case error:
		return ToSexp(x, RenderOptions{})
	}
	return Atom(fmt.Sprint(v))
}
