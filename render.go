package deepexn

import (
	"fmt"
)

// RenderOptions is passed explicitly to every rendering call; there is no
// process-wide setting.
type RenderOptions struct {
	// NeverElideBacktraces appends the captured backtrace to the structured
	// rendering instead of leaving it out.
	NeverElideBacktraces bool
}

// ToSexp returns the structured rendering of err. It never panics: payloads
// that fail to render degrade to an atom naming the error's type.
func ToSexp(err error, opts RenderOptions) (s Sexp) {
	defer func() {
		if recover() != nil {
			s = Atom(fmt.Sprintf("<unrenderable error: %T>", err))
		}
	}()
	switch e := err.(type) {
	case nil:
		return List{Atom("nil")}
	case *StructuredError:
		return withBacktrace(e.data, e.stack, opts)
	case *FinallyError:
		return List{Atom("Finally"), ToSexp(e.Primary, opts), ToSexp(e.Cleanup, opts)}
	case *ReraisedError:
		return withBacktrace(List{Atom("Reraised"), Atom(e.Context), ToSexp(e.Cause, opts)}, e.stack, opts)
	case *PanicError:
		return withBacktrace(List{Atom("panic"), panicValue(e.Value, opts)}, e.stack, opts)
	case Sexper:
		return e.Sexp()
	}
	return Atom(err.Error())
}

// Human is the multi-line rendering used for uncaught errors.
func Human(err error, opts RenderOptions) string { return Hum(ToSexp(err, opts)) }

// Machine is the single-line rendering used in logs.
func Machine(err error, opts RenderOptions) string { return Mach(ToSexp(err, opts)) }

func withBacktrace(s Sexp, stack Stack, opts RenderOptions) Sexp {
	if !opts.NeverElideBacktraces || len(stack) == 0 {
		return s
	}
	return List{s, stack.sexp()}
}

func panicValue(v any, opts RenderOptions) Sexp {
	if err, ok := v.(error); ok {
		return ToSexp(err, opts)
	}
	return toAtom(v)
}
