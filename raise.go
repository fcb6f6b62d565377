package deepexn

import (
	"fmt"
	"reflect"
	"strings"
)

// Raiser builds errors and captures their backtraces through a StackTracer.
type Raiser struct {
	tracer StackTracer
}

func NewRaiser(tracer StackTracer) *Raiser {
	return &Raiser{tracer: tracer}
}

var defaultRaiser = NewRaiser(&StackTracerImpl{})

// bareRaiser builds errors without a backtrace and never walks the stack.
var bareRaiser = &Raiser{}

// capture is always called from the unexported builder behind an exported
// entry point: capture, builder and entry point are skipped.
func (r *Raiser) capture() Stack {
	if r.tracer == nil {
		return nil
	}
	return r.tracer.GetStackTrace(3)
}

func (r *Raiser) Of(data Sexp) *StructuredError { return r.of(data) }

func (r *Raiser) Ofn(msg string, kv ...any) *StructuredError { return r.ofn(msg, kv...) }

func (r *Raiser) Reraise(err error, context string) error { return r.reraise(err, context) }

func (r *Raiser) Reraisef(err error, format string, args ...any) error {
	return r.reraise(err, sprintfStrict(format, args...))
}

func (r *Raiser) of(data Sexp) *StructuredError {
	return &StructuredError{data: data, stack: r.capture()}
}

func (r *Raiser) ofn(msg string, kv ...any) *StructuredError {
	return &StructuredError{data: describe(msg, kv), stack: r.capture()}
}

func (r *Raiser) reraise(err error, context string) error {
	return &ReraisedError{Context: context, Cause: err, stack: r.capture()}
}

// recovered is called from a deferred function, so the runtime's panic frames
// sit between it and the function that panicked.
func (r *Raiser) recovered(v any) *PanicError {
	if pe, ok := v.(*PanicError); ok {
		return pe
	}
	stack := r.capture()
	for len(stack) > 0 && strings.HasPrefix(stack[0].Function, "runtime.") {
		stack = stack[1:]
	}
	return &PanicError{Value: v, stack: stack}
}

// Of returns an error whose structured rendering is exactly data.
func Of(data Sexp) *StructuredError { return defaultRaiser.of(data) }

// Ofn is Of for the common (msg (key value) ...) shape.
func Ofn(msg string, kv ...any) *StructuredError { return defaultRaiser.ofn(msg, kv...) }

func Reraise(err error, context string) error { return defaultRaiser.reraise(err, context) }

// Reraisef panics when format and args do not match: that is a bug in the
// caller, not a failure to report.
func Reraisef(err error, format string, args ...any) error {
	return defaultRaiser.reraise(err, sprintfStrict(format, args...))
}

func describe(msg string, kv []any) Sexp {
	if len(kv) == 0 {
		return Atom(msg)
	}
	out := List{Atom(msg)}
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, List{toAtom(kv[i]), toAtom(kv[i+1])})
	}
	if len(kv)%2 == 1 {
		out = append(out, toAtom(kv[len(kv)-1]))
	}
	return out
}

func sprintfStrict(format string, args ...any) string {
	if err := checkFormat(format, args); err != "" {
		panic(fmt.Sprintf("deepexn: malformed format %q: %s", format, err))
	}
	return fmt.Sprintf(format, args...)
}

// checkFormat formats with every argument whose text could contain "%!"
// replaced by a placeholder, so any "%!" left in the result is one of fmt's
// error markers.
func checkFormat(format string, args []any) string {
	masked := make([]any, len(args))
	var badVerb string
	for i, a := range args {
		if isPlainScalar(a) {
			masked[i] = a
			continue
		}
		masked[i] = &maskedArg{value: a, bad: &badVerb}
	}
	s := fmt.Sprintf(format, masked...)
	if badVerb != "" {
		return badVerb
	}
	if strings.Count(s, "%!") > escapedBangs(format) {
		return s
	}
	return ""
}

// isPlainScalar reports whether a prints as a bare number or boolean. Those
// are passed through unmasked so they can still serve as '*' widths.
func isPlainScalar(a any) bool {
	switch a.(type) {
	case fmt.Formatter, fmt.Stringer, error:
		return false
	}
	if a == nil {
		return false
	}
	switch reflect.TypeOf(a).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

type maskedArg struct {
	value any
	bad   *string
}

func (m *maskedArg) Format(f fmt.State, verb rune) {
	out := fmt.Sprintf(fmt.FormatString(f, verb), m.value)
	prefix := "%!" + string(verb) + "("
	if strings.HasPrefix(out, prefix+fmt.Sprintf("%T", m.value)+"=") || out == prefix+"<nil>)" {
		*m.bad = out
	}
	_, _ = f.Write([]byte("_"))
}

// escapedBangs counts the "%!" that "%%" escapes followed by '!' put into
// the output.
func escapedBangs(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			continue
		}
		if format[i+1] == '%' {
			if i+2 < len(format) && format[i+2] == '!' {
				n++
			}
		}
		i++
	}
	return n
}
