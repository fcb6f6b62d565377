package deepexn

import (
	"fmt"
	"runtime"
	"strings"
)

//go:generate mockery
type StackTracer interface {
	// GetStackTrace returns the stack of its caller, skipping skip further frames.
	GetStackTrace(skip int) Stack
}

type Frame struct {
	Function string
	File     string
	Line     int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
}

type Stack []Frame

func (s Stack) String() string {
	var b strings.Builder
	for _, f := range s {
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return b.String()
}

func (s Stack) sexp() Sexp {
	out := make(List, 0, len(s)+1)
	out = append(out, Atom("backtrace"))
	for _, f := range s {
		out = append(out, Atom(f.String()))
	}
	return out
}

const maxStackDepth = 32

type StackTracerImpl struct{}

func (s *StackTracerImpl) GetStackTrace(skip int) Stack {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	stack := make(Stack, 0, n)
	for {
		f, more := frames.Next()
		stack = append(stack, Frame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			break
		}
	}
	return stack
}
