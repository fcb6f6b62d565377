package deepexn

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// TopLevel is the last catch point of a program: it prints uncaught errors
// in human form and turns them into an exit code.
type TopLevel struct {
	Out      io.Writer
	Exit     func(code int)
	ExitCode int
	Render   RenderOptions
	Logger   Logger
}

func NewTopLevel(cfg Config, logger Logger) *TopLevel {
	return &TopLevel{
		Out:      os.Stderr,
		Exit:     os.Exit,
		ExitCode: cfg.ExitCode,
		Render:   cfg.RenderOptions(),
		Logger:   logger,
	}
}

// Handle runs op. A returned error or a panic is printed to Out; the process
// then exits if exitOnError is set and Handle returns otherwise.
func (t *TopLevel) Handle(exitOnError bool, op func() error) {
	err := t.run(op)
	if err == nil {
		return
	}
	t.report(err)
	if exitOnError {
		t.exit()
	}
}

// HandleAndExit returns op's result, or prints the failure and exits.
func HandleAndExit[T any](t *TopLevel, op func() (T, error)) T {
	var result T
	err := t.run(func() error {
		var err error
		result, err = op()
		return err
	})
	if err != nil {
		t.report(err)
		t.exit()
		var zero T
		return zero
	}
	return result
}

func (t *TopLevel) run(op func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = defaultRaiser.recovered(p)
		}
	}()
	return op()
}

func (t *TopLevel) report(err error) {
	if t.Logger != nil {
		t.Logger.Error("uncaught error", ErrorField, err)
	}
	human := Human(err, t.Render)
	_, _ = fmt.Fprintf(t.Out, "Uncaught error:\n\n  %s\n", strings.ReplaceAll(human, "\n", "\n  "))
}

func (t *TopLevel) exit() {
	code := t.ExitCode
	if code == 0 {
		code = 1
	}
	t.Exit(code)
}

func defaultTopLevel() *TopLevel {
	return newEnvTopLevel(os.Stderr)
}

// newEnvTopLevel reads the environment overrides. An invalid override is
// reported to out and the defaults are used instead.
func newEnvTopLevel(out io.Writer) *TopLevel {
	cfg, err := LoadConfig("")
	if err != nil {
		_, _ = fmt.Fprintf(out, "Ignoring invalid configuration, using defaults:\n\n  %s\n\n",
			strings.ReplaceAll(Human(err, RenderOptions{}), "\n", "\n  "))
		cfg = DefaultConfig()
	}
	tl := NewTopLevel(cfg, nil)
	tl.Out = out
	return tl
}

// HandleUncaught runs op under a top level that writes to stderr and exits
// with the configured code, 1 unless DEEPEXN_EXIT_CODE says otherwise.
func HandleUncaught(exitOnError bool, op func() error) {
	defaultTopLevel().Handle(exitOnError, op)
}

func HandleUncaughtAndExit[T any](op func() (T, error)) T {
	return HandleAndExit(defaultTopLevel(), op)
}
