// Package deepexn carries failures as structured, serializable error values.
//
// Every error handled here is one of four kinds: a leaf (any error), a
// structured error built from an S-expression with Of, a FinallyError pairing
// an operation's failure with its cleanup's failure, or a ReraisedError
// pairing a context label with its cause. All of them render three ways:
// ToSexp (structured), Human (multi-line) and Machine (single line).
// Rendering never panics.
//
// Backtraces are captured when an error is raised and left out of renderings
// unless RenderOptions.NeverElideBacktraces is set. The options are passed to
// each call rather than held in a global.
//
// Protect and ProtectFunc guarantee cleanup on every exit path, Trace adds
// breadcrumbs while an error propagates, and TopLevel turns whatever reaches
// the top of a program into a report on stderr and an exit code.
package deepexn
