// Package diag implements the reporting-context contract spec §6 names as
// an external collaborator: accumulating user-facing diagnostics, mapping
// source locations to line numbers, and the fatal/logical-fatal escalation
// used by the lexer and the function builder.
package diag

import (
	"fmt"

	"github.com/papyc-lang/papyc/internal/token"
)

// Severity distinguishes a recoverable diagnostic from one that stops the
// compilation of the current file outright.
type Severity int

const (
	SeverityError Severity = iota
	SeverityFatal
)

func (s Severity) String() string {
	if s == SeverityFatal {
		return "fatal"
	}
	return "error"
}

// Diagnostic is one accumulated message with its source location.
type Diagnostic struct {
	Severity Severity
	Location token.Location
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at [%d,%d): %s", d.Severity, d.Location.Start, d.Location.End, d.Message)
}

// FatalError is the error value a Context.Fatal/LogicalFatal panic carries.
// Compile (the file-parallel driver) recovers exactly this type at the
// per-file worker boundary and turns it back into a returned error; any
// other recovered value is re-panicked, since it indicates a bug the
// fatal/error split was never meant to paper over.
type FatalError struct {
	Location token.Location
	HasLoc   bool
	Message  string
}

func (e *FatalError) Error() string {
	if e.HasLoc {
		return fmt.Sprintf("fatal at [%d,%d): %s", e.Location.Start, e.Location.End, e.Message)
	}
	return "fatal: " + e.Message
}

// Context accumulates diagnostics for one file's compilation and resolves
// byte offsets to 1-based line numbers. It is not safe for concurrent use;
// spec §5 gives each file-compile worker its own Context, same as its own
// Arena and Lexer.
type Context struct {
	diagnostics []Diagnostic
	lineOffsets []int // byte offset of the start of each line, ascending
}

// NewContext creates a Context whose line 1 begins at offset 0.
func NewContext() *Context {
	return &Context{lineOffsets: []int{0}}
}

// Error records a recoverable diagnostic and returns it as an error value
// so callers that want to stop eagerly still can, even though most won't
// (spec §7's "accumulated, continue best-effort" propagation policy).
func (c *Context) Error(loc token.Location, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	c.diagnostics = append(c.diagnostics, Diagnostic{Severity: SeverityError, Location: loc, Message: msg})
	return fmt.Errorf("%s", msg)
}

// Fatal records a fatal diagnostic and panics with *FatalError, unwinding
// the current file's compilation immediately (spec §7 item 3/4).
func (c *Context) Fatal(loc token.Location, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.diagnostics = append(c.diagnostics, Diagnostic{Severity: SeverityFatal, Location: loc, Message: msg})
	panic(&FatalError{Location: loc, HasLoc: true, Message: msg})
}

// LogicalFatal is Fatal without a source location, for compiler-invariant
// violations that aren't attributable to any one place in user source (a
// temp-var index overflow, an unresolved label after lowering finishes).
func (c *Context) LogicalFatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.diagnostics = append(c.diagnostics, Diagnostic{Severity: SeverityFatal, Message: msg})
	panic(&FatalError{Message: msg})
}

// PushNextLineOffset records that a new line begins immediately after loc.
// The lexer calls this on every EOL, CRLF-normalized newline inside a
// multiline comment, and embedded newline inside a doc comment (spec §4.C).
func (c *Context) PushNextLineOffset(loc token.Location) {
	c.lineOffsets = append(c.lineOffsets, loc.End)
}

// GetLocationLine resolves loc to a 1-based line number. hint is the line
// number returned for the previous (monotonically earlier) location in the
// same file; passing it lets the search start near the right answer
// instead of binary-searching from scratch every call, the same
// incremental pattern the function builder's debug-map pass relies on
// (spec §4.E "populate_function").
func (c *Context) GetLocationLine(loc token.Location, hint int) int {
	// lineOffsets[i] is the start offset of line i+1. Find the greatest i
	// such that lineOffsets[i] <= loc.Start.
	i := hint - 1
	if i < 0 {
		i = 0
	}
	if i >= len(c.lineOffsets) {
		i = len(c.lineOffsets) - 1
	}
	for i+1 < len(c.lineOffsets) && c.lineOffsets[i+1] <= loc.Start {
		i++
	}
	for i > 0 && c.lineOffsets[i] > loc.Start {
		i--
	}
	return i + 1
}

// Diagnostics returns every accumulated diagnostic in emission order.
func (c *Context) Diagnostics() []Diagnostic {
	return c.diagnostics
}

// HasErrors reports whether any diagnostic (of any severity) was recorded.
func (c *Context) HasErrors() bool {
	return len(c.diagnostics) > 0
}
