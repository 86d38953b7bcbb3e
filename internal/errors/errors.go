// Package errors formats the strict-mode diagnostics the evaluator
// raises for the conditions spec.md §7 lists as fatal. In sandboxed
// mode these same conditions are repaired instead of raised.
package errors

import (
	"fmt"
	"strings"
)

// Kind names one of the fatal evaluation conditions.
type Kind int

const (
	ParseIncomplete Kind = iota
	StackUnderflow
	DivisionByZero
	InvalidSort
	InvalidOperand
	LoopLimitExceeded
	NumericOverflowGuard
)

var kindNames = [...]string{
	ParseIncomplete:      "ParseIncomplete",
	StackUnderflow:       "StackUnderflow",
	DivisionByZero:       "DivisionByZero",
	InvalidSort:          "InvalidSort",
	InvalidOperand:       "InvalidOperand",
	LoopLimitExceeded:    "LoopLimitExceeded",
	NumericOverflowGuard: "NumericOverflowGuard",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Position locates a diagnostic within a program.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Diagnostic is a single strict-mode fatal error. Formatting follows
// the same header/excerpt/caret shape as DWScript's compiler errors.
type Diagnostic struct {
	Message string
	Source  string
	Pos     Position
	Kind    Kind
}

// New creates a Diagnostic with no source context attached.
func New(kind Kind, message string) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: message}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind Kind, format string, args ...any) *Diagnostic {
	return New(kind, fmt.Sprintf(format, args...))
}

// WithSource attaches the program source and the offending position,
// enabling a source-excerpt-and-caret rendering from Format.
func (d *Diagnostic) WithSource(source string, pos Position) *Diagnostic {
	d.Source = source
	d.Pos = pos
	return d
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic. If color is true, ANSI codes
// highlight the caret, matching the teacher's terminal output mode.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s", d.Kind, d.Message))

	if d.Source != "" && d.Pos.Line > 0 {
		sb.WriteString(fmt.Sprintf("\n  at line %d, column %d\n", d.Pos.Line, d.Pos.Column))
		if line := sourceLine(d.Source, d.Pos.Line); line != "" {
			lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
			if color {
				sb.WriteString("\033[1;31m")
			}
			sb.WriteString("^")
			if color {
				sb.WriteString("\033[0m")
			}
		}
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors formats multiple diagnostics, matching the teacher's
// multi-error report shape for batch contexts such as --trace replay.
func FormatErrors(diags []*Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("evaluation failed with %d error(s):\n\n", len(diags)))
	for i, d := range diags {
		sb.WriteString(fmt.Sprintf("[error %d of %d]\n", i+1, len(diags)))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
