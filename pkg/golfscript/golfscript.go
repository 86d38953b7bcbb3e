// Package golfscript is the embeddable library surface for running
// GolfScript programs without a CLI: a thin wrapper over internal/eval
// that mirrors original_source's top-level `golfscript(input, source)`
// entry point.
package golfscript

import (
	"github.com/golfscript-go/golfscript/internal/eval"
	"github.com/golfscript-go/golfscript/internal/value"
)

// sandboxedMaxLoops matches original_source's judging-run loop cap,
// tighter than eval.DefaultMaxLoops: this entry point is meant for
// running untrusted golf submissions against a fixed input, not for
// general long-running scripts.
const sandboxedMaxLoops = 2000

// Sandboxed runs program against input the way a golf judge would:
// input is pre-pushed onto the stack as a Str, the program never
// aborts on a fatal condition, and the final stack is wrapped into a
// single array and rendered with a trailing newline. The returned
// string is the accumulated output.
func Sandboxed(program, input string) string {
	e := eval.New(eval.ModeSandboxed)
	e.SetMaxLoops(sandboxedMaxLoops)
	e.Push(value.Str([]byte(input)))
	_ = e.Execute([]byte(program))
	wrapAndRender(e)
	return string(e.Output)
}

// Options configures Run for callers that want strict-mode failures
// surfaced as an error, or a custom seed/loop cap, instead of the
// judging-run defaults Sandboxed applies.
type Options struct {
	// Strict aborts the run on the first fatal condition instead of
	// repairing it, returning the diagnostic as an error.
	Strict bool
	// Seed overrides the LCG's initial state. Zero means "use the
	// evaluator's default seed".
	Seed uint64
	// MaxLoops overrides the loop-iteration cap. Zero means "use the
	// evaluator's default cap for the selected mode".
	MaxLoops uint64
}

// Run executes program with no pre-pushed input, per opts, and
// returns the final stack's wrapped rendering. In strict mode a fatal
// condition is returned as an error instead of being repaired.
func Run(program string, opts Options) (string, error) {
	mode := eval.ModeSandboxed
	if opts.Strict {
		mode = eval.ModeStrict
	}
	e := eval.New(mode)
	if opts.Seed != 0 {
		e.SetSeed(opts.Seed)
	}
	if opts.MaxLoops != 0 {
		e.SetMaxLoops(opts.MaxLoops)
	}
	if err := e.Execute([]byte(program)); err != nil {
		return "", err
	}
	wrapAndRender(e)
	return string(e.Output), nil
}

// wrapAndRender wraps the evaluator's stack in a single Arr and
// appends that Arr's bracketed rendering plus a trailing newline to
// Output. The stack itself is left as it is.
//
// This deliberately does not dispatch the `puts` token: puts always
// renders via the flat, unconditional value.ToGS (matching
// original_source's `self.print(&a.to_gs())` exactly, so that e.g.
// `[1 2 3]puts` emits `123`, not `[1 2 3]`). The bracketed form the
// CLI's and this package's top-level output use comes from applying
// value.Render once, directly, at this final display step only.
func wrapAndRender(e *eval.Evaluator) {
	wrapped := value.Arr(append([]value.Value(nil), e.Stack...))
	e.Output = append(e.Output, value.Render(wrapped)...)
	e.Output = append(e.Output, '\n')
}
