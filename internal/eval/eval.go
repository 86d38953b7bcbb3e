// Package eval implements the GolfScript evaluator: a stack machine
// that consumes the token stream produced by internal/token and
// dispatches each token to a built-in operator, a bound variable, or
// a literal push, per the polymorphic operator table.
package eval

import (
	"math"
	"math/big"

	"github.com/golfscript-go/golfscript/internal/errors"
	"github.com/golfscript-go/golfscript/internal/token"
	"github.com/golfscript-go/golfscript/internal/unescape"
	"github.com/golfscript-go/golfscript/internal/value"
)

// Mode selects which of the two evaluation contracts the Evaluator
// honors when it hits an otherwise-fatal condition.
type Mode int

const (
	// ModeSandboxed repairs stack underflow, clamps runaway loops and
	// exponents, and never aborts a running program. This is the
	// default contract: the one a library embedder wants when running
	// untrusted golf code.
	ModeSandboxed Mode = iota
	// ModeStrict aborts the program immediately on the first fatal
	// condition, surfacing it as an error from Execute.
	ModeStrict
)

func (m Mode) String() string {
	if m == ModeStrict {
		return "strict"
	}
	return "sandboxed"
}

// DefaultSeed is the LCG seed a fresh Evaluator starts with, matching
// original_source's fixed, intentionally weak seed.
const DefaultSeed = 123456789

// DefaultMaxLoops bounds do/while/until/n-times iteration counts in
// sandboxed mode so a runaway loop cannot hang the host process.
const DefaultMaxLoops = 2_000_000

// TraceEvent is emitted to an Evaluator's Trace hook (when set) after
// every token execution, for the CLI's --trace JSON Lines output.
type TraceEvent struct {
	Token token.Token
	Stack []value.Value
}

// Evaluator is a single GolfScript stack machine. It is not safe for
// concurrent use.
type Evaluator struct {
	vars      map[string]value.Value
	Trace     func(TraceEvent)
	Stack     []value.Value
	Output    []byte
	lb        []int
	rngState  uint64
	MaxLoops  uint64
	Mode      Mode
	Stable    bool
	curSource []byte
	curPos    token.Position
}

// New creates an Evaluator in the given mode, with the default seed
// and (in sandboxed mode) the default loop cap.
func New(mode Mode) *Evaluator {
	maxLoops := uint64(math.MaxUint64)
	if mode == ModeSandboxed {
		maxLoops = DefaultMaxLoops
	}
	return &Evaluator{
		vars:     make(map[string]value.Value),
		rngState: DefaultSeed,
		MaxLoops: maxLoops,
		Mode:     mode,
		Stable:   true,
	}
}

// SetSeed reseeds the linear congruential generator `rand` draws from.
func (e *Evaluator) SetSeed(seed uint64) { e.rngState = seed }

// SetMaxLoops overrides the loop-iteration cap.
func (e *Evaluator) SetMaxLoops(n uint64) { e.MaxLoops = n }

// Bind sets a variable binding directly, without going through `:`.
// Used by the library surface to seed input variables before a run.
func (e *Evaluator) Bind(name string, v value.Value) {
	e.vars[name] = v.Clone()
}

// Lookup returns a bound variable's value, for introspection.
func (e *Evaluator) Lookup(name string) (value.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Execute runs a full program, recovering from strict-mode aborts
// into a returned error. Sandboxed mode never panics, so it never
// returns a non-nil error here; the caller should instead inspect
// Stable to see whether a stack underflow was repaired.
func (e *Evaluator) Execute(code []byte) (err error) {
	if e.Mode == ModeStrict {
		defer func() {
			if r := recover(); r != nil {
				if d, ok := r.(*errors.Diagnostic); ok {
					err = d
					return
				}
				panic(r)
			}
		}()
	}
	e.run(code)
	return nil
}

// run tokenizes and executes code. A non-empty tokenizer remainder
// means the source contained an incomplete construct: strict mode
// aborts with ParseIncomplete, sandboxed mode treats the whole attempt
// as a no-op, matching original_source's sandboxed `run`.
func (e *Evaluator) run(code []byte) {
	prevSource, prevPos := e.curSource, e.curPos
	defer func() { e.curSource, e.curPos = prevSource, prevPos }()
	e.curSource = code
	rest, toks := token.Scan(code)
	if len(rest) > 0 {
		if e.Mode == ModeStrict {
			e.curPos = scanPosition(code, len(code)-len(rest))
			e.fail(errors.ParseIncomplete, "program has a trailing unparsed remainder")
		}
		return
	}
	e.runTokens(toks)
}

func (e *Evaluator) runTokens(toks []token.Token) {
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		e.curPos = tok.Pos
		if tok.IsSymbol(":") {
			i++
			if i < len(toks) {
				e.assign(toks[i])
			}
			continue
		}
		e.execToken(tok)
		if e.Trace != nil {
			e.Trace(TraceEvent{Token: tok, Stack: append([]value.Value(nil), e.Stack...)})
		}
	}
}

// scanPosition walks src up to offset, counting newlines, to recover
// the line/column a tokenizer remainder starts at. Used only for the
// ParseIncomplete diagnostic, which is raised before any token in the
// trailing remainder has a Pos of its own.
func scanPosition(src []byte, offset int) token.Position {
	line, col := 1, 1
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return token.Position{Offset: offset, Line: line, Column: col}
}

// assign implements `:name`: bind name to the current top of stack
// without popping it. Per original_source, `:` always consumes the
// following token as a name regardless of its kind.
func (e *Evaluator) assign(name token.Token) {
	top, ok := e.Top()
	if !ok {
		if e.Mode == ModeStrict {
			e.fail(errors.StackUnderflow, "`:` requires a value on the stack to bind")
		}
		e.Stable = false
		return
	}
	e.vars[string(name.Lexeme())] = top.Clone()
}

// execToken dispatches a single token: a variable binding shadows a
// built-in of the same name, matching original_source's lookup-before-
// match order.
func (e *Evaluator) execToken(tok token.Token) {
	if v, ok := e.vars[string(tok.Lexeme())]; ok {
		e.goValue(v)
		return
	}
	switch tok.Kind {
	case token.KindIntLiteral:
		n := new(big.Int)
		n.SetString(string(tok.Body), 10)
		e.Push(value.Int(n))
	case token.KindSingleQuotedString:
		e.Push(value.Str(unescape.Decode(tok.Body, true)))
	case token.KindDoubleQuotedString:
		e.Push(value.Str(unescape.Decode(tok.Body, false)))
	case token.KindBlock:
		e.Push(value.Blk(append([]byte(nil), tok.Body...)))
	case token.KindComment:
		// no effect
	case token.KindSymbol:
		e.execSymbol(string(tok.Body))
	}
}

// goValue is the shared "go" dispatch used for variable lookups and
// block invocation from and/or/xor/if/do/while/until: a block is
// executed in place, anything else is pushed verbatim.
func (e *Evaluator) goValue(v value.Value) {
	if v.IsBlk() {
		e.run(v.AsBytes())
		return
	}
	e.Push(v)
}

// fail raises a strict-mode diagnostic, attaching the currently
// executing token's source and position so Format can render the
// source-excerpt-and-caret the teacher's compiler errors use. Only
// ever called when e.Mode == ModeStrict; sandboxed code paths must
// not call it.
func (e *Evaluator) fail(kind errors.Kind, message string) {
	d := errors.New(kind, message)
	if e.curSource != nil {
		d = d.WithSource(string(e.curSource), errors.Position{
			Offset: e.curPos.Offset,
			Line:   e.curPos.Line,
			Column: e.curPos.Column,
		})
	}
	panic(d)
}
