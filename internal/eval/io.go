package eval

import (
	"math/big"

	"github.com/golfscript-go/golfscript/internal/value"
)

func (e *Evaluator) print(bs []byte) {
	e.Output = append(e.Output, bs...)
}

// newline implements `n`: push a one-byte Str containing a newline.
func (e *Evaluator) newline() {
	e.Push(value.Str([]byte("\n")))
}

// printOp implements `print`: pop a value and emit its GolfScript
// rendering with no trailing newline. Nothing is emitted if the stack
// is empty.
func (e *Evaluator) printOp() {
	if v, ok := e.popOk(); ok {
		e.print(value.ToGS(v))
	}
}

// pOp implements `p`: pop a value, emit its inspected form, then a
// newline regardless of whether anything was popped.
func (e *Evaluator) pOp() {
	if v, ok := e.popOk(); ok {
		e.print(value.Inspect(v))
	}
	e.print([]byte("\n"))
}

// putsOp implements `puts`: pop a value, emit its GolfScript rendering,
// then a newline regardless of whether anything was popped.
func (e *Evaluator) putsOp() {
	if v, ok := e.popOk(); ok {
		e.print(value.ToGS(v))
	}
	e.print([]byte("\n"))
}

// absOp implements `abs`: absolute value on Int; any other popped
// value (or an empty stack, treated as Int 0) is pushed back unchanged.
func (e *Evaluator) absOp() {
	v, ok := e.popOk()
	if !ok {
		v = value.Int(big.NewInt(0))
	}
	if v.IsInt() {
		e.Push(value.Int(new(big.Int).Abs(v.AsInt())))
		return
	}
	e.Push(v)
}
