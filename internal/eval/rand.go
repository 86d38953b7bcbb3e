package eval

import (
	"math/big"

	"github.com/golfscript-go/golfscript/internal/value"
)

// lcgNext advances the linear congruential generator one step and
// returns the new state. The multiplier and increment are fixed and
// must not be substituted for a stronger generator: programs that
// call `rand` depend on this exact, reproducible (and intentionally
// weak) sequence.
func (e *Evaluator) lcgNext() uint64 {
	e.rngState = e.rngState*1664525 + 1013904223
	return e.rngState
}

// rand implements the `rand` operator: pop an integer n and push a
// uniformly distributed integer in [0, n). A non-positive n yields 0
// without advancing the generator.
func (e *Evaluator) rand() {
	n := e.Pop()
	limit := n.AsInt()
	if limit.Sign() <= 0 {
		e.Push(value.IntFromInt64(0))
		return
	}
	state := e.lcgNext()
	mod := new(big.Int).SetUint64(state)
	mod.Mod(mod, limit)
	e.Push(value.Int(mod))
}
