package eval

import (
	"math/big"

	"github.com/golfscript-go/golfscript/internal/coerce"
	"github.com/golfscript-go/golfscript/internal/errors"
	"github.com/golfscript-go/golfscript/internal/util"
	"github.com/golfscript-go/golfscript/internal/value"
)

// plus implements `+`: Int+Int adds; any other pair coerces to the
// higher-ranked kind and concatenates.
func (e *Evaluator) plus() {
	b := e.Pop()
	a := e.Pop()
	e.Push(value.Plus(a, b))
}

// minus implements `-`: Int-Int subtracts; sequence pairs coerce to a
// common kind and set-subtract, preserving a's order.
func (e *Evaluator) minus() {
	b := e.Pop()
	a := e.Pop()
	c := coerce.Coerce(a, b)
	switch c.Kind {
	case value.KindInt:
		e.Push(value.Int(new(big.Int).Sub(c.A.AsInt(), c.B.AsInt())))
	case value.KindArr:
		e.Push(value.Arr(util.SetSubtract(c.A.AsArr(), c.B.AsArr())))
	case value.KindStr:
		e.Push(value.Str(util.SetSubtractBytes(c.A.AsBytes(), c.B.AsBytes())))
	case value.KindBlk:
		e.Push(value.Blk(util.SetSubtractBytes(c.A.AsBytes(), c.B.AsBytes())))
	}
}

// asterisk implements `*`: multiply, join, fold, repeat, or times,
// selected by operand kind exactly as original_source's `asterisk`.
func (e *Evaluator) asterisk() {
	b := e.Pop()
	a := e.Pop()
	switch {
	case a.IsInt() && b.IsInt():
		e.Push(value.Int(new(big.Int).Mul(a.AsInt(), b.AsInt())))

	case a.IsArr() && b.IsArr():
		e.Push(joinValuesArr(a.AsArr(), b.AsArr()))
	case a.IsArr() && b.IsStr():
		e.Push(joinValues(a.AsArr(), b))
	case a.IsStr() && b.IsArr():
		e.Push(joinValues(b.AsArr(), a))
	case a.IsStr() && b.IsStr():
		elems := make([]value.Value, len(a.AsBytes()))
		for i, c := range a.AsBytes() {
			elems[i] = value.Str([]byte{c})
		}
		e.Push(joinValues(elems, b))

	case a.IsBlk() && b.IsBlk():
		e.fold(a.AsBytes(), bytesAsValues(b.AsBytes()))
	case a.IsStr() && b.IsBlk():
		e.fold(b.AsBytes(), bytesAsValues(a.AsBytes()))
	case a.IsBlk() && b.IsStr():
		e.fold(a.AsBytes(), bytesAsValues(b.AsBytes()))
	case a.IsArr() && b.IsBlk():
		e.fold(b.AsBytes(), a.AsArr())
	case a.IsBlk() && b.IsArr():
		e.fold(a.AsBytes(), b.AsArr())

	case a.IsInt() && b.IsArr():
		e.Push(value.Arr(util.RepeatValues(b.AsArr(), clampInt(a.AsInt()))))
	case a.IsArr() && b.IsInt():
		e.Push(value.Arr(util.RepeatValues(a.AsArr(), clampInt(b.AsInt()))))
	case a.IsInt() && b.IsStr():
		e.Push(value.Str(util.RepeatBytes(b.AsBytes(), clampInt(a.AsInt()))))
	case a.IsStr() && b.IsInt():
		e.Push(value.Str(util.RepeatBytes(a.AsBytes(), clampInt(b.AsInt()))))

	case a.IsInt() && b.IsBlk():
		e.times(a.AsInt(), b)
	case a.IsBlk() && b.IsInt():
		e.times(b.AsInt(), a)
	}
}

func (e *Evaluator) times(n *big.Int, blk value.Value) {
	var loops uint64
	remaining := new(big.Int).Set(n)
	one := big.NewInt(1)
	for remaining.Sign() > 0 && loops < e.MaxLoops {
		loops++
		e.run(blk.AsBytes())
		remaining.Sub(remaining, one)
	}
}

// slash implements `/`: floor-div, split, each, chunk, or unfold.
func (e *Evaluator) slash() {
	b := e.Pop()
	a := e.Pop()
	switch {
	case a.IsInt() && b.IsInt():
		e.Push(floorDivInt(a.AsInt(), b.AsInt()))

	case a.IsArr() && b.IsArr():
		if len(b.AsArr()) == 0 {
			e.Push(a)
			return
		}
		e.Push(value.Arr(wrapArr(util.SplitValues(a.AsArr(), b.AsArr(), false))))
	case a.IsStr() && b.IsStr():
		if len(b.AsBytes()) == 0 {
			e.Push(a)
			return
		}
		e.Push(value.Arr(wrapStr(util.SplitBytes(a.AsBytes(), b.AsBytes(), false))))
	case a.IsArr() && b.IsStr():
		if len(b.AsBytes()) == 0 {
			e.Push(a)
			return
		}
		e.Push(value.Arr(wrapArr(util.SplitValues(a.AsArr(), bytesAsValues(b.AsBytes()), false))))
	case a.IsStr() && b.IsArr():
		if len(a.AsBytes()) == 0 {
			e.Push(b)
			return
		}
		e.Push(value.Arr(wrapArr(util.SplitValues(b.AsArr(), bytesAsValues(a.AsBytes()), false))))

	case a.IsStr() && b.IsBlk():
		e.each(b.AsBytes(), bytesAsValues(a.AsBytes()))
	case a.IsBlk() && b.IsStr():
		e.each(a.AsBytes(), bytesAsValues(b.AsBytes()))
	case a.IsArr() && b.IsBlk():
		e.each(b.AsBytes(), a.AsArr())
	case a.IsBlk() && b.IsArr():
		e.each(a.AsBytes(), b.AsArr())

	case a.IsInt() && b.IsArr():
		e.chunkArr(b.AsArr(), a.AsInt())
	case a.IsArr() && b.IsInt():
		e.chunkArr(a.AsArr(), b.AsInt())
	case a.IsInt() && b.IsStr():
		e.chunkStr(b.AsBytes(), a.AsInt())
	case a.IsStr() && b.IsInt():
		e.chunkStr(a.AsBytes(), b.AsInt())

	case a.IsBlk() && b.IsBlk():
		e.unfold(a.AsBytes(), b.AsBytes())

	case a.IsInt() && b.IsBlk():
		e.each(b.AsBytes(), []value.Value{a})
	case a.IsBlk() && b.IsInt():
		e.each(a.AsBytes(), []value.Value{b})
	}
}

func (e *Evaluator) chunkArr(a []value.Value, n *big.Int) {
	if n.Sign() == 0 {
		e.Push(value.Arr(a))
		return
	}
	chunks := util.ChunkValues(a, clampInt(n))
	out := make([]value.Value, len(chunks))
	for i, c := range chunks {
		out[i] = value.Arr(c)
	}
	e.Push(value.Arr(out))
}

func (e *Evaluator) chunkStr(a []byte, n *big.Int) {
	if n.Sign() == 0 {
		e.Push(value.Str(a))
		return
	}
	chunks := util.ChunkBytes(a, clampInt(n))
	out := make([]value.Value, len(chunks))
	for i, c := range chunks {
		out[i] = value.Str(c)
	}
	e.Push(value.Arr(out))
}

// unfold implements the (Blk,Blk) branch of `/`: repeatedly evaluate
// cond against the current top of stack; stop once it is falsey,
// otherwise snapshot the top into the result and evaluate step.
func (e *Evaluator) unfold(cond, step []byte) {
	var r []value.Value
	var loops uint64
	for loops < e.MaxLoops {
		loops++
		if top, ok := e.Top(); ok {
			e.Push(top)
		} else {
			e.Push(value.Arr(nil))
		}
		e.run(cond)

		f, ok := e.popOk()
		if !ok || f.Falsey() {
			break
		}

		if top, ok := e.Top(); ok {
			r = append(r, top)
		} else {
			r = append(r, value.Arr(nil))
		}
		e.run(step)
	}
	e.Pop()
	e.Push(value.Arr(r))
}

// percent implements `%`: floor-mod, clean split, map, or every-nth.
func (e *Evaluator) percent() {
	b := e.Pop()
	a := e.Pop()
	switch {
	case a.IsInt() && b.IsInt():
		e.Push(floorModInt(a.AsInt(), b.AsInt()))

	case a.IsArr() && b.IsArr():
		if len(b.AsArr()) == 0 {
			e.Push(a)
			return
		}
		e.Push(value.Arr(wrapArr(util.SplitValues(a.AsArr(), b.AsArr(), true))))
	case a.IsStr() && b.IsStr():
		if len(b.AsBytes()) == 0 {
			e.Push(a)
			return
		}
		e.Push(value.Arr(wrapStr(util.SplitBytes(a.AsBytes(), b.AsBytes(), true))))
	case a.IsArr() && b.IsStr():
		if len(b.AsBytes()) == 0 {
			e.Push(a)
			return
		}
		e.Push(value.Arr(wrapArr(util.SplitValues(a.AsArr(), bytesAsValues(b.AsBytes()), true))))
	case a.IsStr() && b.IsArr():
		if len(a.AsBytes()) == 0 {
			e.Push(b)
			return
		}
		e.Push(value.Arr(wrapArr(util.SplitValues(b.AsArr(), bytesAsValues(a.AsBytes()), true))))

	case a.IsArr() && b.IsBlk():
		e.Push(value.Arr(e.gsMap(b.AsBytes(), a.AsArr())))
	case a.IsBlk() && b.IsArr():
		e.Push(value.Arr(e.gsMap(a.AsBytes(), b.AsArr())))
	case a.IsStr() && b.IsBlk():
		e.Push(value.Str(flattenToBytes(e.gsMap(b.AsBytes(), bytesAsValues(a.AsBytes())))))
	case a.IsBlk() && b.IsStr():
		e.Push(value.Str(flattenToBytes(e.gsMap(a.AsBytes(), bytesAsValues(b.AsBytes())))))

	case a.IsInt() && b.IsArr():
		e.everyNthArr(b.AsArr(), a.AsInt())
	case a.IsArr() && b.IsInt():
		e.everyNthArr(a.AsArr(), b.AsInt())
	case a.IsInt() && b.IsStr():
		e.everyNthStr(b.AsBytes(), a.AsInt())
	case a.IsStr() && b.IsInt():
		e.everyNthStr(a.AsBytes(), b.AsInt())

	case a.IsInt() && b.IsBlk():
		e.Push(value.Arr(e.gsMap(b.AsBytes(), []value.Value{a})))
	case a.IsBlk() && b.IsInt():
		e.Push(value.Arr(e.gsMap(a.AsBytes(), []value.Value{b})))
	case a.IsBlk() && b.IsBlk():
		e.Push(value.Arr(e.gsMap(b.AsBytes(), []value.Value{a})))
	}
}

func (e *Evaluator) everyNthArr(a []value.Value, n *big.Int) {
	if n.Sign() == 0 {
		e.Push(value.Arr(a))
		return
	}
	e.Push(value.Arr(util.EveryNthValues(a, clampInt(n))))
}

func (e *Evaluator) everyNthStr(a []byte, n *big.Int) {
	if n.Sign() == 0 {
		e.Push(value.Str(a))
		return
	}
	e.Push(value.Str(util.EveryNthBytes(a, clampInt(n))))
}

func floorDivInt(a, b *big.Int) value.Value {
	if b.Sign() == 0 {
		return value.IntFromInt64(0)
	}
	return value.Int(floorQuotient(a, b))
}

// floorQuotient computes a divided by b, rounded toward negative
// infinity, matching num::Integer::div_floor.
func floorQuotient(a, b *big.Int) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

func floorModInt(a, b *big.Int) value.Value {
	if b.Sign() == 0 {
		return value.IntFromInt64(0)
	}
	r := new(big.Int).Mul(floorQuotient(a, b), b)
	r.Sub(a, r)
	return value.Int(r)
}

// clampInt narrows a big.Int operand count to a plain int, clamping
// to a generous bound: a program that needs more repetitions/chunks
// than this has already exceeded any practical stack size.
func clampInt(n *big.Int) int {
	const bound = 1 << 30
	if !n.IsInt64() {
		if n.Sign() < 0 {
			return -bound
		}
		return bound
	}
	v := n.Int64()
	switch {
	case v > bound:
		return bound
	case v < -bound:
		return -bound
	default:
		return int(v)
	}
}

func bytesAsValues(bs []byte) []value.Value {
	out := make([]value.Value, len(bs))
	for i, b := range bs {
		out[i] = value.IntFromInt64(int64(b))
	}
	return out
}

func wrapArr(groups [][]value.Value) []value.Value {
	out := make([]value.Value, len(groups))
	for i, g := range groups {
		out[i] = value.Arr(g)
	}
	return out
}

func wrapStr(groups [][]byte) []value.Value {
	out := make([]value.Value, len(groups))
	for i, g := range groups {
		out[i] = value.Str(g)
	}
	return out
}

// joinValues renders each element of elems via ToGS, interspersed
// with sep's ToGS rendering, as a single Str. Used for the Str
// separator arms of `*`, where original_source's join(a, Str(sep))
// produces a Str.
func joinValues(elems []value.Value, sep value.Value) value.Value {
	sepBytes := value.ToGS(sep)
	var out []byte
	for i, el := range elems {
		if i > 0 {
			out = append(out, sepBytes...)
		}
		out = append(out, value.ToGS(el)...)
	}
	return value.Str(out)
}

// joinValuesArr interspers a copy of sep between consecutive elems,
// as a single Arr. Used for the Arr separator arm of `*`, where
// original_source's join(a, Arr(sep)) produces an Arr instead of
// flattening to a Str: `[1 2 3][0]*` gives `[1 0 2 0 3]`.
func joinValuesArr(elems []value.Value, sep []value.Value) value.Value {
	var out []value.Value
	for i, el := range elems {
		if i > 0 {
			out = append(out, sep...)
		}
		out = append(out, el)
	}
	return value.Arr(out)
}

// flattenToBytes joins the results of a map over a string back into
// bytes: an Int contributes the single byte it encodes, any other value
// its ToGS rendering.
func flattenToBytes(vs []value.Value) []byte {
	var out []byte
	for _, v := range vs {
		if v.IsInt() {
			out = append(out, byte(v.AsInt().Int64()))
			continue
		}
		out = append(out, value.ToGS(v)...)
	}
	return out
}

// popOk is Pop without the sandboxed empty-array fallback, used where
// original_source distinguishes "stack was empty" from "popped an
// empty array" (e.g. unfold's termination check).
func (e *Evaluator) popOk() (value.Value, bool) {
	v, ok := e.popRaw()
	if !ok {
		if e.Mode == ModeStrict {
			e.fail(errors.StackUnderflow, "stack underflow")
		}
		e.Stable = false
	}
	return v, ok
}
