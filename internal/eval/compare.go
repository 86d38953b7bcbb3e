package eval

import (
	"math"
	"math/big"

	"github.com/golfscript-go/golfscript/internal/util"
	"github.com/golfscript-go/golfscript/internal/value"
)

// order mirrors std::cmp::Ordering for the three comparison operators.
type order int

const (
	orderLess order = iota
	orderEqual
	orderGreater
)

func (e *Evaluator) lessThan()    { e.lteqgt(orderLess) }
func (e *Evaluator) equal()       { e.lteqgt(orderEqual) }
func (e *Evaluator) greaterThan() { e.lteqgt(orderGreater) }

// lteqgt implements `<`, `=`, `>`. (Equal, Int, Seq) indexes into the
// sequence; otherwise (Int, Seq) slices; any other pair falls back to a
// boolean comparison against ordering. Popping from an empty stack
// substitutes an empty Arr, matching the reference implementation.
func (e *Evaluator) lteqgt(o order) {
	b := e.popOrEmptyArr()
	a := e.popOrEmptyArr()

	if o == orderEqual {
		if a.IsInt() && b.IsArr() {
			e.pushIndexed(b.AsArr(), a.AsInt())
			return
		}
		if a.IsArr() && b.IsInt() {
			e.pushIndexed(a.AsArr(), b.AsInt())
			return
		}
		if a.IsInt() && (b.IsStr() || b.IsBlk()) {
			e.pushIndexedBytes(b, a.AsInt())
			return
		}
		if (a.IsStr() || a.IsBlk()) && b.IsInt() {
			e.pushIndexedBytes(a, b.AsInt())
			return
		}
	}

	so := util.OrderLess
	if o == orderGreater {
		so = util.OrderGreater
	}
	if o != orderEqual {
		if a.IsInt() && b.IsArr() {
			e.Push(value.Arr(util.SliceValues(so, b.AsArr(), intIndex(a.AsInt()))))
			return
		}
		if a.IsArr() && b.IsInt() {
			e.Push(value.Arr(util.SliceValues(so, a.AsArr(), intIndex(b.AsInt()))))
			return
		}
		if a.IsInt() && b.IsStr() {
			e.Push(value.Str(util.SliceBytes(so, b.AsBytes(), intIndex(a.AsInt()))))
			return
		}
		if a.IsStr() && b.IsInt() {
			e.Push(value.Str(util.SliceBytes(so, a.AsBytes(), intIndex(b.AsInt()))))
			return
		}
		if a.IsInt() && b.IsBlk() {
			e.Push(value.Blk(util.SliceBytes(so, b.AsBytes(), intIndex(a.AsInt()))))
			return
		}
		if a.IsBlk() && b.IsInt() {
			e.Push(value.Blk(util.SliceBytes(so, a.AsBytes(), intIndex(b.AsInt()))))
			return
		}
	}

	want := map[order]int{orderLess: -1, orderEqual: 0, orderGreater: 1}[o]
	e.Push(value.Bool(value.Compare(a, b) == want))
}

func (e *Evaluator) popOrEmptyArr() value.Value {
	v, ok := e.popOk()
	if !ok {
		return value.Arr(nil)
	}
	return v
}

func intIndex(n *big.Int) int {
	if !n.IsInt64() {
		if n.Sign() < 0 {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	return int(n.Int64())
}

func (e *Evaluator) pushIndexed(xs []value.Value, n *big.Int) {
	if v, ok := util.IndexValues(xs, intIndex(n)); ok {
		e.Push(v)
	}
}

func (e *Evaluator) pushIndexedBytes(v value.Value, n *big.Int) {
	if b, ok := util.IndexBytes(v.AsBytes(), intIndex(n)); ok {
		e.Push(value.IntFromInt64(int64(b)))
	}
}

// question implements `?`: power on (Int,Int), index-of on (sequence,
// element), find on (sequence,Blk). Popping from an empty stack
// substitutes an empty Arr.
func (e *Evaluator) question() {
	b := e.popOrEmptyArr()
	a := e.popOrEmptyArr()

	if a.IsInt() && b.IsInt() {
		e.Push(value.Int(power(a.AsInt(), b.AsInt(), e.Mode == ModeStrict)))
		return
	}

	if a.IsBlk() && b.IsInt() {
		e.findBy(a.AsBytes(), []value.Value{b})
		return
	}
	if a.IsInt() && b.IsBlk() {
		e.findBy(b.AsBytes(), []value.Value{a})
		return
	}
	if a.IsBlk() && (b.IsArr() || b.IsStr() || b.IsBlk()) {
		e.findBy(a.AsBytes(), seqElements(b))
		return
	}
	if (b.IsBlk()) && (a.IsArr() || a.IsStr()) {
		e.findBy(b.AsBytes(), seqElements(a))
		return
	}

	if a.IsStr() && b.IsStr() {
		e.Push(value.IntFromInt64(int64(util.StringIndex(a.AsBytes(), b.AsBytes()))))
		return
	}
	if a.IsArr() {
		e.Push(value.IntFromInt64(int64(indexOf(a.AsArr(), b))))
		return
	}
	if b.IsArr() {
		e.Push(value.IntFromInt64(int64(indexOf(b.AsArr(), a))))
		return
	}
	if a.IsStr() && b.IsInt() {
		e.Push(value.IntFromInt64(int64(byteIndexOf(a.AsBytes(), b.AsInt()))))
		return
	}
	if a.IsInt() && b.IsStr() {
		e.Push(value.IntFromInt64(int64(byteIndexOf(b.AsBytes(), a.AsInt()))))
		return
	}
}

// power computes a^b with the reference implementation's guards: an
// exponent that doesn't fit a u32 yields 0; otherwise, unless exact is
// set (strict mode), an exponent large enough that the result would
// have roughly 100+ decimal digits is refused and a is returned
// unchanged instead of computed exactly.
func power(a, b *big.Int, exact bool) *big.Int {
	if !fitsU32(b) {
		return big.NewInt(0)
	}
	exp := b.Uint64()
	af, _ := new(big.Float).SetInt(a).Float64()
	if af == 0 {
		af = 1
	}
	if exact || math.Log10(math.Abs(af))*float64(exp) < 100 {
		return new(big.Int).Exp(a, b, nil)
	}
	return new(big.Int).Set(a)
}

func fitsU32(n *big.Int) bool {
	return n.Sign() >= 0 && n.IsUint64() && n.Uint64() <= math.MaxUint32
}

func indexOf(xs []value.Value, target value.Value) int {
	for i, x := range xs {
		if value.Equal(x, target) {
			return i
		}
	}
	return -1
}

func byteIndexOf(bs []byte, n *big.Int) int {
	if !n.IsInt64() || n.Int64() < 0 || n.Int64() > 255 {
		return -1
	}
	want := byte(n.Int64())
	for i, b := range bs {
		if b == want {
			return i
		}
	}
	return -1
}
