package eval

import (
	"math/big"
	"sort"

	"github.com/golfscript-go/golfscript/internal/value"
)

// fold reduces vs with code: push the first element, then for each
// subsequent element push it and run code (combining with whatever
// code leaves on the stack). An empty vs yields nothing pushed.
func (e *Evaluator) fold(code []byte, vs []value.Value) {
	for i, v := range vs {
		e.Push(v)
		if i >= 1 {
			e.run(code)
		}
	}
}

// each pushes every element of vs in turn and runs code after each,
// purely for side effects: results are left on the stack, not collected.
func (e *Evaluator) each(code []byte, vs []value.Value) {
	for _, v := range vs {
		e.Push(v)
		e.run(code)
	}
}

// gsMap runs code once per element of vs, collecting whatever net
// values each run left on the stack (zero, one, or many per element)
// into a single flat result slice.
func (e *Evaluator) gsMap(code []byte, vs []value.Value) []value.Value {
	var r []value.Value
	for _, v := range vs {
		base := len(e.Stack)
		e.Push(v)
		e.run(code)
		if len(e.Stack) > base {
			r = append(r, e.Stack[base:]...)
			e.Stack = e.Stack[:base]
		}
	}
	return r
}

// selectBy filters vs to the elements for which running code leaves a
// truthy value on top of the stack.
func (e *Evaluator) selectBy(code []byte, vs []value.Value) []value.Value {
	var r []value.Value
	for _, v := range vs {
		e.Push(v)
		e.run(code)
		t, ok := e.popOk()
		if ok && t.Truthy() {
			r = append(r, v)
		}
	}
	return r
}

// findBy returns the first element of vs for which code leaves a
// truthy value on top of the stack, pushing it onto the stack.
// Nothing is pushed if no element matches.
func (e *Evaluator) findBy(code []byte, vs []value.Value) {
	for _, v := range vs {
		e.Push(v)
		e.run(code)
		t, ok := e.popOk()
		if ok && t.Truthy() {
			e.Push(v)
			return
		}
	}
}

// tilde implements `~`: bitwise NOT on Int, splat an Arr onto the
// stack, or parse-and-evaluate Str/Blk as code.
func (e *Evaluator) tilde() {
	v := e.Pop()
	switch v.Kind {
	case value.KindInt:
		e.Push(value.Int(new(big.Int).Not(v.AsInt())))
	case value.KindArr:
		e.PushAll(v.AsArr())
	case value.KindStr, value.KindBlk:
		e.run(v.AsBytes())
	}
}

// backtick implements the inspect-and-push operator.
func (e *Evaluator) backtick() {
	v := e.Pop()
	e.Push(value.Str(value.Inspect(v)))
}

// bang implements `!`: push the boolean negation of truthiness.
func (e *Evaluator) bang() {
	v := e.Pop()
	e.Push(value.Bool(v.Falsey()))
}

// atSign implements `@`: rotate the top three stack elements so the
// deepest of the three ends up on top: `a b c -> b c a`.
func (e *Evaluator) atSign() {
	c := e.Pop()
	b := e.Pop()
	a := e.Pop()
	e.Push(b)
	e.Push(c)
	e.Push(a)
}

// dollar implements `$`: on Int, copy the n-th-from-top stack element
// (0 is top, negative indices count from the bottom); on a sequence,
// sort it; on (sequence, Blk), stable-sort by the block's key.
func (e *Evaluator) dollar() {
	v := e.Pop()
	switch v.Kind {
	case value.KindInt:
		e.pickFromTop(v.AsInt())
	case value.KindArr:
		xs := append([]value.Value(nil), v.AsArr()...)
		sort.SliceStable(xs, func(i, j int) bool { return value.Less(xs[i], xs[j]) })
		e.Push(value.Arr(xs))
	case value.KindStr:
		bs := append([]byte(nil), v.AsBytes()...)
		sort.Slice(bs, func(i, j int) bool { return bs[i] < bs[j] })
		e.Push(value.Str(bs))
	case value.KindBlk:
		e.dollarSortBy(v.AsBytes())
	}
}

func (e *Evaluator) pickFromTop(n *big.Int) {
	if !n.IsInt64() {
		return
	}
	idx := int(n.Int64())
	length := len(e.Stack)
	if idx <= -2 {
		i := -idx - 2
		if i >= 0 && i < length {
			e.Push(e.Stack[i])
		}
		return
	}
	if idx >= 0 && idx < length {
		e.Push(e.Stack[length-1-idx])
	}
}

func (e *Evaluator) dollarSortBy(code []byte) {
	v := e.Pop()
	switch v.Kind {
	case value.KindInt:
		e.Push(v)
	case value.KindArr:
		e.Push(value.Arr(e.sortByKey(code, v.AsArr())))
	case value.KindStr:
		sorted := e.sortByKey(code, bytesAsValues(v.AsBytes()))
		e.Push(value.Str(valuesToBytes(sorted)))
	case value.KindBlk:
		sorted := e.sortByKey(code, bytesAsValues(v.AsBytes()))
		e.Push(value.Blk(valuesToBytes(sorted)))
	}
}

func (e *Evaluator) sortByKey(code []byte, vs []value.Value) []value.Value {
	type keyed struct {
		key value.Value
		v   value.Value
	}
	results := make([]keyed, len(vs))
	for i, v := range vs {
		e.Push(v)
		e.run(code)
		k := e.Pop()
		results[i] = keyed{key: k, v: v}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return value.Less(results[i].key, results[j].key)
	})
	out := make([]value.Value, len(results))
	for i, r := range results {
		out[i] = r.v
	}
	return out
}

func valuesToBytes(vs []value.Value) []byte {
	out := make([]byte, len(vs))
	for i, v := range vs {
		out[i] = byte(v.AsInt().Int64())
	}
	return out
}

// comma implements `,`: range for Int, length for Arr/Str, and
// filter-by-block-truthiness for (sequence, Blk).
func (e *Evaluator) comma() {
	v, ok := e.popOk()
	if !ok {
		e.Push(value.Arr(nil))
		return
	}
	switch v.Kind {
	case value.KindInt:
		e.Push(value.Arr(rangeValues(v.AsInt(), e.MaxLoops)))
	case value.KindArr:
		e.Push(value.IntFromInt64(int64(len(v.AsArr()))))
	case value.KindStr:
		e.Push(value.IntFromInt64(int64(len(v.AsBytes()))))
	case value.KindBlk:
		e.commaFilter(v.AsBytes())
	}
}

func rangeValues(n *big.Int, maxLoops uint64) []value.Value {
	var r []value.Value
	i := big.NewInt(0)
	var loops uint64
	for i.Cmp(n) < 0 && loops < maxLoops {
		loops++
		r = append(r, value.Int(new(big.Int).Set(i)))
		i.Add(i, big.NewInt(1))
	}
	return r
}

func (e *Evaluator) commaFilter(code []byte) {
	v, ok := e.popOk()
	if !ok {
		e.Push(value.Arr(nil))
		return
	}
	switch v.Kind {
	case value.KindInt:
		e.Push(value.Arr(e.selectBy(code, []value.Value{v})))
	case value.KindArr:
		e.Push(value.Arr(e.selectBy(code, v.AsArr())))
	case value.KindStr:
		e.Push(value.Str(valuesToBytes(e.selectBy(code, bytesAsValues(v.AsBytes())))))
	case value.KindBlk:
		e.Push(value.Blk(valuesToBytes(e.selectBy(code, bytesAsValues(v.AsBytes())))))
	}
}

// leftParen implements `(`: decrement an Int; uncons the head element
// of a sequence, pushing the remainder then the head.
func (e *Evaluator) leftParen() {
	v, ok := e.popOk()
	if !ok {
		e.Push(value.Int(big.NewInt(-1)))
		return
	}
	switch v.Kind {
	case value.KindInt:
		e.Push(value.Int(new(big.Int).Sub(v.AsInt(), big.NewInt(1))))
	case value.KindArr:
		if xs := v.AsArr(); len(xs) > 0 {
			e.Push(value.Arr(xs[1:]))
			e.Push(xs[0])
		} else {
			e.Push(v)
		}
	case value.KindStr:
		if bs := v.AsBytes(); len(bs) > 0 {
			e.Push(value.Str(bs[1:]))
			e.Push(value.IntFromInt64(int64(bs[0])))
		} else {
			e.Push(v)
		}
	case value.KindBlk:
		if bs := v.AsBytes(); len(bs) > 0 {
			e.Push(value.Blk(bs[1:]))
			e.Push(value.IntFromInt64(int64(bs[0])))
		} else {
			e.Push(v)
		}
	}
}

// rightParen implements `)`: increment an Int; uncons the tail
// element of a sequence, pushing the remainder then the tail.
func (e *Evaluator) rightParen() {
	v, ok := e.popOk()
	if !ok {
		e.Push(value.Int(big.NewInt(1)))
		return
	}
	switch v.Kind {
	case value.KindInt:
		e.Push(value.Int(new(big.Int).Add(v.AsInt(), big.NewInt(1))))
	case value.KindArr:
		if xs := v.AsArr(); len(xs) > 0 {
			e.Push(value.Arr(xs[:len(xs)-1]))
			e.Push(xs[len(xs)-1])
		} else {
			e.Push(v)
		}
	case value.KindStr:
		if bs := v.AsBytes(); len(bs) > 0 {
			e.Push(value.Str(bs[:len(bs)-1]))
			e.Push(value.IntFromInt64(int64(bs[len(bs)-1])))
		} else {
			e.Push(v)
		}
	case value.KindBlk:
		if bs := v.AsBytes(); len(bs) > 0 {
			e.Push(value.Blk(bs[:len(bs)-1]))
			e.Push(value.IntFromInt64(int64(bs[len(bs)-1])))
		} else {
			e.Push(v)
		}
	}
}

// zip transposes an array of rows. Each output column starts as the
// empty factory value of the first row's kind and collects, in row
// order, the element of every row long enough to reach it; short rows
// are not padded.
func (e *Evaluator) zip() {
	top := e.Pop()
	rows := top.AsArr()
	blank := value.Arr(nil)
	if len(rows) > 0 {
		blank = value.Factory(rows[0])
	}
	var result []value.Value
	for _, row := range rows {
		elems := seqElements(row)
		for y, elem := range elems {
			for len(result) < y+1 {
				result = append(result, blank.Clone())
			}
			result[y] = pushInto(result[y], elem)
		}
	}
	e.Push(value.Arr(result))
}

func seqElements(row value.Value) []value.Value {
	switch row.Kind {
	case value.KindArr:
		return row.AsArr()
	case value.KindStr, value.KindBlk:
		return bytesAsValues(row.AsBytes())
	default:
		return nil
	}
}

func pushInto(container, elem value.Value) value.Value {
	switch container.Kind {
	case value.KindArr:
		return value.Arr(append(container.AsArr(), elem))
	case value.KindStr, value.KindBlk:
		bs := container.AsBytes()
		if elem.IsInt() {
			bs = append(bs, byte(elem.AsInt().Int64()))
		} else {
			bs = append(bs, value.ToGS(elem)...)
		}
		if container.IsStr() {
			return value.Str(bs)
		}
		return value.Blk(bs)
	default:
		return container
	}
}

// base converts between an Int and its digit-array representation in
// base b. A non-Int n is treated as a digit sequence to reduce; an
// empty stack, a non-Int base operand, or a zero base applied to an Int
// yields 0 rather than faulting.
func (e *Evaluator) base() {
	bv := e.Pop()
	b := bv.AsInt()
	n, ok := e.popOk()
	if !ok || !bv.IsInt() || (n.IsInt() && b.Sign() == 0) {
		e.Push(value.IntFromInt64(0))
		return
	}
	if n.IsInt() {
		e.Push(value.Arr(digitsInBase(n.AsInt(), b, e.MaxLoops)))
		return
	}
	total := big.NewInt(0)
	for _, digit := range n.AsArr() {
		total.Mul(total, b)
		total.Add(total, digit.AsInt())
	}
	e.Push(value.Int(total))
}

func digitsInBase(n, b *big.Int, maxLoops uint64) []value.Value {
	i := new(big.Int).Abs(n)
	var digits []value.Value
	var loops uint64
	for i.Sign() != 0 && loops < maxLoops {
		loops++
		q, r := new(big.Int), new(big.Int)
		q.DivMod(i, b, r)
		i = q
		digits = append(digits, value.Int(r))
	}
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}
	return digits
}
