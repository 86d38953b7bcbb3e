// Package value implements the GolfScript value model: a tagged union of
// four kinds (integer, array, byte-string, code-block) with the
// truthiness, equality, ordering, and rendering rules that every
// operator in internal/eval dispatches on.
package value

import (
	"bytes"
	"math/big"
)

// Kind tags the variant a Value holds. The iota order is also the rank
// order used for coercion and cross-kind comparison: Int < Arr < Str < Blk.
type Kind byte

const (
	KindInt Kind = iota
	KindArr
	KindStr
	KindBlk
)

var kindNames = [...]string{
	KindInt: "int",
	KindArr: "array",
	KindStr: "string",
	KindBlk: "block",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a tagged union over Kind. Data holds *big.Int for KindInt,
// []Value for KindArr, and []byte for KindStr/KindBlk.
type Value struct {
	Data interface{}
	Kind Kind
}

// Int constructs an integer Value.
func Int(n *big.Int) Value {
	if n == nil {
		n = new(big.Int)
	}
	return Value{Kind: KindInt, Data: n}
}

// IntFromInt64 constructs an integer Value from an int64.
func IntFromInt64(n int64) Value {
	return Int(big.NewInt(n))
}

// Bool constructs the canonical 0/1 integer Value GolfScript uses for
// booleans.
func Bool(b bool) Value {
	if b {
		return IntFromInt64(1)
	}
	return IntFromInt64(0)
}

// Arr constructs an array Value. The slice is adopted, not copied.
func Arr(xs []Value) Value {
	return Value{Kind: KindArr, Data: xs}
}

// Str constructs a byte-string Value. The slice is adopted, not copied.
func Str(bs []byte) Value {
	return Value{Kind: KindStr, Data: bs}
}

// Blk constructs a code-block Value carrying unparsed source bytes.
// The slice is adopted, not copied.
func Blk(bs []byte) Value {
	return Value{Kind: KindBlk, Data: bs}
}

func (v Value) IsInt() bool { return v.Kind == KindInt }
func (v Value) IsArr() bool { return v.Kind == KindArr }
func (v Value) IsStr() bool { return v.Kind == KindStr }
func (v Value) IsBlk() bool { return v.Kind == KindBlk }

// AsInt returns the wrapped *big.Int, or 0 if v is not a KindInt.
func (v Value) AsInt() *big.Int {
	if n, ok := v.Data.(*big.Int); ok {
		return n
	}
	return new(big.Int)
}

// AsArr returns the wrapped element slice, or nil if v is not a KindArr.
func (v Value) AsArr() []Value {
	if xs, ok := v.Data.([]Value); ok {
		return xs
	}
	return nil
}

// AsBytes returns the wrapped byte slice for KindStr/KindBlk, or nil.
func (v Value) AsBytes() []byte {
	if bs, ok := v.Data.([]byte); ok {
		return bs
	}
	return nil
}

// Clone returns a value suitable for binding via the assignment operator.
// Arrays are shallow-copied so that a later bracket-group drain on the
// stack can't alias into a previously assigned variable's backing array.
func (v Value) Clone() Value {
	switch v.Kind {
	case KindArr:
		xs := make([]Value, len(v.AsArr()))
		copy(xs, v.AsArr())
		return Arr(xs)
	case KindStr:
		bs := make([]byte, len(v.AsBytes()))
		copy(bs, v.AsBytes())
		return Str(bs)
	case KindBlk:
		bs := make([]byte, len(v.AsBytes()))
		copy(bs, v.AsBytes())
		return Blk(bs)
	default:
		return Int(new(big.Int).Set(v.AsInt()))
	}
}

// Truthy reports whether v is truthy: non-zero Int, or non-empty Arr/Str/Blk.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindInt:
		return v.AsInt().Sign() != 0
	case KindArr:
		return len(v.AsArr()) > 0
	case KindStr, KindBlk:
		return len(v.AsBytes()) > 0
	default:
		return false
	}
}

// Falsey is the negation of Truthy.
func (v Value) Falsey() bool { return !v.Truthy() }

// Equal implements same-variant structural equality, with the one
// cross-variant exception: Str and Blk compare equal iff their byte
// bodies match.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		if (a.Kind == KindStr && b.Kind == KindBlk) || (a.Kind == KindBlk && b.Kind == KindStr) {
			return bytes.Equal(a.AsBytes(), b.AsBytes())
		}
		return false
	}
	switch a.Kind {
	case KindInt:
		return a.AsInt().Cmp(b.AsInt()) == 0
	case KindArr:
		xs, ys := a.AsArr(), b.AsArr()
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	case KindStr, KindBlk:
		return bytes.Equal(a.AsBytes(), b.AsBytes())
	default:
		return false
	}
}

// Compare gives the total order over Values: natural order within a
// kind (integer magnitude, lexicographic for sequences), kind rank
// Int<Arr<Str<Blk across kinds. The sign of the result is meaningful;
// the magnitude is not.
func Compare(a, b Value) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	switch a.Kind {
	case KindInt:
		return a.AsInt().Cmp(b.AsInt())
	case KindArr:
		xs, ys := a.AsArr(), b.AsArr()
		n := len(xs)
		if len(ys) < n {
			n = len(ys)
		}
		for i := 0; i < n; i++ {
			if c := Compare(xs[i], ys[i]); c != 0 {
				return c
			}
		}
		return len(xs) - len(ys)
	case KindStr, KindBlk:
		return bytes.Compare(a.AsBytes(), b.AsBytes())
	default:
		return 0
	}
}

// Less reports whether a sorts strictly before b under Compare.
func Less(a, b Value) bool { return Compare(a, b) < 0 }

// Factory returns an empty Value of the same kind as v, used by zip as
// the starting value of each output column.
func Factory(v Value) Value {
	switch v.Kind {
	case KindArr:
		return Arr(nil)
	case KindStr:
		return Str(nil)
	case KindBlk:
		return Blk(nil)
	default:
		return IntFromInt64(0)
	}
}

// ToGS renders v as its "unadorned" byte form: integers as signed
// decimal, strings as raw bytes, arrays as the concatenation of their
// elements' ToGS, blocks framed with { }.
func ToGS(v Value) []byte {
	switch v.Kind {
	case KindInt:
		return []byte(v.AsInt().String())
	case KindStr:
		return append([]byte(nil), v.AsBytes()...)
	case KindArr:
		var buf bytes.Buffer
		for _, e := range v.AsArr() {
			buf.Write(ToGS(e))
		}
		return buf.Bytes()
	case KindBlk:
		var buf bytes.Buffer
		buf.WriteByte('{')
		buf.Write(v.AsBytes())
		buf.WriteByte('}')
		return buf.Bytes()
	default:
		return nil
	}
}

// Render renders v for the final display of a finished run's wrapped
// stack (print and puts use ToGS instead): integers as plain decimal,
// strings and arrays each wrapped once in `[ ]` (arrays space-joining
// the Render of each element), blocks framed with { }.
// Unlike ToGS this is not homomorphic over concatenation — it exists
// for terminal output, where a bare string should still read as a
// bracketed sequence once it's nested inside the wrapping array a
// top-level run produces.
func Render(v Value) []byte {
	switch v.Kind {
	case KindStr:
		var buf bytes.Buffer
		buf.WriteByte('[')
		buf.Write(v.AsBytes())
		buf.WriteByte(']')
		return buf.Bytes()
	case KindArr:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range v.AsArr() {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.Write(Render(e))
		}
		buf.WriteByte(']')
		return buf.Bytes()
	default:
		return ToGS(v)
	}
}

// Inspect renders v in round-trippable form: integers as decimal,
// strings double-quoted with `"` and `\` escaped, arrays
// space-separated and bracketed, blocks framed with { }.
func Inspect(v Value) []byte {
	switch v.Kind {
	case KindInt:
		return []byte(v.AsInt().String())
	case KindStr:
		var buf bytes.Buffer
		buf.WriteByte('"')
		for _, c := range v.AsBytes() {
			switch c {
			case '"', '\\':
				buf.WriteByte('\\')
				buf.WriteByte(c)
			default:
				buf.WriteByte(c)
			}
		}
		buf.WriteByte('"')
		return buf.Bytes()
	case KindArr:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range v.AsArr() {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.Write(Inspect(e))
		}
		buf.WriteByte(']')
		return buf.Bytes()
	case KindBlk:
		var buf bytes.Buffer
		buf.WriteByte('{')
		buf.Write(v.AsBytes())
		buf.WriteByte('}')
		return buf.Bytes()
	default:
		return nil
	}
}

// Plus implements the polymorphic `+` operator: two Ints are added;
// any other pair is coerced to the higher-ranked kind and concatenated.
func Plus(a, b Value) Value {
	if a.IsInt() && b.IsInt() {
		return Int(new(big.Int).Add(a.AsInt(), b.AsInt()))
	}
	hi := HigherKind(a.Kind, b.Kind)
	a = Promote(a, hi)
	b = Promote(b, hi)
	switch hi {
	case KindArr:
		xs := make([]Value, 0, len(a.AsArr())+len(b.AsArr()))
		xs = append(xs, a.AsArr()...)
		xs = append(xs, b.AsArr()...)
		return Arr(xs)
	case KindStr:
		bs := make([]byte, 0, len(a.AsBytes())+len(b.AsBytes()))
		bs = append(bs, a.AsBytes()...)
		bs = append(bs, b.AsBytes()...)
		return Str(bs)
	case KindBlk:
		bs := make([]byte, 0, len(a.AsBytes())+len(b.AsBytes()))
		bs = append(bs, a.AsBytes()...)
		bs = append(bs, b.AsBytes()...)
		return Blk(bs)
	default:
		return Arr(nil)
	}
}

// HigherKind returns whichever of a, b ranks higher under Int<Arr<Str<Blk.
func HigherKind(a, b Kind) Kind {
	if a >= b {
		return a
	}
	return b
}

// Promote lifts v up the rank chain Int->Arr->Str->Blk to the target
// kind, one step at a time: Int becomes a one-element Arr; Arr flattens
// to Str via ToGS; Str adopts its bytes unchanged as Blk. Promoting to
// a lower or equal kind is a no-op.
func Promote(v Value, to Kind) Value {
	for v.Kind < to {
		switch v.Kind {
		case KindInt:
			v = Arr([]Value{v})
		case KindArr:
			v = Str(ToGS(v))
		case KindStr:
			v = Blk(append([]byte(nil), v.AsBytes()...))
		}
	}
	return v
}
