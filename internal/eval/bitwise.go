package eval

import (
	"math/big"

	"github.com/golfscript-go/golfscript/internal/coerce"
	"github.com/golfscript-go/golfscript/internal/util"
	"github.com/golfscript-go/golfscript/internal/value"
)

func (e *Evaluator) verticalBar() { e.bitwiseOp(util.SetOr, util.SetOrBytes, (*big.Int).Or) }
func (e *Evaluator) ampersand()   { e.bitwiseOp(util.SetAnd, util.SetAndBytes, (*big.Int).And) }
func (e *Evaluator) caret()       { e.bitwiseOp(util.SetXor, util.SetXorBytes, (*big.Int).Xor) }

// bitwiseOp coerces both operands to a common kind, then applies intOp
// to Ints, seqOp to Arrs, or byteOp to Strs/Blks.
func (e *Evaluator) bitwiseOp(
	seqOp func(a, b []value.Value) []value.Value,
	byteOp func(a, b []byte) []byte,
	intOp func(z, x, y *big.Int) *big.Int,
) {
	b := e.Pop()
	a := e.Pop()
	c := coerce.Coerce(a, b)
	switch c.Kind {
	case value.KindInt:
		e.Push(value.Int(intOp(new(big.Int), c.A.AsInt(), c.B.AsInt())))
	case value.KindArr:
		e.Push(value.Arr(seqOp(c.A.AsArr(), c.B.AsArr())))
	case value.KindStr:
		e.Push(value.Str(byteOp(c.A.AsBytes(), c.B.AsBytes())))
	case value.KindBlk:
		e.Push(value.Blk(byteOp(c.A.AsBytes(), c.B.AsBytes())))
	}
}
