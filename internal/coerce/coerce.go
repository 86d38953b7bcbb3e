// Package coerce promotes a pair of GolfScript values to a common kind
// for the operators that require it: minus, and the bitwise operators.
package coerce

import "github.com/golfscript-go/golfscript/internal/value"

// Coerced is the result of lifting two values to a common kind along
// the rank order Int<Arr<Str<Blk.
type Coerced struct {
	A, B value.Value
	Kind value.Kind
}

// Coerce promotes a and b to whichever of their kinds ranks higher.
func Coerce(a, b value.Value) Coerced {
	hi := value.HigherKind(a.Kind, b.Kind)
	return Coerced{
		A:    value.Promote(a, hi),
		B:    value.Promote(b, hi),
		Kind: hi,
	}
}
