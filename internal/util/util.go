// Package util implements generic set-like and slicing operations over
// GolfScript sequences (arrays of value.Value, or raw byte strings),
// shared by the evaluator's polymorphic operators.
package util

import (
	"bytes"

	"github.com/golfscript-go/golfscript/internal/value"
)

// SetSubtract returns the elements of a, in a's order, dropping any
// element equal to one found in b.
func SetSubtract(a, b []value.Value) []value.Value {
	out := make([]value.Value, 0, len(a))
	for _, x := range a {
		if !contains(b, x) {
			out = append(out, x)
		}
	}
	return out
}

// SetOr returns a followed by the elements of b not already present in a.
func SetOr(a, b []value.Value) []value.Value {
	out := append([]value.Value{}, a...)
	for _, y := range b {
		if !contains(a, y) {
			out = append(out, y)
		}
	}
	return out
}

// SetAnd returns the elements of a that also appear in b, in a's order.
func SetAnd(a, b []value.Value) []value.Value {
	out := make([]value.Value, 0, len(a))
	for _, x := range a {
		if contains(b, x) {
			out = append(out, x)
		}
	}
	return out
}

// SetXor returns SetOr(a,b) minus SetAnd(a,b), order preserved from SetOr.
func SetXor(a, b []value.Value) []value.Value {
	return SetSubtract(SetOr(a, b), SetAnd(a, b))
}

func contains(xs []value.Value, v value.Value) bool {
	for _, x := range xs {
		if value.Equal(x, v) {
			return true
		}
	}
	return false
}

// SetSubtractBytes, SetOrBytes, SetAndBytes, SetXorBytes mirror the
// value-slice set operations for raw byte sequences (Str/Blk operands).
func SetSubtractBytes(a, b []byte) []byte {
	out := make([]byte, 0, len(a))
	for _, x := range a {
		if bytes.IndexByte(b, x) < 0 {
			out = append(out, x)
		}
	}
	return out
}

func SetOrBytes(a, b []byte) []byte {
	out := append([]byte{}, a...)
	for _, y := range b {
		if bytes.IndexByte(a, y) < 0 {
			out = append(out, y)
		}
	}
	return out
}

func SetAndBytes(a, b []byte) []byte {
	out := make([]byte, 0, len(a))
	for _, x := range a {
		if bytes.IndexByte(b, x) >= 0 {
			out = append(out, x)
		}
	}
	return out
}

func SetXorBytes(a, b []byte) []byte {
	return SetSubtractBytes(SetOrBytes(a, b), SetAndBytes(a, b))
}

// RepeatValues returns n concatenated copies of a; n<=0 yields empty.
func RepeatValues(a []value.Value, n int) []value.Value {
	if n <= 0 {
		return []value.Value{}
	}
	out := make([]value.Value, 0, len(a)*n)
	for i := 0; i < n; i++ {
		out = append(out, a...)
	}
	return out
}

// RepeatBytes is RepeatValues for raw byte sequences.
func RepeatBytes(a []byte, n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	out := make([]byte, 0, len(a)*n)
	for i := 0; i < n; i++ {
		out = append(out, a...)
	}
	return out
}

// ChunkValues splits a into consecutive chunks of size n. n<0 reverses
// a first and chunks by |n|; n==0 returns a unchanged as the sole chunk.
func ChunkValues(a []value.Value, n int) [][]value.Value {
	if n == 0 {
		return [][]value.Value{append([]value.Value{}, a...)}
	}
	if n < 0 {
		a = reverseValues(a)
		n = -n
	}
	var out [][]value.Value
	for i := 0; i < len(a); i += n {
		end := i + n
		if end > len(a) {
			end = len(a)
		}
		out = append(out, append([]value.Value{}, a[i:end]...))
	}
	return out
}

// ChunkBytes is ChunkValues for raw byte sequences.
func ChunkBytes(a []byte, n int) [][]byte {
	if n == 0 {
		return [][]byte{append([]byte{}, a...)}
	}
	if n < 0 {
		a = reverseBytes(a)
		n = -n
	}
	var out [][]byte
	for i := 0; i < len(a); i += n {
		end := i + n
		if end > len(a) {
			end = len(a)
		}
		out = append(out, append([]byte{}, a[i:end]...))
	}
	return out
}

// EveryNthValues takes elements at indices 0,n,2n,... ; n<0 reverses a
// first; n==0 returns a unchanged.
func EveryNthValues(a []value.Value, n int) []value.Value {
	if n == 0 {
		return append([]value.Value{}, a...)
	}
	if n < 0 {
		a = reverseValues(a)
		n = -n
	}
	var out []value.Value
	for i := 0; i < len(a); i += n {
		out = append(out, a[i])
	}
	return out
}

// EveryNthBytes is EveryNthValues for raw byte sequences.
func EveryNthBytes(a []byte, n int) []byte {
	if n == 0 {
		return append([]byte{}, a...)
	}
	if n < 0 {
		a = reverseBytes(a)
		n = -n
	}
	var out []byte
	for i := 0; i < len(a); i += n {
		out = append(out, a[i])
	}
	return out
}

func reverseValues(a []value.Value) []value.Value {
	out := make([]value.Value, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}
	return out
}

func reverseBytes(a []byte) []byte {
	out := make([]byte, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}
	return out
}

// SplitValues splits a at non-overlapping occurrences of sep. When
// clean is true, empty fragments are removed.
func SplitValues(a, sep []value.Value, clean bool) [][]value.Value {
	if len(sep) == 0 {
		return [][]value.Value{append([]value.Value{}, a...)}
	}
	var out [][]value.Value
	start := 0
	for i := 0; i+len(sep) <= len(a); {
		if matchValues(a[i:i+len(sep)], sep) {
			out = append(out, append([]value.Value{}, a[start:i]...))
			i += len(sep)
			start = i
		} else {
			i++
		}
	}
	out = append(out, append([]value.Value{}, a[start:]...))
	if clean {
		out = filterNonEmptyValues(out)
	}
	return out
}

func matchValues(a, b []value.Value) bool {
	for i := range a {
		if !value.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func filterNonEmptyValues(chunks [][]value.Value) [][]value.Value {
	out := make([][]value.Value, 0, len(chunks))
	for _, c := range chunks {
		if len(c) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// SplitBytes is SplitValues for raw byte sequences.
func SplitBytes(a, sep []byte, clean bool) [][]byte {
	if len(sep) == 0 {
		return [][]byte{append([]byte{}, a...)}
	}
	var out [][]byte
	start := 0
	for i := 0; i+len(sep) <= len(a); {
		if bytes.Equal(a[i:i+len(sep)], sep) {
			out = append(out, append([]byte{}, a[start:i]...))
			i += len(sep)
			start = i
		} else {
			i++
		}
	}
	out = append(out, append([]byte{}, a[start:]...))
	if clean {
		filtered := out[:0]
		for _, c := range out {
			if len(c) > 0 {
				filtered = append(filtered, c)
			}
		}
		out = filtered
	}
	return out
}

// IndexValues returns a[i mod len(a)] with Python-style negative wrap,
// or ok=false if a is empty.
func IndexValues(a []value.Value, i int) (value.Value, bool) {
	if len(a) == 0 {
		return value.Value{}, false
	}
	i = wrap(i, len(a))
	return a[i], true
}

// IndexBytes is IndexValues for raw byte sequences.
func IndexBytes(a []byte, i int) (byte, bool) {
	if len(a) == 0 {
		return 0, false
	}
	i = wrap(i, len(a))
	return a[i], true
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// SliceOrder mirrors std::cmp::Ordering for SliceValues/SliceBytes:
// Less takes a prefix, Greater takes a suffix. Equal (single-element
// indexing) is handled by the caller via IndexValues/IndexBytes.
type SliceOrder int

const (
	OrderLess SliceOrder = iota
	OrderGreater
)

func clampRange(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}

// SliceValues implements `<`/`>` on (Int,Seq): Less takes the first i
// elements, Greater takes the rest. A negative i counts back from the
// end; i is then clamped to [0, len(a)].
func SliceValues(order SliceOrder, a []value.Value, i int) []value.Value {
	n := len(a)
	i = clampRange(i, n)
	if order == OrderLess {
		return append([]value.Value{}, a[:i]...)
	}
	return append([]value.Value{}, a[i:]...)
}

// SliceBytes is SliceValues for raw byte sequences.
func SliceBytes(order SliceOrder, a []byte, i int) []byte {
	n := len(a)
	i = clampRange(i, n)
	if order == OrderLess {
		return append([]byte{}, a[:i]...)
	}
	return append([]byte{}, a[i:]...)
}

// StringIndex returns the first byte offset of needle in haystack, or -1.
func StringIndex(haystack, needle []byte) int {
	return bytes.Index(haystack, needle)
}
