package util

import (
	"testing"

	"github.com/golfscript-go/golfscript/internal/value"
)

func ints(xs ...int64) []value.Value {
	out := make([]value.Value, len(xs))
	for i, x := range xs {
		out[i] = value.IntFromInt64(x)
	}
	return out
}

func intsEqual(t *testing.T, got []value.Value, want ...int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d (%v)", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].AsInt().Int64() != w {
			t.Errorf("index %d: got %v, want %d", i, got[i].AsInt(), w)
		}
	}
}

func TestSetSubtract(t *testing.T) {
	got := SetSubtract(ints(1, 2, 3, 2), ints(2))
	intsEqual(t, got, 1, 3)
}

func TestSetOr(t *testing.T) {
	got := SetOr(ints(1, 2), ints(2, 3))
	intsEqual(t, got, 1, 2, 3)
}

func TestSetAnd(t *testing.T) {
	got := SetAnd(ints(1, 2, 3), ints(2, 3, 4))
	intsEqual(t, got, 2, 3)
}

func TestSetXor(t *testing.T) {
	got := SetXor(ints(1, 2), ints(2, 3))
	intsEqual(t, got, 1, 3)
}

func TestBitwiseSelfIdentities(t *testing.T) {
	a := ints(1, 2, 3)
	if len(SetXor(a, a)) != 0 {
		t.Error("a xor a should be empty")
	}
	intsEqual(t, SetAnd(a, a), 1, 2, 3)
	intsEqual(t, SetOr(a, a), 1, 2, 3)
}

func TestRepeatNonPositive(t *testing.T) {
	if got := RepeatValues(ints(1, 2), 0); len(got) != 0 {
		t.Errorf("repeat by 0 should be empty, got %v", got)
	}
	if got := RepeatValues(ints(1, 2), -3); len(got) != 0 {
		t.Errorf("repeat by negative should be empty, got %v", got)
	}
}

func TestRepeatPositive(t *testing.T) {
	got := RepeatValues(ints(1, 2), 2)
	intsEqual(t, got, 1, 2, 1, 2)
}

func TestChunkPositive(t *testing.T) {
	got := ChunkValues(ints(1, 2, 3, 4, 5), 2)
	if len(got) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(got))
	}
	intsEqual(t, got[2], 5)
}

func TestChunkZeroIsUnchanged(t *testing.T) {
	got := ChunkValues(ints(1, 2, 3), 0)
	if len(got) != 1 {
		t.Fatalf("chunk by 0 should return a single chunk, got %d", len(got))
	}
	intsEqual(t, got[0], 1, 2, 3)
}

func TestChunkNegativeReversesFirst(t *testing.T) {
	got := ChunkValues(ints(1, 2, 3, 4), -2)
	intsEqual(t, got[0], 4, 3)
	intsEqual(t, got[1], 2, 1)
}

func TestEveryNth(t *testing.T) {
	got := EveryNthValues(ints(0, 1, 2, 3, 4, 5), 2)
	intsEqual(t, got, 0, 2, 4)
}

func TestEveryNthNegative(t *testing.T) {
	got := EveryNthValues(ints(0, 1, 2, 3), -2)
	intsEqual(t, got, 3, 1)
}

func TestSplitCleanRemovesEmptyFragments(t *testing.T) {
	a := ints(1, 0, 0, 2, 0, 3)
	sep := ints(0)
	got := SplitValues(a, sep, true)
	if len(got) != 3 {
		t.Fatalf("clean split should drop empty fragments, got %d chunks", len(got))
	}
}

func TestSplitUncleanKeepsEmptyFragments(t *testing.T) {
	a := ints(1, 0, 0, 2)
	sep := ints(0)
	got := SplitValues(a, sep, false)
	if len(got) != 3 {
		t.Fatalf("unclean split should keep empty fragments, got %d chunks", len(got))
	}
	if len(got[1]) != 0 {
		t.Errorf("middle fragment should be empty, got %v", got[1])
	}
}

func TestIndexEmptyIsNone(t *testing.T) {
	if _, ok := IndexValues(nil, 0); ok {
		t.Error("indexing empty sequence should report not-ok")
	}
}

func TestIndexNegativeWraps(t *testing.T) {
	a := ints(10, 20, 30)
	got, ok := IndexValues(a, -1)
	if !ok || got.AsInt().Int64() != 30 {
		t.Errorf("index -1 should be last element, got %v ok=%v", got, ok)
	}
}

func TestSliceLessClampsAndTakesPrefix(t *testing.T) {
	a := ints(1, 2, 3)
	got := SliceValues(OrderLess, a, 100)
	intsEqual(t, got, 1, 2, 3)
	got = SliceValues(OrderLess, a, -1)
	intsEqual(t, got, 1, 2)
	got = SliceValues(OrderLess, a, -100)
	if len(got) != 0 {
		t.Errorf("negative i past the start clamped to 0 should give empty prefix, got %v", got)
	}
}

func TestSliceGreaterTakesSuffix(t *testing.T) {
	a := ints(1, 2, 3)
	got := SliceValues(OrderGreater, a, 1)
	intsEqual(t, got, 2, 3)
}

func TestStringIndexNotFound(t *testing.T) {
	if got := StringIndex([]byte("hello"), []byte("xyz")); got != -1 {
		t.Errorf("StringIndex not found = %d, want -1", got)
	}
}

func TestStringIndexFound(t *testing.T) {
	if got := StringIndex([]byte("hello"), []byte("llo")); got != 2 {
		t.Errorf("StringIndex = %d, want 2", got)
	}
}
