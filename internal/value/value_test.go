package value

import (
	"math/big"
	"testing"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{IntFromInt64(0), false},
		{IntFromInt64(1), true},
		{IntFromInt64(-1), true},
		{Arr(nil), false},
		{Arr([]Value{IntFromInt64(0)}), true},
		{Str(nil), false},
		{Str([]byte("x")), true},
		{Blk(nil), false},
		{Blk([]byte("1")), true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestEqualCrossVariant(t *testing.T) {
	if !Equal(Str([]byte("ab")), Blk([]byte("ab"))) {
		t.Error("Str and Blk with equal bytes should be equal")
	}
	if Equal(IntFromInt64(1), Arr([]Value{IntFromInt64(1)})) {
		t.Error("Int should never implicitly equal Arr")
	}
	if Equal(IntFromInt64(0), Str(nil)) {
		t.Error("Int should never implicitly equal Str even when both falsey")
	}
}

func TestCompareRank(t *testing.T) {
	if !Less(IntFromInt64(100), Arr(nil)) {
		t.Error("any Int should rank below any Arr")
	}
	if !Less(Arr(nil), Str(nil)) {
		t.Error("any Arr should rank below any Str")
	}
	if !Less(Str(nil), Blk(nil)) {
		t.Error("any Str should rank below any Blk")
	}
}

func TestPlusIntInt(t *testing.T) {
	got := Plus(IntFromInt64(5), IntFromInt64(6))
	if got.AsInt().Cmp(big.NewInt(11)) != 0 {
		t.Errorf("5+6 = %v, want 11", got.AsInt())
	}
}

func TestPlusCoercesToHigherKind(t *testing.T) {
	got := Plus(IntFromInt64(1), Str([]byte("x")))
	if !got.IsStr() {
		t.Fatalf("Int+Str should promote to Str, got %v", got.Kind)
	}
	if string(got.AsBytes()) != "1x" {
		t.Errorf("Int+Str = %q, want %q", got.AsBytes(), "1x")
	}
}

func TestPromoteArrToStrFlattensViaToGS(t *testing.T) {
	arr := Arr([]Value{IntFromInt64(1), IntFromInt64(2)})
	got := Promote(arr, KindStr)
	if string(got.AsBytes()) != "12" {
		t.Errorf("Promote(Arr[1,2], Str) = %q, want %q", got.AsBytes(), "12")
	}
}

func TestToGSHomomorphicOverConcat(t *testing.T) {
	a := Arr([]Value{IntFromInt64(1), Str([]byte("x"))})
	b := Arr([]Value{IntFromInt64(2)})
	concat := append(append([]Value{}, a.AsArr()...), b.AsArr()...)
	lhs := ToGS(Arr(concat))
	rhs := append(append([]byte{}, ToGS(a)...), ToGS(b)...)
	if string(lhs) != string(rhs) {
		t.Errorf("ToGS not homomorphic: %q vs %q", lhs, rhs)
	}
}

func TestInspectRoundTrips(t *testing.T) {
	s := Str([]byte(`a"b\c`))
	got := Inspect(s)
	want := `"a\"b\\c"`
	if string(got) != want {
		t.Errorf("Inspect(%q) = %s, want %s", s.AsBytes(), got, want)
	}
}

func TestFactoryProducesEmptySameKind(t *testing.T) {
	if k := Factory(Str([]byte("hi"))).Kind; k != KindStr {
		t.Errorf("Factory(Str) kind = %v, want Str", k)
	}
	if got := Factory(Arr([]Value{IntFromInt64(1)})); len(got.AsArr()) != 0 {
		t.Errorf("Factory(Arr) should be empty, got %v", got.AsArr())
	}
}

func TestCloneCopiesArrSlice(t *testing.T) {
	orig := Arr([]Value{IntFromInt64(1)})
	cloned := orig.Clone()
	cloned.AsArr()[0] = IntFromInt64(99)
	if orig.AsArr()[0].AsInt().Int64() != 1 {
		t.Error("mutating a clone's array must not affect the original")
	}
}
