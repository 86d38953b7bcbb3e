package coerce

import (
	"testing"

	"github.com/golfscript-go/golfscript/internal/value"
)

func TestCoerceIntInt(t *testing.T) {
	c := Coerce(value.IntFromInt64(3), value.IntFromInt64(4))
	if c.Kind != value.KindInt {
		t.Fatalf("Kind = %v, want KindInt", c.Kind)
	}
}

func TestCoerceIntArr(t *testing.T) {
	c := Coerce(value.IntFromInt64(3), value.Arr([]value.Value{value.IntFromInt64(4)}))
	if c.Kind != value.KindArr {
		t.Fatalf("Kind = %v, want KindArr", c.Kind)
	}
	if len(c.A.AsArr()) != 1 || c.A.AsArr()[0].AsInt().Int64() != 3 {
		t.Errorf("A not promoted to single-element array: %v", c.A)
	}
}

func TestCoerceArrStr(t *testing.T) {
	c := Coerce(value.Arr([]value.Value{value.IntFromInt64(1), value.IntFromInt64(2)}), value.Str([]byte("x")))
	if c.Kind != value.KindStr {
		t.Fatalf("Kind = %v, want KindStr", c.Kind)
	}
	if string(c.A.AsBytes()) != "12" {
		t.Errorf("A flattened = %q, want %q", c.A.AsBytes(), "12")
	}
}
