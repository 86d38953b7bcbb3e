package token

import "testing"

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanSimpleArithmetic(t *testing.T) {
	rest, toks := Scan([]byte("5 6+"))
	if len(rest) != 0 {
		t.Fatalf("unexpected remainder: %q", rest)
	}
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[0].Kind != KindIntLiteral || string(toks[0].Body) != "5" {
		t.Errorf("token 0 = %+v", toks[0])
	}
	if toks[2].Kind != KindSymbol || string(toks[2].Body) != "+" {
		t.Errorf("token 2 = %+v", toks[2])
	}
}

func TestScanNegativeIntLiteral(t *testing.T) {
	_, toks := Scan([]byte("-5"))
	if len(toks) != 1 || string(toks[0].Body) != "-5" {
		t.Fatalf("expected single -5 literal, got %+v", toks)
	}
}

func TestScanBlockCapturesInnerAndSource(t *testing.T) {
	_, toks := Scan([]byte("{1+}"))
	if len(toks) != 1 || toks[0].Kind != KindBlock {
		t.Fatalf("expected one block token, got %+v", toks)
	}
	if string(toks[0].Body) != "1+" {
		t.Errorf("inner = %q, want %q", toks[0].Body, "1+")
	}
	if string(toks[0].Source) != "{1+}" {
		t.Errorf("source = %q, want %q", toks[0].Source, "{1+}")
	}
}

func TestScanNestedBlock(t *testing.T) {
	_, toks := Scan([]byte("{{1}2}"))
	if len(toks) != 1 {
		t.Fatalf("expected one outer block, got %+v", toks)
	}
	if string(toks[0].Body) != "{1}2" {
		t.Errorf("inner = %q, want %q", toks[0].Body, "{1}2")
	}
}

func TestScanBlockIgnoresBraceInString(t *testing.T) {
	_, toks := Scan([]byte(`{"}"}`))
	if len(toks) != 1 {
		t.Fatalf("expected one block, got %+v", toks)
	}
	if string(toks[0].Body) != `"}"` {
		t.Errorf("inner = %q, want %q", toks[0].Body, `"}"`)
	}
}

func TestScanUnterminatedBlockLeavesRemainder(t *testing.T) {
	rest, toks := Scan([]byte("1 {2+"))
	if len(toks) != 1 {
		t.Fatalf("expected just the leading int literal, got %+v", toks)
	}
	if string(rest) != "{2+" {
		t.Errorf("remainder = %q, want %q", rest, "{2+")
	}
}

func TestScanQuotedStringsKeepEscapesEncoded(t *testing.T) {
	_, toks := Scan([]byte(`'it\'s' "a\nb"`))
	if len(toks) != 2 {
		t.Fatalf("expected 2 string tokens, got %+v", toks)
	}
	if toks[0].Kind != KindSingleQuotedString || string(toks[0].Body) != `it\'s` {
		t.Errorf("token 0 = %+v", toks[0])
	}
	if toks[1].Kind != KindDoubleQuotedString || string(toks[1].Body) != `a\nb` {
		t.Errorf("token 1 = %+v", toks[1])
	}
}

func TestScanUnterminatedStringLeavesRemainder(t *testing.T) {
	rest, toks := Scan([]byte(`1 'oops`))
	if len(toks) != 1 {
		t.Fatalf("expected just the leading int literal, got %+v", toks)
	}
	if string(rest) != "'oops" {
		t.Errorf("remainder = %q, want %q", rest, "'oops")
	}
}

func TestScanComment(t *testing.T) {
	_, toks := Scan([]byte("1 # trailing comment\n2"))
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %+v", toks)
	}
	if toks[1].Kind != KindComment || string(toks[1].Body) != " trailing comment" {
		t.Errorf("comment token = %+v", toks[1])
	}
}

func TestScanSymbolsAndBlock(t *testing.T) {
	_, toks := Scan([]byte("5,{3%!},"))
	want := []Kind{KindIntLiteral, KindSymbol, KindBlock, KindSymbol}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(got), len(want), toks)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d kind = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAssignmentTokenAndFollowingIdentifier(t *testing.T) {
	_, toks := Scan([]byte(":foo foo"))
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %+v", toks)
	}
	if !toks[0].IsSymbol(":") {
		t.Errorf("token 0 = %+v, want symbol ':'", toks[0])
	}
	if string(toks[1].Lexeme()) != "foo" || string(toks[2].Lexeme()) != "foo" {
		t.Errorf("expected matching lexemes, got %q and %q", toks[1].Lexeme(), toks[2].Lexeme())
	}
}
