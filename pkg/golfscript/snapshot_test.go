package golfscript

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEndToEndProgramSnapshots snapshots the sandboxed, wrapped and
// rendered output of a small corpus of idiomatic golf programs, following the
// teacher's go-snaps usage: one MatchSnapshot call per named case
// rather than a byte comparison baked into the test itself.
func TestEndToEndProgramSnapshots(t *testing.T) {
	programs := []struct {
		name    string
		program string
	}{
		{"addition", "5 6 +"},
		{"map_increment_bytes", `"hello"{1+}%`},
		{"map_square", "[1 2 3 4]{.*}%"},
		{"range", "5,"},
		{"power", "2 10?"},
		{"range_filter_multiples", "10,{3%!},"},
		{"sort", "[3 1 2]$"},
		{"bracket_underflow_repair", "[;;;1 2 3]"},
		{"fibonacci_unfold", "0 1{100<}{.@+}/"},
	}

	for _, p := range programs {
		t.Run(p.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, p.name, Sandboxed(p.program, ""))
		})
	}
}
