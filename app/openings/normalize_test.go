package openings

import "testing"

func TestNormalizeTranscript(t *testing.T) {
	raw := "[Event \"Live Chess\"]\n[Site \"Chess.com\"]\n\n1. e4 {[%clk 0:09:58]} e5 1... c5 $5 2. Nf3   Nc6 3.Bb5\n"
	got := NormalizeMoves(raw)
	want := "e4 e5 c5 nf3 nc6 bb5"
	if got != want {
		t.Fatalf("NormalizeMoves = %q, want %q", got, want)
	}
}

func TestNormalizeTokenList(t *testing.T) {
	got := NormalizeMoves("  E4   e5  Nf3 ")
	want := "e4 e5 nf3"
	if got != want {
		t.Fatalf("NormalizeMoves = %q, want %q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"1. e4 e5 2. Nf3 Nc6 3. Bb5 a6",
		"e4 e5 nf3",
		"  D4  d5   c4 ",
		"",
	}
	for _, in := range inputs {
		once := NormalizeMoves(in)
		twice := NormalizeMoves(once)
		if once != twice {
			t.Fatalf("NormalizeMoves not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestDetectMoveText(t *testing.T) {
	cases := []struct {
		raw  string
		want MovesKind
	}{
		{"1. e4 e5", AnnotatedTranscript},
		{"1.e4", AnnotatedTranscript},
		{"e4 e5 nf3", TokenList},
		{"", TokenList},
	}
	for _, tc := range cases {
		if got := DetectMoveText(tc.raw).Kind; got != tc.want {
			t.Fatalf("DetectMoveText(%q).Kind = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
