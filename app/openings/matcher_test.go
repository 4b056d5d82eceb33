package openings

import "testing"

func TestFindLongestPrefixWins(t *testing.T) {
	// Both "Italian Game" and its Giuoco Piano line prefix this input; the
	// longer line must win.
	got := Find("e4 e5 nf3 nc6 bc4 bc5 d3")
	if got.Name != "Italian Game: Giuoco Piano" {
		t.Fatalf("Find = %q, want Giuoco Piano", got.Name)
	}
}

func TestFindExactLine(t *testing.T) {
	got := Find("e4 e5 nf3 nc6 bb5")
	if got.ECO != "C60" || got.Name != "Ruy Lopez" {
		t.Fatalf("Find = %+v, want C60 Ruy Lopez", got)
	}
}

func TestFindTranscript(t *testing.T) {
	got := Find("1.e4 e5 2.Nf3 Nc6 3.Bb5")
	if got.ECO != "C60" {
		t.Fatalf("Find transcript = %+v, want C60", got)
	}
}

func TestFindByECO(t *testing.T) {
	got := Find("C60")
	if got.Name != "Ruy Lopez" {
		t.Fatalf("Find(C60) = %q, want Ruy Lopez", got.Name)
	}
}

func TestFindByName(t *testing.T) {
	got := Find("ruy lopez")
	if got.ECO != "C60" {
		t.Fatalf("Find(ruy lopez) = %+v, want C60", got)
	}
}

func TestFindTotality(t *testing.T) {
	for _, in := range []string{"", "   ", "h4 h5 zz9", "Z99", "No Such Opening"} {
		if got := Find(in); got != Unknown {
			t.Fatalf("Find(%q) = %+v, want Unknown", in, got)
		}
	}
}

func TestFindShorterInputNeverMatchesLongerLine(t *testing.T) {
	// A one-move game can only match one-move lines.
	got := Find("e4")
	if got.ECO != "B00" || got.Name != "King's Pawn Opening" {
		t.Fatalf("Find(e4) = %+v, want B00 King's Pawn Opening", got)
	}
}
