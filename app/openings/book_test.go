package openings

import (
	"strings"
	"testing"
)

func TestBookLoaded(t *testing.T) {
	if len(Book) == 0 {
		t.Fatal("opening book is empty")
	}
	for _, e := range Book {
		if !IsECO(e.ECO) {
			t.Fatalf("entry %q has malformed code %q", e.Name, e.ECO)
		}
		if e.Moves != strings.ToLower(e.Moves) {
			t.Fatalf("entry %q has non-lowercase moves %q", e.Name, e.Moves)
		}
	}
}

func TestBookNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Book {
		key := strings.ToLower(e.Name)
		if seen[key] {
			t.Fatalf("duplicate opening name %q", e.Name)
		}
		seen[key] = true
	}
}

func TestByECO(t *testing.T) {
	e, ok := ByECO("C60")
	if !ok || e.Name != "Ruy Lopez" {
		t.Fatalf("ByECO(C60) = %+v, %v", e, ok)
	}
	if _, ok := ByECO("Z99"); ok {
		t.Fatal("ByECO(Z99) should not match")
	}
}

func TestByName(t *testing.T) {
	e, ok := ByName("SICILIAN DEFENSE")
	if !ok || e.ECO != "B20" {
		t.Fatalf("ByName = %+v, %v", e, ok)
	}
}

func TestIsECO(t *testing.T) {
	cases := map[string]bool{
		"A00": true, "E99": true, "C60": true,
		"F00": false, "a00": false, "C6": false, "C600": false, "": false,
	}
	for code, want := range cases {
		if got := IsECO(code); got != want {
			t.Fatalf("IsECO(%q) = %v, want %v", code, got, want)
		}
	}
}
