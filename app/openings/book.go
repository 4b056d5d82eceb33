// Package openings holds the embedded ECO opening book and the matching
// logic that classifies a game's moves against it.
package openings

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

//go:embed eco/*.json
var ecoFS embed.FS

// Entry is one opening book line. Moves is the canonical move sequence in
// lowercase algebraic notation; it is empty only for catch-all entries.
type Entry struct {
	ECO   string `json:"eco"`
	Name  string `json:"name"`
	Moves string `json:"moves"`
}

// Unknown is the sentinel returned when nothing in the book matches. It is a
// value, not an error: an unclassified game is a normal outcome.
var Unknown = Entry{ECO: "N/A", Name: "Unknown Opening", Moves: ""}

var reECO = regexp.MustCompile(`^[A-E][0-9]{2}$`)

// IsECO reports whether s is a well-formed ECO classification code.
func IsECO(s string) bool {
	return reECO.MatchString(s)
}

// Book is the full reference dataset, files A through E concatenated in
// order. Loaded once at init, never mutated.
var Book = mustLoadBook()

var ecoFiles = []string{
	"eco/ecoA.json",
	"eco/ecoB.json",
	"eco/ecoC.json",
	"eco/ecoD.json",
	"eco/ecoE.json",
}

type bookFile struct {
	Openings []Entry `json:"openings"`
}

func mustLoadBook() []Entry {
	var book []Entry
	for _, name := range ecoFiles {
		raw, err := ecoFS.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("openings: reading %s: %v", name, err))
		}
		var f bookFile
		if err := json.Unmarshal(raw, &f); err != nil {
			panic(fmt.Sprintf("openings: parsing %s: %v", name, err))
		}
		for _, e := range f.Openings {
			if !IsECO(e.ECO) {
				panic(fmt.Sprintf("openings: %s: bad ECO code %q for %q", name, e.ECO, e.Name))
			}
			if e.Name == "" {
				panic(fmt.Sprintf("openings: %s: entry %q has no name", name, e.ECO))
			}
		}
		book = append(book, f.Openings...)
	}
	return book
}

// ByECO returns the first book entry carrying the given code.
func ByECO(code string) (Entry, bool) {
	for _, e := range Book {
		if e.ECO == code {
			return e, true
		}
	}
	return Unknown, false
}

// ByName returns the book entry with the given canonical name,
// case-insensitively. Names are unique in the book.
func ByName(name string) (Entry, bool) {
	lower := strings.ToLower(name)
	for _, e := range Book {
		if strings.ToLower(e.Name) == lower {
			return e, true
		}
	}
	return Unknown, false
}
