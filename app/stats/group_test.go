package stats

import (
	"testing"

	"github.com/Kemori82/site/app/models"
)

func whiteTally(wins, draws, losses int, eco string) *models.OpeningTally {
	return &models.OpeningTally{
		White: models.ColorTally{Wins: wins, Draws: draws, Losses: losses, Total: wins + draws + losses},
		ECO:   eco,
	}
}

func TestFirstMoveFamily(t *testing.T) {
	cases := map[string]string{
		"Ruy Lopez":                          "e4", // book line starts e4
		"Queen's Gambit Declined":            "d4",
		"Bird's Opening":                     "f4",
		"English Opening":                    "c4",
		"Sicilian Defense: Obscure Sideline": "e4", // not in book, name heuristic
		"Some Hypermodern Thing":             "other",
	}
	for name, want := range cases {
		if got := firstMoveFamily(name); got != want {
			t.Fatalf("firstMoveFamily(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestGroupOpeningsRanksByTotal(t *testing.T) {
	tallies := map[string]*models.OpeningTally{
		"Ruy Lopez":    whiteTally(1, 0, 1, "C60"),
		"Italian Game": whiteTally(4, 1, 2, "C50"),
	}
	_, groups := GroupOpenings(tallies, models.White)
	rows := groups["e4"]
	if len(rows) != 2 {
		t.Fatalf("e4 rows = %d, want 2", len(rows))
	}
	if rows[0].Name != "Italian Game" || rows[1].Name != "Ruy Lopez" {
		t.Fatalf("rows not ranked by total: %+v", rows)
	}
}

func TestGroupOpeningsDefaultFamily(t *testing.T) {
	tallies := map[string]*models.OpeningTally{
		"Queen's Gambit Declined": whiteTally(3, 0, 0, "D30"),
		"Ruy Lopez":               whiteTally(1, 0, 0, "C60"),
	}
	families, _ := GroupOpenings(tallies, models.White)
	if got := DefaultFamily(families); got != "e4" {
		t.Fatalf("DefaultFamily = %q, want e4", got)
	}
}

func TestGroupOpeningsDefaultWithoutE4(t *testing.T) {
	tallies := map[string]*models.OpeningTally{
		"Queen's Gambit Declined": whiteTally(3, 0, 0, "D30"),
	}
	families, _ := GroupOpenings(tallies, models.White)
	if got := DefaultFamily(families); got != "d4" {
		t.Fatalf("DefaultFamily = %q, want d4", got)
	}
	if DefaultFamily(nil) != "" {
		t.Fatal("DefaultFamily(nil) should be empty")
	}
}

func TestGroupOpeningsSkipsZeroTotals(t *testing.T) {
	tallies := map[string]*models.OpeningTally{
		"Ruy Lopez": {
			Black: models.ColorTally{Wins: 2, Total: 2},
			ECO:   "C60",
		},
	}
	families, groups := GroupOpenings(tallies, models.White)
	if len(families) != 0 || len(groups) != 0 {
		t.Fatalf("white grouping should be empty, got %v / %v", families, groups)
	}

	families, groups = GroupOpenings(tallies, models.Black)
	if len(groups["e4"]) != 1 {
		t.Fatalf("black grouping missing row: %v / %v", families, groups)
	}
}
