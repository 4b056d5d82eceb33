package stats

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/Kemori82/site/app/models"
	"github.com/Kemori82/site/app/openings"
)

var rePawnDoubleStep = regexp.MustCompile(`^[a-h][3-4]$`)

// familyPatterns map opening-name fragments to the first-move family when
// the book has no usable canonical first move.
var familyPatterns = []struct {
	re   *regexp.Regexp
	move string
}{
	{regexp.MustCompile(`(?i)king'?s pawn|italian|ruy lopez|sicilian|french|caro[- ]?kann|scandinavian|petrov`), "e4"},
	{regexp.MustCompile(`(?i)queen'?s pawn|queen'?s gambit|slav|nimzo|grunfeld|grünfeld|catalan|tarrasch`), "d4"},
	{regexp.MustCompile(`(?i)english`), "c4"},
	{regexp.MustCompile(`(?i)bird`), "f4"},
}

// firstMoveFamily tags an opening with its family: the book line's first
// move when it is a pawn double-step, else a name heuristic, else "other".
func firstMoveFamily(name string) string {
	if e, ok := openings.ByName(name); ok && e.Moves != "" {
		first := strings.Fields(e.Moves)[0]
		if rePawnDoubleStep.MatchString(first) {
			return first
		}
	}
	for _, p := range familyPatterns {
		if p.re.MatchString(name) {
			return p.move
		}
	}
	return "other"
}

// GroupOpenings turns the aggregated tallies into ranked table rows for one
// color, grouped by first-move family. Families come back in first-seen
// order (opening names are walked alphabetically so output is stable);
// within a family rows are sorted by games played, descending.
func GroupOpenings(tallies map[string]*models.OpeningTally, color models.Color) ([]string, map[string][]models.OpeningRow) {
	names := lo.Keys(tallies)
	sort.Strings(names)

	var rows []models.OpeningRow
	for _, name := range names {
		t := tallies[name]
		side := t.Black
		if color == models.White {
			side = t.White
		}
		if side.Total == 0 {
			continue
		}
		rows = append(rows, models.OpeningRow{
			Name:      name,
			Wins:      side.Wins,
			Draws:     side.Draws,
			Losses:    side.Losses,
			Total:     side.Total,
			FirstMove: firstMoveFamily(name),
		})
	}

	families := lo.Uniq(lo.Map(rows, func(r models.OpeningRow, _ int) string { return r.FirstMove }))
	groups := lo.GroupBy(rows, func(r models.OpeningRow) string { return r.FirstMove })
	for _, fam := range families {
		g := groups[fam]
		sort.SliceStable(g, func(i, j int) bool { return g[i].Total > g[j].Total })
		groups[fam] = g
	}
	return families, groups
}

// DefaultFamily picks the family shown first: "e4" when present, otherwise
// the first family in grouping order. Empty when there are no rows.
func DefaultFamily(families []string) string {
	if lo.Contains(families, "e4") {
		return "e4"
	}
	if len(families) == 0 {
		return ""
	}
	return families[0]
}
