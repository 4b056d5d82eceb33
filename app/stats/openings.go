package stats

import (
	"regexp"
	"strings"

	"github.com/Kemori82/site/app/models"
	"github.com/Kemori82/site/app/openings"
)

// ecoFallback maps well-known opening names to ECO codes for games where
// neither the book nor the source URL yields one.
var ecoFallback = map[string]string{
	"Anderssen's Opening":                        "A00",
	"Nimzowitsch-Larsen Attack":                  "A01",
	"English Opening":                            "A10",
	"Dutch Defense":                              "A80",
	"Benoni Defense":                             "A60",
	"Scandinavian Defense":                       "B01",
	"Alekhine Defense":                           "B02",
	"Pirc Defense":                               "B07",
	"Caro-Kann Defense":                          "B10",
	"Sicilian Defense":                           "B20",
	"French Defense":                             "C00",
	"Italian Game":                               "C50",
	"Ruy Lopez":                                  "C60",
	"Queen's Gambit Declined":                    "D30",
	"Slav Defense":                               "D10",
	"Grünfeld Defense":                           "D80",
	"Nimzo-Indian Defense":                       "E20",
	"King's Indian Defense":                      "E60",
	"Queen's Indian Defense":                     "E12",
	"Catalan Opening":                            "E01",
	"Modern Defense Standard Line":               "B06",
	"Nimzowitsch Larsen Attack Modern Variation": "A01",
	"Reti Opening Kingside Fianchetto Variation": "A05",
	"Caro Kann Defense Two Knights Attack":       "B11",
}

var (
	reOpeningSlug = regexp.MustCompile(`openings/([A-Za-z0-9-]+)(?:-\d\..*)?$`)
	reSlugECO     = regexp.MustCompile(`^([A-E][0-9]{2})-`)
)

// urlOpening pulls a display name and an optional ECO code out of a
// chess.com opening URL like
// https://www.chess.com/openings/Ruy-Lopez-Berlin-Defense.
func urlOpening(url string) (name, eco string) {
	if url == "" || !strings.Contains(url, "chess.com/openings/") {
		return "", ""
	}
	m := reOpeningSlug.FindStringSubmatch(url)
	if m == nil {
		return "", ""
	}
	slug := m[1]
	name = titleWords(strings.ReplaceAll(slug, "-", " "))
	if em := reSlugECO.FindStringSubmatch(slug); em != nil && openings.IsECO(em[1]) {
		eco = em[1]
	}
	return name, eco
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// lossResults are the result tokens that mark the side carrying them as the
// loser.
var lossResults = map[string]bool{
	"timeout":    true,
	"resigned":   true,
	"checkmated": true,
	"lose":       true,
}

// gameOutcome returns the winning color, or the empty string for a draw.
// Either seat's result field may carry the decisive token, so both are
// checked independently; the checks agree for well-formed records.
func gameOutcome(g models.Game) models.Color {
	white := strings.ToLower(g.White.Result)
	black := strings.ToLower(g.Black.Result)
	switch {
	case white == "win":
		return models.White
	case black == "win":
		return models.Black
	case lossResults[white]:
		return models.Black
	case lossResults[black]:
		return models.White
	}
	return ""
}

// resolveECO walks the fallback chain for a game's classification code: the
// matched book entry, the code embedded in the opening URL slug, the game's
// own eco field, the static name table, and finally "N/A".
func resolveECO(entry openings.Entry, urlName, urlECO string, g models.Game) string {
	switch {
	case openings.IsECO(entry.ECO):
		return entry.ECO
	case urlECO != "":
		return urlECO
	case openings.IsECO(g.ECO):
		return g.ECO
	case ecoFallback[entry.Name] != "":
		return ecoFallback[entry.Name]
	case ecoFallback[urlName] != "":
		return ecoFallback[urlName]
	}
	return "N/A"
}

// OpeningStats builds the per-opening, per-color win/draw/loss tallies for a
// player. Opening names come from the book via the matcher, falling back to
// the name derived from the source URL.
func OpeningStats(games []models.Game, username string) map[string]*models.OpeningTally {
	out := make(map[string]*models.OpeningTally)
	user := strings.ToLower(username)

	for _, g := range games {
		isWhite := strings.ToLower(g.White.Username) == user

		entry := openings.Find(g.MovesText())
		urlName, urlECO := urlOpening(g.ECO)

		name := entry.Name
		if entry.Name == openings.Unknown.Name && urlName != "" {
			name = urlName
		}

		tally := out[name]
		if tally == nil {
			tally = &models.OpeningTally{ECO: resolveECO(entry, urlName, urlECO, g)}
			out[name] = tally
		}

		side := &tally.Black
		mine := models.Black
		if isWhite {
			side = &tally.White
			mine = models.White
		}

		switch outcome := gameOutcome(g); {
		case outcome == "":
			side.Draws++
		case outcome == mine:
			side.Wins++
		default:
			side.Losses++
		}
		side.Total++
	}
	return out
}
