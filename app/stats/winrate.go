package stats

import (
	"math"
	"strings"

	"github.com/Kemori82/site/app/models"
)

// drawResults are the chess.com result tokens that count as a draw for the
// player who carries them. "win" is a win; every other token is a loss.
var drawResults = map[string]bool{
	"draw":               true,
	"stalemate":          true,
	"agreed":             true,
	"repetition":         true,
	"timevsinsufficient": true,
	"insufficient":       true,
}

// playerResult picks the subject's per-game result token by seat, same rule
// as playerRating.
func playerResult(g models.Game, user string) string {
	if strings.ToLower(g.White.Username) == user {
		return g.White.Result
	}
	return g.Black.Result
}

// WinRates tallies win/draw/loss per tracked time class and converts the
// counts to percentages rounded to two decimals. A class with no games
// yields the zero summary rather than dividing by zero.
func WinRates(games []models.Game, username string) map[models.TimeClass]models.WinRateSummary {
	type counts struct{ wins, draws, losses, total int }
	tally := make(map[models.TimeClass]*counts, len(models.TrackedTimeClasses))
	for _, tc := range models.TrackedTimeClasses {
		tally[tc] = &counts{}
	}

	user := strings.ToLower(username)
	for _, g := range games {
		tc, ok := models.ParseTimeClass(g.TimeClass)
		if !ok {
			continue
		}
		c := tally[tc]
		c.total++
		switch result := playerResult(g, user); {
		case result == "win":
			c.wins++
		case drawResults[result]:
			c.draws++
		default:
			c.losses++
		}
	}

	out := make(map[models.TimeClass]models.WinRateSummary, len(tally))
	for tc, c := range tally {
		if c.total == 0 {
			out[tc] = models.WinRateSummary{}
			continue
		}
		out[tc] = models.WinRateSummary{
			Wins:   percent(c.wins, c.total),
			Draws:  percent(c.draws, c.total),
			Losses: percent(c.losses, c.total),
			Total:  c.total,
		}
	}
	return out
}

func percent(part, total int) float64 {
	return math.Round(float64(part)/float64(total)*100*100) / 100
}
