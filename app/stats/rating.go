// Package stats derives dashboard statistics from a player's fetched game
// history: rating trends, win rates, and opening breakdowns. Everything here
// is a pure transformation over an in-memory game list.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/Kemori82/site/app/models"
)

// playerRating picks the subject's per-game rating by matching the username
// against the white seat; anything else is read as the black seat.
func playerRating(g models.Game, user string) int {
	if strings.ToLower(g.White.Username) == user {
		return g.White.Rating
	}
	return g.Black.Rating
}

// RatingHistory projects games into one chronological rating series per
// tracked time class. Dates are UTC calendar days; when several games land
// on the same day the last one played keeps the point.
func RatingHistory(games []models.Game, username string) map[models.TimeClass][]models.RatingPoint {
	series := make(map[models.TimeClass][]models.RatingPoint, len(models.TrackedTimeClasses))
	for _, tc := range models.TrackedTimeClasses {
		series[tc] = []models.RatingPoint{}
	}

	user := strings.ToLower(username)
	for _, g := range games {
		tc, ok := models.ParseTimeClass(g.TimeClass)
		if !ok {
			continue
		}
		rating := playerRating(g, user)
		if rating == 0 || g.EndTime == 0 {
			continue
		}
		date := time.Unix(g.EndTime, 0).UTC().Format("2006-01-02")
		series[tc] = append(series[tc], models.RatingPoint{Date: date, Rating: rating})
	}

	for tc, points := range series {
		sort.SliceStable(points, func(i, j int) bool { return points[i].Date < points[j].Date })
		series[tc] = dedupeByDate(points)
	}
	return series
}

// dedupeByDate keeps the last point for each date in an already sorted
// series, preserving ascending order.
func dedupeByDate(points []models.RatingPoint) []models.RatingPoint {
	seen := make(map[string]bool, len(points))
	out := make([]models.RatingPoint, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		if seen[points[i].Date] {
			continue
		}
		seen[points[i].Date] = true
		out = append(out, points[i])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
