package stats

import (
	"testing"

	"github.com/Kemori82/site/app/models"
)

func game(timeClass string, endTime int64, whiteUser string, whiteRating int, whiteResult, blackUser string, blackRating int, blackResult string) models.Game {
	return models.Game{
		TimeClass: timeClass,
		EndTime:   endTime,
		White:     models.Player{Username: whiteUser, Rating: whiteRating, Result: whiteResult},
		Black:     models.Player{Username: blackUser, Rating: blackRating, Result: blackResult},
	}
}

const (
	nov14 = int64(1700000000) // 2023-11-14 UTC
	nov15 = int64(1700090000) // 2023-11-15 UTC
)

func TestRatingHistoryDedup(t *testing.T) {
	games := []models.Game{
		game("blitz", nov14, "alice", 1500, "win", "bob", 1490, "resigned"),
		game("blitz", nov14+3600, "alice", 1550, "win", "carol", 1480, "resigned"),
	}
	history := RatingHistory(games, "Alice")
	points := history[models.Blitz]
	if len(points) != 1 {
		t.Fatalf("blitz points = %d, want 1", len(points))
	}
	if points[0].Date != "2023-11-14" || points[0].Rating != 1550 {
		t.Fatalf("blitz point = %+v, want 2023-11-14/1550", points[0])
	}
}

func TestRatingHistorySortedAscending(t *testing.T) {
	games := []models.Game{
		game("rapid", nov15, "bob", 1200, "win", "alice", 1100, "resigned"),
		game("rapid", nov14, "alice", 1090, "win", "bob", 1210, "resigned"),
	}
	points := RatingHistory(games, "alice")[models.Rapid]
	if len(points) != 2 {
		t.Fatalf("rapid points = %d, want 2", len(points))
	}
	if points[0].Date != "2023-11-14" || points[1].Date != "2023-11-15" {
		t.Fatalf("points out of order: %+v", points)
	}
	// alice was white in the first game and black in the second
	if points[0].Rating != 1090 || points[1].Rating != 1100 {
		t.Fatalf("POV ratings wrong: %+v", points)
	}
}

func TestRatingHistoryDropsUntrackedAndIncomplete(t *testing.T) {
	games := []models.Game{
		game("daily", nov14, "alice", 1600, "win", "bob", 1580, "resigned"),
		game("blitz", 0, "alice", 1500, "win", "bob", 1490, "resigned"),
		game("blitz", nov14, "alice", 0, "win", "bob", 1490, "resigned"),
	}
	history := RatingHistory(games, "alice")
	for tc, points := range history {
		if len(points) != 0 {
			t.Fatalf("%s has %d points, want 0", tc, len(points))
		}
	}
}

func TestRatingHistoryEmptyInput(t *testing.T) {
	history := RatingHistory(nil, "alice")
	for _, tc := range models.TrackedTimeClasses {
		if points, ok := history[tc]; !ok || len(points) != 0 {
			t.Fatalf("%s series = %v, want present and empty", tc, points)
		}
	}
}
