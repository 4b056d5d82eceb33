// Command report fetches a chess.com user's full game history and prints
// the derived dashboard statistics to stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Kemori82/site/app"
	"github.com/Kemori82/site/app/config"
	"github.com/Kemori82/site/app/models"
	"github.com/Kemori82/site/app/stats"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: report <username>")
		os.Exit(2)
	}
	username := os.Args[1]

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	app.Init(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	games, err := app.FetchAllGames(ctx, username)
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) || errors.Is(err, app.ErrNoArchives) || errors.Is(err, app.ErrNoGames) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("fetching games")
	}
	fmt.Printf("%s: %d games fetched in %s\n\n", username, len(games), time.Since(start).Round(time.Millisecond))

	history := stats.RatingHistory(games, username)
	winrates := stats.WinRates(games, username)
	for _, tc := range models.TrackedTimeClasses {
		points := history[tc]
		wr := winrates[tc]
		fmt.Printf("%-7s", tc)
		if len(points) == 0 {
			fmt.Println(" no games")
			continue
		}
		latest := points[len(points)-1]
		fmt.Printf(" rating %d (%s)  W %.2f%%  D %.2f%%  L %.2f%%  over %d games\n",
			latest.Rating, latest.Date, wr.Wins, wr.Draws, wr.Losses, wr.Total)
	}

	tallies := stats.OpeningStats(games, username)
	for _, color := range []models.Color{models.White, models.Black} {
		families, groups := stats.GroupOpenings(tallies, color)
		fam := stats.DefaultFamily(families)
		if fam == "" {
			continue
		}
		fmt.Printf("\ntop openings as %s (%s):\n", color, fam)
		rows := groups[fam]
		if len(rows) > 5 {
			rows = rows[:5]
		}
		for _, r := range rows {
			fmt.Printf("  %-45s +%d =%d -%d (%d)\n", r.Name, r.Wins, r.Draws, r.Losses, r.Total)
		}
	}
}
