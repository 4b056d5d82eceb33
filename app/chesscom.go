package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Kemori82/site/app/models"
)

var httpc = &http.Client{Timeout: 15 * time.Second}

// chessAPIBase is swapped out by client tests.
var chessAPIBase = "https://api.chess.com/pub"

// The three user-visible failure states of a stats query. The handler layer
// renders each one differently.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoArchives   = errors.New("no game archives found for this user")
	ErrNoGames      = errors.New("no games found in the archives")
)

type archiveIndex struct {
	Archives []string `json:"archives"`
}

type monthlyGames struct {
	Games []models.Game `json:"games"`
}

// FetchProfile returns the chess.com profile for a username.
func FetchProfile(ctx context.Context, username string) (*models.Profile, error) {
	var p models.Profile
	if err := getJSON(ctx, fmt.Sprintf("%s/player/%s", chessAPIBase, username), &p); err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

// FetchStatsSnapshot returns the per-category ratings snapshot.
func FetchStatsSnapshot(ctx context.Context, username string) (*models.StatsSnapshot, error) {
	var s models.StatsSnapshot
	if err := getJSON(ctx, fmt.Sprintf("%s/player/%s/stats", chessAPIBase, username), &s); err != nil {
		return nil, mapNotFound(err)
	}
	return &s, nil
}

// FetchArchives returns the chronological list of monthly archive URLs.
func FetchArchives(ctx context.Context, username string) ([]string, error) {
	var idx archiveIndex
	u := fmt.Sprintf("%s/player/%s/games/archives", chessAPIBase, username)
	if err := getJSON(ctx, u, &idx); err != nil {
		return nil, mapNotFound(err)
	}
	return idx.Archives, nil
}

// FetchAllGames fetches every monthly archive concurrently and flattens the
// results in archive (chronological) order. A failed month contributes an
// empty list; the aggregate proceeds with whatever months succeeded.
// Distinguishes ErrUserNotFound, ErrNoArchives, and ErrNoGames.
func FetchAllGames(ctx context.Context, username string) ([]models.Game, error) {
	archives, err := FetchArchives(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(archives) == 0 {
		return nil, ErrNoArchives
	}

	results := make([][]models.Game, len(archives))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Chess.MaxConcurrency)
	for i, monthURL := range archives {
		i, monthURL := i, monthURL
		g.Go(func() error {
			var mg monthlyGames
			if err := getJSON(gctx, monthURL, &mg); err != nil {
				// soft-fail the month, keep the rest
				log.Warn().Err(err).Str("archive", monthURL).Msg("skipping archive")
				return nil
			}
			results[i] = mg.Games
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var games []models.Game
	for _, monthGames := range results {
		games = append(games, monthGames...)
	}
	if len(games) == 0 {
		return nil, ErrNoGames
	}
	return games, nil
}

type httpError struct {
	Status int
	Body   string
}

func (e httpError) Error() string { return fmt.Sprintf("http %d: %s", e.Status, e.Body) }

func mapNotFound(err error) error {
	var herr httpError
	if errors.As(err, &herr) && herr.Status == http.StatusNotFound {
		return ErrUserNotFound
	}
	return err
}

// getJSON fetches a URL into v, retrying 429s and 5xxs with backoff.
func getJSON(ctx context.Context, url string, v any) error {
	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			// Friendly UA per chess.com guidelines
			req.Header.Set("User-Agent", cfg.Chess.UserAgent)

			res, err := httpc.Do(req)
			if err != nil {
				return err
			}
			defer res.Body.Close()

			if res.StatusCode == http.StatusOK {
				return json.NewDecoder(res.Body).Decode(v)
			}

			var msg struct {
				Message string `json:"message"`
			}
			_ = json.NewDecoder(res.Body).Decode(&msg)
			herr := httpError{Status: res.StatusCode, Body: msg.Message}
			if res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= 500 {
				return herr
			}
			return retry.Unrecoverable(herr)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(250*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}
