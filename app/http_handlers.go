package app

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Kemori82/site/app/models"
	"github.com/Kemori82/site/app/stats"
)

// Health is the unauthenticated liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetPlayerStats fetches a player's full chess.com history and returns the
// derived dashboard payload: profile, ratings snapshot, rating history, win
// rates, and opening breakdowns for both colors.
func GetPlayerStats(c *gin.Context) {
	username := strings.ToLower(strings.TrimSpace(c.Param("username")))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing username"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Chess.FetchTimeout)
	defer cancel()

	profile, err := FetchProfile(ctx, username)
	if err != nil {
		respondFetchError(c, username, err)
		return
	}

	snapshot, err := FetchStatsSnapshot(ctx, username)
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("stats snapshot unavailable")
		snapshot = &models.StatsSnapshot{}
	}

	games, err := FetchAllGames(ctx, username)
	if err != nil {
		respondFetchError(c, username, err)
		return
	}

	ratings := make(map[models.TimeClass]int, len(models.TrackedTimeClasses))
	for _, tc := range models.TrackedTimeClasses {
		ratings[tc] = snapshot.LastRating(tc)
	}

	tallies := stats.OpeningStats(games, username)
	whiteFamilies, whiteGroups := stats.GroupOpenings(tallies, models.White)
	blackFamilies, blackGroups := stats.GroupOpenings(tallies, models.Black)

	c.JSON(http.StatusOK, gin.H{
		"username":       username,
		"profile":        profile,
		"ratings":        ratings,
		"games":          len(games),
		"rating_history": stats.RatingHistory(games, username),
		"winrates":       stats.WinRates(games, username),
		"openings":       tallies,
		"openings_white": gin.H{
			"families": whiteFamilies,
			"default":  stats.DefaultFamily(whiteFamilies),
			"groups":   whiteGroups,
		},
		"openings_black": gin.H{
			"families": blackFamilies,
			"default":  stats.DefaultFamily(blackFamilies),
			"groups":   blackGroups,
		},
	})
}

// respondFetchError maps the three distinct query failure states onto
// responses the UI can render differently: a missing profile is a 404, an
// empty history is a 200 with zero games and an explanatory message.
func respondFetchError(c *gin.Context, username string, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNoArchives), errors.Is(err, ErrNoGames):
		c.JSON(http.StatusOK, gin.H{
			"username": username,
			"games":    0,
			"message":  err.Error(),
		})
	default:
		log.Error().Err(err).Str("username", username).Msg("chess.com fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch data from chess.com"})
	}
}

// GetLinks serves the static bookmark index for the linktree page.
func GetLinks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"folders": LinkFolders})
}

// GetDemonlist serves the static demon ranking for the demonlist page.
func GetDemonlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"demons": DemonList})
}
