// Command bookcheck replays every canonical line in the embedded opening
// book and reports entries whose moves are not legal chess. The book stores
// lowercase tokens, so each token is lifted back to standard algebraic
// notation candidates before decoding.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/notnil/chess"

	"github.com/Kemori82/site/app/openings"
)

func main() {
	bad := 0
	for _, entry := range openings.Book {
		if entry.Moves == "" {
			continue
		}
		if err := replayLine(entry.Moves); err != nil {
			bad++
			fmt.Fprintf(os.Stderr, "%s %-50s %v\n", entry.ECO, entry.Name, err)
		}
	}
	if bad > 0 {
		fmt.Fprintf(os.Stderr, "%d invalid entries out of %d\n", bad, len(openings.Book))
		os.Exit(1)
	}
	fmt.Printf("all %d book entries verified\n", len(openings.Book))
}

func replayLine(moves string) error {
	game := chess.NewGame()
	for _, token := range strings.Fields(moves) {
		if err := playToken(game, token); err != nil {
			return err
		}
	}
	return nil
}

// playToken decodes a lowercase book token against the current position,
// trying each plausible SAN restoration until one is legal.
func playToken(game *chess.Game, token string) error {
	var lastErr error
	for _, san := range sanCandidates(token) {
		move, err := chess.AlgebraicNotation{}.Decode(game.Position(), san)
		if err != nil {
			lastErr = err
			continue
		}
		return game.Move(move)
	}
	return fmt.Errorf("token %q: %w", token, lastErr)
}

// sanCandidates restores the case variants a lowercase token may stand for.
// A leading b is genuinely ambiguous (b-pawn capture vs. bishop move), so
// both the pawn and the piece reading are offered.
func sanCandidates(token string) []string {
	if strings.HasPrefix(token, "o-o") {
		return []string{strings.ToUpper(token)}
	}

	// uppercase a promotion piece, e.g. e8=q -> e8=Q
	promo := token
	if i := strings.Index(promo, "="); i >= 0 && i+1 < len(promo) {
		promo = promo[:i+1] + strings.ToUpper(promo[i+1:i+2]) + promo[i+2:]
	}

	candidates := []string{promo}
	if strings.ContainsRune("nbrqk", rune(token[0])) {
		candidates = append(candidates, strings.ToUpper(promo[:1])+promo[1:])
	}
	return candidates
}
