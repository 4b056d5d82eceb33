package openings

import "strings"

// Find resolves an input -- a move list or transcript, an ECO code, or an
// opening name -- to the best matching book entry. Moves are tried first:
// every book line whose tokens prefix the game's tokens is a candidate and
// the longest one wins (ties go to book order). Failing that the input is
// treated as an ECO code, then as a name (case-insensitive). Find is total:
// anything unmatched, including empty input, yields Unknown.
func Find(input string) Entry {
	if strings.TrimSpace(input) == "" {
		return Unknown
	}

	if e, ok := matchByMoves(NormalizeMoves(input)); ok {
		return e
	}

	if IsECO(input) {
		if e, ok := ByECO(input); ok {
			return e
		}
	}

	if e, ok := ByName(strings.TrimSpace(input)); ok {
		return e
	}

	return Unknown
}

func matchByMoves(normalized string) (Entry, bool) {
	if normalized == "" {
		return Unknown, false
	}
	gameTokens := strings.Split(normalized, " ")

	best := Unknown
	bestLen := 0
	for _, e := range Book {
		if e.Moves == "" {
			continue
		}
		bookTokens := strings.Split(e.Moves, " ")
		if len(bookTokens) > len(gameTokens) || len(bookTokens) <= bestLen {
			continue
		}
		if isPrefix(bookTokens, gameTokens) {
			best = e
			bestLen = len(bookTokens)
		}
	}
	return best, bestLen > 0
}

func isPrefix(prefix, tokens []string) bool {
	for i, tok := range prefix {
		if tokens[i] != tok {
			return false
		}
	}
	return true
}
