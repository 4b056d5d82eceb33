package openings

import (
	"regexp"
	"strings"
)

var (
	reTagLine    = regexp.MustCompile(`(?m)^\[.*?\]\s*`) // [Tag "Value"] lines
	reComments   = regexp.MustCompile(`\{[^}]*\}`)       // {...} comments (incl. [%clk ...])
	reNAG        = regexp.MustCompile(`\$\d+`)           // $1, $2, etc.
	reMoveNumber = regexp.MustCompile(`\d+\.(\.\.)?`)    // 1. and continuation 1...
	reSpaces     = regexp.MustCompile(`\s+`)
)

// MovesKind tells an annotated PGN transcript apart from an already
// tokenized move list.
type MovesKind int

const (
	TokenList MovesKind = iota
	AnnotatedTranscript
)

// MoveText is raw move input tagged with its variant. The variant is decided
// once, at the boundary, so downstream code never re-probes the string.
type MoveText struct {
	Kind MovesKind
	Raw  string
}

var reTranscriptProbe = regexp.MustCompile(`\d+\.`)

// DetectMoveText probes raw for a move-number marker and tags it.
func DetectMoveText(raw string) MoveText {
	if reTranscriptProbe.MatchString(raw) {
		return MoveText{Kind: AnnotatedTranscript, Raw: raw}
	}
	return MoveText{Kind: TokenList, Raw: raw}
}

// Normalize renders the move text as a single-space-delimited lowercase
// token string. Transcripts lose their tag pairs, comments, NAGs, and move
// numbers on the way. Normalizing an already normalized string is a no-op.
func (m MoveText) Normalize() string {
	s := m.Raw
	if m.Kind == AnnotatedTranscript {
		s = reTagLine.ReplaceAllString(s, "")
		s = reComments.ReplaceAllString(s, "")
		s = reNAG.ReplaceAllString(s, "")
		s = reMoveNumber.ReplaceAllString(s, "")
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// NormalizeMoves is the one-shot form of DetectMoveText + Normalize.
func NormalizeMoves(raw string) string {
	return DetectMoveText(raw).Normalize()
}
