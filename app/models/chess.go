package models

// Player is one side of a chess.com game.
type Player struct {
	Username string `json:"username"`
	Result   string `json:"result"`
	Rating   int    `json:"rating"`
}

// Game is the per-game record inside a chess.com monthly archive.
type Game struct {
	URL         string `json:"url"`
	PGN         string `json:"pgn"`
	Moves       string `json:"moves,omitempty"` // pre-tokenized move list, present on some payloads
	TimeControl string `json:"time_control"`    // e.g. "600+0"
	TimeClass   string `json:"time_class"`      // blitz/rapid/bullet/daily
	Rated       bool   `json:"rated"`
	EndTime     int64  `json:"end_time"`
	Rules       string `json:"rules"`
	White       Player `json:"white"`
	Black       Player `json:"black"`
	ECO         string `json:"eco"` // opening URL/slug as chess.com reports it
}

// MovesText returns the best available move text for the game: the
// pre-tokenized list when present, otherwise the raw PGN transcript.
func (g Game) MovesText() string {
	if g.Moves != "" {
		return g.Moves
	}
	return g.PGN
}

// Profile is the chess.com player profile payload.
type Profile struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status"`
	Joined   int64  `json:"joined"`
	Country  string `json:"country"`
}

// CategoryStats is one time-control section of the player stats payload.
type CategoryStats struct {
	Last struct {
		Rating int `json:"rating"`
	} `json:"last"`
}

// StatsSnapshot is the chess.com per-player ratings snapshot. Sections are
// absent when the player never played that category.
type StatsSnapshot struct {
	ChessRapid  *CategoryStats `json:"chess_rapid"`
	ChessBlitz  *CategoryStats `json:"chess_blitz"`
	ChessBullet *CategoryStats `json:"chess_bullet"`
}

// LastRating returns the last known rating for a time class, or 0 when the
// snapshot has no section for it.
func (s StatsSnapshot) LastRating(tc TimeClass) int {
	var cat *CategoryStats
	switch tc {
	case Rapid:
		cat = s.ChessRapid
	case Blitz:
		cat = s.ChessBlitz
	case Bullet:
		cat = s.ChessBullet
	}
	if cat == nil {
		return 0
	}
	return cat.Last.Rating
}
