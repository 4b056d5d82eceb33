package models

// TimeClass is a tracked game pacing category. Anything outside the three
// constants below (daily, variants, ...) is dropped at the boundary.
type TimeClass string

const (
	Rapid  TimeClass = "rapid"
	Blitz  TimeClass = "blitz"
	Bullet TimeClass = "bullet"
)

// TrackedTimeClasses lists the classes the stats pipeline cares about, in
// display order.
var TrackedTimeClasses = []TimeClass{Rapid, Blitz, Bullet}

// ParseTimeClass maps a raw time_class string onto the closed enumeration.
func ParseTimeClass(s string) (TimeClass, bool) {
	switch TimeClass(s) {
	case Rapid, Blitz, Bullet:
		return TimeClass(s), true
	}
	return "", false
}

// Color is the side a player held in a game.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// RatingPoint is one day's rating in a time-control series. Date is a UTC
// calendar date formatted 2006-01-02, unique within a series.
type RatingPoint struct {
	Date   string `json:"date"`
	Rating int    `json:"rating"`
}

// WinRateSummary holds win/draw/loss percentages (two decimals) plus the raw
// game count for one time class. All zero when Total is zero.
type WinRateSummary struct {
	Wins   float64 `json:"wins"`
	Draws  float64 `json:"draws"`
	Losses float64 `json:"losses"`
	Total  int     `json:"total"`
}

// ColorTally counts outcomes for games a player held one color in.
type ColorTally struct {
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
	Total  int `json:"total"`
}

// OpeningTally is the per-opening aggregate, one ColorTally per side, plus
// the ECO code resolved for the opening name.
type OpeningTally struct {
	White ColorTally `json:"white"`
	Black ColorTally `json:"black"`
	ECO   string     `json:"eco"`
}

// OpeningRow is one presentational row of the grouped openings table.
type OpeningRow struct {
	Name      string `json:"name"`
	Wins      int    `json:"wins"`
	Draws     int    `json:"draws"`
	Losses    int    `json:"losses"`
	Total     int    `json:"total"`
	FirstMove string `json:"first_move"`
}
