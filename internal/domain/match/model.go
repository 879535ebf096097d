package match

// ScorerEvent is one goal credited to a team inside a match. Minute is kept
// verbatim because the source data carries empty and non-numeric values.
type ScorerEvent struct {
	Team    string
	Scorer  string
	Minute  string
	OwnGoal bool
	Penalty bool
}

// Match is one played game after team names have been resolved to their
// current form. Scorers keep the order of the scorer source file.
type Match struct {
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	Date       string
	Tournament string
	City       string
	Country    string
	Neutral    bool
	Scorers    []ScorerEvent
}

// Key identifies a match across the results and scorer sources. It always
// holds the raw, unresolved team names.
type Key struct {
	Date     string
	HomeTeam string
	AwayTeam string
}
