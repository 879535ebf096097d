package teamstats

// Result is the outcome of a match from one side's point of view.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
)

// ResultsFor returns the home and away outcome for a final score.
func ResultsFor(homeScore, awayScore int) (home, away Result) {
	switch {
	case homeScore > awayScore:
		return ResultWin, ResultLoss
	case homeScore < awayScore:
		return ResultLoss, ResultWin
	default:
		return ResultDraw, ResultDraw
	}
}

// Stats is the running aggregate for one team. Matches always equals
// Wins+Losses+Draws and len(Goals) always equals Matches, as long as every
// update carries a known Result.
type Stats struct {
	Matches      int
	Wins         int
	Losses       int
	Draws        int
	GoalsFor     int
	GoalsAgainst int
	// Goals holds goals scored per match in the order the matches were seen.
	Goals []int
}

// Update records one match. An unrecognised result still counts the match
// and its goals but increments none of the outcome counters.
func (s *Stats) Update(scored, conceded int, result Result) {
	s.Matches++
	s.GoalsFor += scored
	s.GoalsAgainst += conceded
	s.Goals = append(s.Goals, scored)

	switch result {
	case ResultWin:
		s.Wins++
	case ResultLoss:
		s.Losses++
	case ResultDraw:
		s.Draws++
	}
}

func (s *Stats) Summary() Summary {
	return Summarize(s)
}
