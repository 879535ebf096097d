package teamstats

import "sort"

const (
	KeyMatches      = "matches"
	KeyWins         = "wins"
	KeyLosses       = "losses"
	KeyDraws        = "draws"
	KeyGoalsFor     = "goals_for"
	KeyGoalsAgainst = "goals_against"
	KeyMeanGoals    = "mean_goals"
	KeyMedianGoals  = "median_goals"
	KeyModeGoals    = "mode_goals"
)

var counterKeys = []string{KeyMatches, KeyWins, KeyLosses, KeyDraws, KeyGoalsFor, KeyGoalsAgainst}
var allKeys = append(append([]string{}, counterKeys...), KeyMeanGoals, KeyMedianGoals, KeyModeGoals)

// Summary is a read-only snapshot of Stats. The goal statistics are only
// present when the team has at least one match.
type Summary struct {
	Matches      int
	Wins         int
	Losses       int
	Draws        int
	GoalsFor     int
	GoalsAgainst int

	HasGoalStats bool
	MeanGoals    int
	MedianGoals  int
	ModeGoals    int
}

// Summarize derives a Summary. Mean and median are truncated toward zero;
// mode ties resolve to the tied value that occurs first in match order.
func Summarize(s *Stats) Summary {
	if s == nil {
		return Summary{}
	}

	out := Summary{
		Matches:      s.Matches,
		Wins:         s.Wins,
		Losses:       s.Losses,
		Draws:        s.Draws,
		GoalsFor:     s.GoalsFor,
		GoalsAgainst: s.GoalsAgainst,
	}
	if len(s.Goals) == 0 {
		return out
	}

	out.HasGoalStats = true
	out.MeanGoals = mean(s.Goals)
	out.MedianGoals = median(s.Goals)
	out.ModeGoals = mode(s.Goals)
	return out
}

// Keys lists the populated fields in report column order.
func (s Summary) Keys() []string {
	if s.HasGoalStats {
		return append([]string{}, allKeys...)
	}
	return append([]string{}, counterKeys...)
}

// Value returns the field stored under key, or false when the key is
// unknown or not populated.
func (s Summary) Value(key string) (int, bool) {
	switch key {
	case KeyMatches:
		return s.Matches, true
	case KeyWins:
		return s.Wins, true
	case KeyLosses:
		return s.Losses, true
	case KeyDraws:
		return s.Draws, true
	case KeyGoalsFor:
		return s.GoalsFor, true
	case KeyGoalsAgainst:
		return s.GoalsAgainst, true
	case KeyMeanGoals:
		return s.MeanGoals, s.HasGoalStats
	case KeyMedianGoals:
		return s.MedianGoals, s.HasGoalStats
	case KeyModeGoals:
		return s.ModeGoals, s.HasGoalStats
	default:
		return 0, false
	}
}

func mean(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total / len(values)
}

func median(values []int) int {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func mode(values []int) int {
	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best, bestCount := values[0], 0
	for _, v := range values {
		if c := counts[v]; c > bestCount {
			best, bestCount = v, c
		}
	}
	return best
}
