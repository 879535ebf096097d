package report

import (
	"io"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-results/internal/domain/teamstats"
)

type jsonRow struct {
	Team         string `json:"team"`
	Matches      int    `json:"matches"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Draws        int    `json:"draws"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	MeanGoals    *int   `json:"mean_goals,omitempty"`
	MedianGoals  *int   `json:"median_goals,omitempty"`
	ModeGoals    *int   `json:"mode_goals,omitempty"`
}

// JSON writes the sorted summaries as one array.
type JSON struct{}

func NewJSON() *JSON {
	return &JSON{}
}

func (j *JSON) Render(w io.Writer, teams map[string]*teamstats.Stats) error {
	summaries := sortedSummaries(teams)
	rows := make([]jsonRow, 0, len(summaries))
	for _, item := range summaries {
		s := item.summary
		row := jsonRow{
			Team:         item.team,
			Matches:      s.Matches,
			Wins:         s.Wins,
			Losses:       s.Losses,
			Draws:        s.Draws,
			GoalsFor:     s.GoalsFor,
			GoalsAgainst: s.GoalsAgainst,
		}
		if s.HasGoalStats {
			mean, median, mode := s.MeanGoals, s.MedianGoals, s.ModeGoals
			row.MeanGoals = &mean
			row.MedianGoals = &median
			row.ModeGoals = &mode
		}
		rows = append(rows, row)
	}

	return sonic.ConfigDefault.NewEncoder(w).Encode(rows)
}
