// Package report renders per-team statistics for the terminal. Every
// renderer orders teams by name using byte-wise comparison and never mutates
// the aggregates it is given.
package report

import (
	"sort"

	"github.com/riskibarqy/football-results/internal/domain/teamstats"
)

const EmptyMessage = "No statistics to display."

type teamSummary struct {
	team    string
	summary teamstats.Summary
}

func sortedSummaries(teams map[string]*teamstats.Stats) []teamSummary {
	out := make([]teamSummary, 0, len(teams))
	for team, stats := range teams {
		out = append(out, teamSummary{team: team, summary: teamstats.Summarize(stats)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].team < out[j].team
	})
	return out
}
