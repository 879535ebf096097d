package teamstats

import "github.com/riskibarqy/football-results/internal/domain/match"

// Calculator accumulates matches into per-team aggregates. The returned map
// has no defined iteration order.
type Calculator interface {
	Update(m match.Match)
	TeamStats() map[string]*Stats
}

// DefaultCalculator tracks win/loss/draw and goal counts keyed by the
// resolved team name.
type DefaultCalculator struct {
	teams map[string]*Stats
}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{teams: make(map[string]*Stats)}
}

// GetOrCreate returns the aggregate for team, creating an empty one on first use.
func (c *DefaultCalculator) GetOrCreate(team string) *Stats {
	if c.teams == nil {
		c.teams = make(map[string]*Stats)
	}
	stats, ok := c.teams[team]
	if !ok {
		stats = &Stats{}
		c.teams[team] = stats
	}
	return stats
}

func (c *DefaultCalculator) Update(m match.Match) {
	homeResult, awayResult := ResultsFor(m.HomeScore, m.AwayScore)
	c.GetOrCreate(m.HomeTeam).Update(m.HomeScore, m.AwayScore, homeResult)
	c.GetOrCreate(m.AwayTeam).Update(m.AwayScore, m.HomeScore, awayResult)
}

func (c *DefaultCalculator) TeamStats() map[string]*Stats {
	if c.teams == nil {
		c.teams = make(map[string]*Stats)
	}
	return c.teams
}
