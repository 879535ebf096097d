package csvsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-results/internal/domain/match"
	"github.com/riskibarqy/football-results/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadMatches_JoinsScorers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, ResultsFile,
		resultsHeader,
		"1974-06-14,West Germany,Chile,1,0,FIFA World Cup,Berlin,Germany,FALSE",
		"1974-06-18,East Germany,Australia,2,0,FIFA World Cup,Hamburg,Germany,True",
		"1974-06-22,East Germany,West Germany,1,0,FIFA World Cup,Hamburg,Germany,1",
	)
	writeCSV(t, dir, GoalScorersFile,
		goalScorersHeader,
		"1974-06-22,East Germany,West Germany,East Germany,Jürgen Sparwasser,77,FALSE,FALSE",
		"1974-06-18,East Germany,Australia,East Germany,Colin Curran,58,true,false",
		"1974-06-14,West Germany,Chile,West Germany,Paul Breitner,18,FALSE,FALSE",
		"1974-06-18,East Germany,Australia,East Germany,Joachim Streich,72,FALSE,TRUE",
	)
	names := NewFormerNames(map[string]string{"West Germany": "Germany"})

	matches, err := NewLoader(dir, names, nil).LoadMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, match.Match{
		HomeTeam:   "Germany",
		AwayTeam:   "Chile",
		HomeScore:  1,
		AwayScore:  0,
		Date:       "1974-06-14",
		Tournament: "FIFA World Cup",
		City:       "Berlin",
		Country:    "Germany",
		Neutral:    false,
		Scorers: []match.ScorerEvent{
			{Team: "Germany", Scorer: "Paul Breitner", Minute: "18"},
		},
	}, matches[0])

	assert.True(t, matches[1].Neutral)
	require.Len(t, matches[1].Scorers, 2)
	assert.Equal(t, "Colin Curran", matches[1].Scorers[0].Scorer)
	assert.True(t, matches[1].Scorers[0].OwnGoal)
	assert.False(t, matches[1].Scorers[0].Penalty)
	assert.Equal(t, "Joachim Streich", matches[1].Scorers[1].Scorer)
	assert.True(t, matches[1].Scorers[1].Penalty)

	assert.True(t, matches[2].Neutral)
	assert.Equal(t, "Germany", matches[2].AwayTeam)
	require.Len(t, matches[2].Scorers, 1)
	assert.Equal(t, "77", matches[2].Scorers[0].Minute)
}

func TestLoader_LoadMatches_JoinUsesRawNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, ResultsFile,
		resultsHeader,
		"1960-01-01,Dahomey,Togo,1,1,Friendly,Porto-Novo,Dahomey,FALSE",
	)
	writeCSV(t, dir, GoalScorersFile,
		goalScorersHeader,
		// keyed by the resolved name, must not join
		"1960-01-01,Benin,Togo,Benin,Someone,10,FALSE,FALSE",
		"1960-01-01,Dahomey,Togo,Dahomey,Scorer One,12,FALSE,FALSE",
		"1960-01-01,Dahomey,Togo,Togo,Scorer Two,80,FALSE,FALSE",
	)
	names := NewFormerNames(map[string]string{"Dahomey": "Benin"})

	matches, err := NewLoader(dir, names, nil).LoadMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, "Benin", matches[0].HomeTeam)
	require.Len(t, matches[0].Scorers, 2)
	assert.Equal(t, "Benin", matches[0].Scorers[0].Team)
	assert.Equal(t, "Togo", matches[0].Scorers[1].Team)
}

func TestLoader_LoadMatches_NoScorersIsEmptyNotError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, ResultsFile, resultsHeader, "2001-01-02,B,C,0,0,Friendly,X,Y,FALSE")
	writeCSV(t, dir, GoalScorersFile, goalScorersHeader)

	matches, err := NewLoader(dir, nil, nil).LoadMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.NotNil(t, matches[0].Scorers)
	assert.Empty(t, matches[0].Scorers)
}

func TestLoader_LoadMatches_OptionalColumnsDefaultToEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, ResultsFile, "home_team,away_team,home_score,away_score", "A,B, 3 ,1")
	writeCSV(t, dir, GoalScorersFile, goalScorersHeader)

	matches, err := NewLoader(dir, nil, nil).LoadMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, match.Match{HomeTeam: "A", AwayTeam: "B", HomeScore: 3, AwayScore: 1, Scorers: []match.ScorerEvent{}}, matches[0])
}

func TestLoader_LoadMatches_BareQuotesInField(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, ResultsFile, resultsHeader, "2001-01-01,A,B,1,0,Friendly,X,Y,FALSE")
	writeCSV(t, dir, GoalScorersFile,
		goalScorersHeader,
		`2001-01-01,A,B,A,Ali "Bebeto" Khan,33,FALSE,FALSE`,
	)

	matches, err := NewLoader(dir, nil, nil).LoadMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Len(t, matches[0].Scorers, 1)
	assert.Equal(t, `Ali "Bebeto" Khan`, matches[0].Scorers[0].Scorer)
}

func TestLoader_LoadMatches_RepeatedColumnUsesLast(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, ResultsFile,
		"date,home_team,away_team,home_score,away_score,home_score",
		"2001-01-01,A,B,9,0,2",
	)
	writeCSV(t, dir, GoalScorersFile, goalScorersHeader)

	matches, err := NewLoader(dir, nil, nil).LoadMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].HomeScore)
}

func TestLoader_LoadMatches_NegativeScoreIsParsed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, ResultsFile, resultsHeader, "2001-01-01,A,B,1,-2,Friendly,X,Y,FALSE")
	writeCSV(t, dir, GoalScorersFile, goalScorersHeader)

	matches, err := NewLoader(dir, nil, nil).LoadMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, -2, matches[0].AwayScore)
}

func TestParseFlag(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"TRUE":  true,
		"true":  true,
		"True":  true,
		"tRuE":  true,
		"1":     false,
		"yes":   false,
		"":      false,
		"FALSE": false,
		" TRUE": false,
	}
	for raw, want := range tests {
		assert.Equal(t, want, parseFlag(raw), "raw=%q", raw)
	}
}

func TestParseNeutral(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"True":  true,
		"true":  true,
		"1":     true,
		"TRUE":  false,
		"FALSE": false,
		"0":     false,
		"":      false,
	}
	for raw, want := range tests {
		assert.Equal(t, want, parseNeutral(raw), "raw=%q", raw)
	}
}

func TestLoader_LoadMatches_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results []string
		scorers []string
		target  error
		message string
	}{
		{
			name:    "non numeric score",
			results: []string{resultsHeader, "2001-01-01,A,B,NA,1,Friendly,X,Y,FALSE"},
			scorers: []string{goalScorersHeader},
			target:  usecase.ErrParse,
			message: "results.csv row 1: home_score",
		},
		{
			name:    "fractional score",
			results: []string{resultsHeader, "2001-01-01,A,B,1,2.5,Friendly,X,Y,FALSE"},
			scorers: []string{goalScorersHeader},
			target:  usecase.ErrParse,
			message: "away_score",
		},
		{
			name:    "empty score",
			results: []string{resultsHeader, "2001-01-01,A,B,1,0,Friendly,X,Y,FALSE", "2001-01-02,A,B,,0,Friendly,X,Y,FALSE"},
			scorers: []string{goalScorersHeader},
			target:  usecase.ErrParse,
			message: "row 2",
		},
		{
			name:    "missing away team column",
			results: []string{"date,home_team,home_score,away_score", "2001-01-01,A,1,0"},
			scorers: []string{goalScorersHeader},
			target:  usecase.ErrMissingField,
			message: `"away_team"`,
		},
		{
			name:    "short results row",
			results: []string{resultsHeader, "2001-01-01,A,B,1"},
			scorers: []string{goalScorersHeader},
			target:  usecase.ErrMissingField,
			message: `"away_score"`,
		},
		{
			name:    "scorer file without date",
			results: []string{resultsHeader},
			scorers: []string{"home_team,away_team,team,scorer,minute,own_goal,penalty", "A,B,A,P,1,FALSE,FALSE"},
			target:  usecase.ErrMissingField,
			message: "goalscorers.csv",
		},
		{
			name:    "joined scorer without penalty column",
			results: []string{resultsHeader, "2001-01-01,A,B,1,0,Friendly,X,Y,FALSE"},
			scorers: []string{"date,home_team,away_team,team,scorer,minute,own_goal", "2001-01-01,A,B,A,P,1,FALSE"},
			target:  usecase.ErrMissingField,
			message: `"penalty"`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeCSV(t, dir, ResultsFile, tc.results...)
			writeCSV(t, dir, GoalScorersFile, tc.scorers...)

			_, err := NewLoader(dir, nil, nil).LoadMatches(context.Background())
			require.Error(t, err)
			assert.True(t, crerr.Is(err, tc.target), "unexpected error kind: %v", err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestLoader_LoadMatches_MissingFiles(t *testing.T) {
	t.Parallel()

	t.Run("no results", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeCSV(t, dir, GoalScorersFile, goalScorersHeader)

		_, err := NewLoader(dir, nil, nil).LoadMatches(context.Background())
		require.Error(t, err)
		assert.True(t, crerr.Is(err, usecase.ErrDataSource))
		assert.Contains(t, err.Error(), ResultsFile)
	})

	t.Run("no goalscorers", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeCSV(t, dir, ResultsFile, resultsHeader)

		_, err := NewLoader(dir, nil, nil).LoadMatches(context.Background())
		require.Error(t, err)
		assert.True(t, crerr.Is(err, usecase.ErrDataSource))
		assert.Contains(t, err.Error(), GoalScorersFile)
	})

	t.Run("directory instead of file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ResultsFile), 0o755))
		writeCSV(t, dir, GoalScorersFile, goalScorersHeader)

		_, err := NewLoader(dir, nil, nil).LoadMatches(context.Background())
		require.Error(t, err)
		assert.True(t, crerr.Is(err, usecase.ErrDataSource))
	})
}

func TestLoader_LoadMatches_CancelledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, ResultsFile, resultsHeader, "2001-01-01,A,B,1,0,Friendly,X,Y,FALSE")
	writeCSV(t, dir, GoalScorersFile, goalScorersHeader)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(dir, nil, nil).LoadMatches(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
