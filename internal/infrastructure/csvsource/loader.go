package csvsource

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-results/internal/domain/match"
	"github.com/riskibarqy/football-results/internal/platform/logging"
	"github.com/riskibarqy/football-results/internal/usecase"
)

type identityResolver struct{}

func (identityResolver) Resolve(name string) string { return name }

// Loader joins results.csv with goalscorers.csv from one data directory.
type Loader struct {
	dataDir  string
	resolver match.NameResolver
	logger   *logging.Logger
}

func NewLoader(dataDir string, resolver match.NameResolver, logger *logging.Logger) *Loader {
	if resolver == nil {
		resolver = identityResolver{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Loader{
		dataDir:  dataDir,
		resolver: resolver,
		logger:   logger.Named("Loader"),
	}
}

// LoadMatches returns one match per results row in file order. Scorers are
// attached by date and raw team names, before any rename is applied.
func (l *Loader) LoadMatches(ctx context.Context) ([]match.Match, error) {
	scorers, err := l.loadScorerIndex(ctx)
	if err != nil {
		return nil, err
	}

	t, err := openTable(filepath.Join(l.dataDir, ResultsFile))
	if err != nil {
		return nil, err
	}
	defer t.Close()

	var matches []match.Match
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := t.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		item, err := l.buildMatch(rec, scorers)
		if err != nil {
			return nil, err
		}
		matches = append(matches, item)
	}

	l.logger.DebugContext(ctx, "matches loaded", "file", ResultsFile, "count", len(matches))
	return matches, nil
}

func (l *Loader) loadScorerIndex(ctx context.Context) (map[match.Key][]record, error) {
	t, err := openTable(filepath.Join(l.dataDir, GoalScorersFile))
	if err != nil {
		return nil, err
	}
	defer t.Close()

	index := make(map[match.Key][]record)
	rows := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := t.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		key, err := rawKey(rec, true)
		if err != nil {
			return nil, err
		}
		index[key] = append(index[key], rec)
		rows++
	}

	l.logger.DebugContext(ctx, "scorer rows indexed", "file", GoalScorersFile, "rows", rows, "matches", len(index))
	return index, nil
}

func (l *Loader) buildMatch(rec record, scorers map[match.Key][]record) (match.Match, error) {
	key, err := rawKey(rec, false)
	if err != nil {
		return match.Match{}, err
	}

	homeScore, err := parseScore(rec, "home_score")
	if err != nil {
		return match.Match{}, err
	}
	awayScore, err := parseScore(rec, "away_score")
	if err != nil {
		return match.Match{}, err
	}

	events := make([]match.ScorerEvent, 0, len(scorers[key]))
	for _, row := range scorers[key] {
		event, err := l.buildScorer(row)
		if err != nil {
			return match.Match{}, err
		}
		events = append(events, event)
	}

	return match.Match{
		HomeTeam:   l.resolver.Resolve(key.HomeTeam),
		AwayTeam:   l.resolver.Resolve(key.AwayTeam),
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		Date:       key.Date,
		Tournament: rec.optional("tournament"),
		City:       rec.optional("city"),
		Country:    rec.optional("country"),
		Neutral:    parseNeutral(rec.optional("neutral")),
		Scorers:    events,
	}, nil
}

func (l *Loader) buildScorer(rec record) (match.ScorerEvent, error) {
	var values [5]string
	for i, column := range []string{"team", "scorer", "minute", "own_goal", "penalty"} {
		v, err := rec.required(column)
		if err != nil {
			return match.ScorerEvent{}, err
		}
		values[i] = v
	}

	return match.ScorerEvent{
		Team:    l.resolver.Resolve(values[0]),
		Scorer:  values[1],
		Minute:  values[2],
		OwnGoal: parseFlag(values[3]),
		Penalty: parseFlag(values[4]),
	}, nil
}

// rawKey builds the join key. The date is required in the scorer file but
// optional in the results file.
func rawKey(rec record, dateRequired bool) (match.Key, error) {
	var key match.Key
	if dateRequired {
		date, err := rec.required("date")
		if err != nil {
			return match.Key{}, err
		}
		key.Date = date
	} else {
		key.Date = rec.optional("date")
	}

	home, err := rec.required("home_team")
	if err != nil {
		return match.Key{}, err
	}
	away, err := rec.required("away_team")
	if err != nil {
		return match.Key{}, err
	}
	key.HomeTeam = home
	key.AwayTeam = away
	return key, nil
}

func parseScore(rec record, column string) (int, error) {
	raw, err := rec.required(column)
	if err != nil {
		return 0, err
	}
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, crerr.Mark(crerr.Wrapf(err, "%s row %d: %s", rec.table, rec.row, column), usecase.ErrParse)
	}
	return score, nil
}

// parseFlag is true only for a case-insensitive "TRUE".
func parseFlag(raw string) bool {
	return strings.EqualFold(raw, "TRUE")
}

func parseNeutral(raw string) bool {
	switch raw {
	case "True", "true", "1":
		return true
	default:
		return false
	}
}
