package csvsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	resultsHeader     = "date,home_team,away_team,home_score,away_score,tournament,city,country,neutral"
	goalScorersHeader = "date,home_team,away_team,team,scorer,minute,own_goal,penalty"
	formerNamesHeader = "former,current"
)

func writeCSV(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}
