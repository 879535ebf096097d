package report

import (
	"io"
	"strconv"

	"github.com/riskibarqy/football-results/internal/domain/teamstats"
	"github.com/valyala/bytebufferpool"
)

// Markdown writes a pipe table. The column set comes from the first team in
// sorted order; keys a later team lacks render as empty cells.
type Markdown struct{}

func NewMarkdown() *Markdown {
	return &Markdown{}
}

func (m *Markdown) Render(w io.Writer, teams map[string]*teamstats.Stats) error {
	rows := sortedSummaries(teams)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if len(rows) == 0 {
		_, _ = buf.WriteString(EmptyMessage)
		_ = buf.WriteByte('\n')
		_, err := buf.WriteTo(w)
		return err
	}

	keys := rows[0].summary.Keys()
	headers := append([]string{"Team"}, keys...)

	writeRow(buf, headers)
	_ = buf.WriteByte('|')
	for range headers {
		_, _ = buf.WriteString("---|")
	}
	_ = buf.WriteByte('\n')

	cells := make([]string, len(headers))
	for _, row := range rows {
		cells[0] = row.team
		for i, key := range keys {
			cells[i+1] = ""
			if v, ok := row.summary.Value(key); ok {
				cells[i+1] = strconv.Itoa(v)
			}
		}
		writeRow(buf, cells)
	}

	_, err := buf.WriteTo(w)
	return err
}

func writeRow(buf *bytebufferpool.ByteBuffer, cells []string) {
	_, _ = buf.WriteString("| ")
	for i, cell := range cells {
		if i > 0 {
			_, _ = buf.WriteString(" | ")
		}
		_, _ = buf.WriteString(cell)
	}
	_, _ = buf.WriteString(" |\n")
}
