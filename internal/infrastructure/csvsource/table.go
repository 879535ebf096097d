package csvsource

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-results/internal/usecase"
)

const (
	ResultsFile     = "results.csv"
	GoalScorersFile = "goalscorers.csv"
	FormerNamesFile = "former_names.csv"
)

const utf8BOM = "\ufeff"

// table reads a comma separated file with a header row, one record at a time.
type table struct {
	name   string
	file   *os.File
	reader *csv.Reader
	index  map[string]int
	row    int
}

func openTable(path string, requiredHeaders ...string) (*table, error) {
	name := filepath.Base(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "open %s", name), usecase.ErrDataSource)
	}

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil && err != io.EOF {
		_ = f.Close()
		return nil, crerr.Mark(crerr.Wrapf(err, "read %s header", name), usecase.ErrDataSource)
	}

	// A repeated column name resolves to its last occurrence.
	index := make(map[string]int, len(header))
	for i, column := range header {
		if i == 0 {
			column = strings.TrimPrefix(column, utf8BOM)
		}
		index[column] = i
	}
	for _, column := range requiredHeaders {
		if _, ok := index[column]; !ok {
			_ = f.Close()
			return nil, crerr.Wrapf(usecase.ErrDataSource, "%s: header has no %q column", name, column)
		}
	}

	return &table{name: name, file: f, reader: reader, index: index}, nil
}

// next returns io.EOF once the file is exhausted.
func (t *table) next() (record, error) {
	fields, err := t.reader.Read()
	if err == io.EOF {
		return record{}, io.EOF
	}
	t.row++
	if err != nil {
		return record{}, crerr.Mark(crerr.Wrapf(err, "%s row %d", t.name, t.row), usecase.ErrDataSource)
	}
	return record{table: t.name, row: t.row, fields: fields, index: t.index}, nil
}

func (t *table) Close() error {
	return t.file.Close()
}

// record is one data row. Columns missing from the header or cut short in
// the row are treated as absent.
type record struct {
	table  string
	row    int
	fields []string
	index  map[string]int
}

func (r record) lookup(column string) (string, bool) {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

func (r record) required(column string) (string, error) {
	value, ok := r.lookup(column)
	if !ok {
		return "", crerr.Wrapf(usecase.ErrMissingField, "%s row %d: column %q", r.table, r.row, column)
	}
	return value, nil
}

func (r record) optional(column string) string {
	value, _ := r.lookup(column)
	return value
}
