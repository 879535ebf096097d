package csvsource

import (
	"io"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-results/internal/usecase"
)

// FormerNames resolves historical team names to their current names. It is
// immutable after loading.
type FormerNames struct {
	currentByFormer map[string]string
}

func NewFormerNames(currentByFormer map[string]string) *FormerNames {
	mapping := make(map[string]string, len(currentByFormer))
	for former, current := range currentByFormer {
		mapping[former] = current
	}
	return &FormerNames{currentByFormer: mapping}
}

// LoadFormerNames reads a former,current table. A later row for the same
// former name replaces an earlier one.
func LoadFormerNames(path string) (*FormerNames, error) {
	t, err := openTable(path, "former", "current")
	if err != nil {
		return nil, err
	}
	defer t.Close()

	mapping := make(map[string]string)
	for {
		rec, err := t.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		former, err := rec.required("former")
		if err != nil {
			return nil, crerr.Mark(err, usecase.ErrDataSource)
		}
		current, err := rec.required("current")
		if err != nil {
			return nil, crerr.Mark(err, usecase.ErrDataSource)
		}
		mapping[former] = current
	}

	return &FormerNames{currentByFormer: mapping}, nil
}

// Resolve follows a single rename. Names that were never renamed, including
// names that are already current, come back unchanged.
func (f *FormerNames) Resolve(name string) string {
	if f == nil {
		return name
	}
	if current, ok := f.currentByFormer[name]; ok {
		return current
	}
	return name
}

func (f *FormerNames) Len() int {
	if f == nil {
		return 0
	}
	return len(f.currentByFormer)
}
