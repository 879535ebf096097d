package usecase

import crerr "github.com/cockroachdb/errors"

var (
	// ErrDataSource marks a missing, unreadable or malformed input file.
	ErrDataSource = crerr.New("data source unavailable")
	// ErrParse marks a field that cannot be coerced to its numeric type.
	ErrParse = crerr.New("invalid field value")
	// ErrMissingField marks a row without a required column.
	ErrMissingField = crerr.New("missing field")
)
