package match

import "context"

// Loader produces every match of a dataset in source order.
type Loader interface {
	LoadMatches(ctx context.Context) ([]Match, error)
}

// NameResolver maps a historical team name to its current name. Unknown
// names are returned unchanged.
type NameResolver interface {
	Resolve(name string) string
}
