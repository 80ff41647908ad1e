package sonapi

import (
	"context"
)

//go:generate go run github.com/vektra/mockery/cmd/mockery -name Lookuper -output ../mocks/

// Lookuper resolves a word into its Estonian/English pair and word forms.
// isEnglish selects the lookup direction.
type Lookuper interface {
	Lookup(ctx context.Context, word string, isEnglish bool) (*Result, error)
	Close(ctx context.Context) error
}
