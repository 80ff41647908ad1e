// Package sonago looks Estonian and English words up in the sonapi.ee
// dictionary. The packages under pkg/ hold the client, its cache and the
// AnkiWeb card actions; this package is the short way in.
package sonago

import (
	"context"

	"github.com/darkclainer/sonago/pkg/sonapi"
)

// Result is the flattened lookup answer.
type Result = sonapi.Result

// GetWord looks word up with a default client. When isEnglishWord is set the
// word is searched as English and echoed back as EnglishWord.
func GetWord(ctx context.Context, word string, isEnglishWord bool) (*Result, error) {
	remote := sonapi.NewRemote(nil, &sonapi.Config{MaxWorkers: 1})
	defer remote.Close(ctx)
	return remote.Lookup(ctx, word, isEnglishWord)
}
