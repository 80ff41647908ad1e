// Package browser provides the page-scripting capability used by the
// flashcard actions: navigate, fill, click and wait for an element.
package browser

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned by WaitFor when the element did not become visible in time.
var ErrTimeout = errors.New("element did not appear in time")

//go:generate go run github.com/vektra/mockery/cmd/mockery -name Browser -output ../mocks/

// Browser is a single page. Selectors may be CSS selectors or XPath
// expressions.
type Browser interface {
	Navigate(ctx context.Context, url string) error
	Fill(ctx context.Context, selector, value string) error
	Click(ctx context.Context, selector string) error
	WaitFor(ctx context.Context, selector string, timeout time.Duration) error
	// HTML returns the outer HTML of the current document.
	HTML(ctx context.Context) (string, error)
	Close() error
}

// Opener starts a fresh page.
type Opener func(ctx context.Context) (Browser, error)
