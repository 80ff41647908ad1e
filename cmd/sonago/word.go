package main

import (
	"context"
	"runtime"

	"github.com/gammazero/workerpool"
	"github.com/spf13/cobra"

	"github.com/darkclainer/sonago/pkg/sonapi"
)

type wordEntry struct {
	Word   string         `json:"word"`
	Result *sonapi.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func newWordCmd(c *cli) *cobra.Command {
	var (
		english bool
		workers int
	)
	cmd := &cobra.Command{
		Use:   "word WORD...",
		Short: "Look words up, printing one entry per word in input order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printJSON(c.lookupAll(cmd.Context(), args, english, workers))
		},
	}
	cmd.Flags().BoolVarP(&english, "english", "e", false, "words are English")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "parallel lookups")
	return cmd
}

// lookupAll runs the lookups on a worker pool. A failed word gets its error
// in the entry and does not stop the others.
func (c *cli) lookupAll(ctx context.Context, words []string, english bool, workers int) []*wordEntry {
	if workers < 1 {
		workers = 1
	}
	entries := make([]*wordEntry, len(words))
	pool := workerpool.New(workers)
	for i, word := range words {
		i, word := i, word
		pool.Submit(func() {
			entry := &wordEntry{Word: word}
			result, err := c.app.Actions.GetWord(ctx, word, english)
			if err != nil {
				entry.Error = err.Error()
			} else {
				entry.Result = result
			}
			entries[i] = entry
		})
	}
	pool.StopWait()
	return entries
}
