// Command sonago looks words up in the sonapi.ee dictionary and manages cards
// in the current AnkiWeb deck.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	c := newCLI(os.Stdout)
	err := newRootCmd(c).Execute()
	if closeErr := c.close(context.Background()); closeErr != nil {
		fmt.Fprintln(os.Stderr, "Close error:", closeErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
