// ABOUTME: CLI entry point for multiselect
// ABOUTME: Runs the cobra root command; cancellation exits 130, other failures exit 1

package main

import (
	"errors"
	"fmt"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/multiselect-go/internal/termfix"

	"github.com/mauromedda/multiselect-go/internal/mode/interactive/btea"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, btea.ErrCancelled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
