// Command fishlog is the fishing diary client: it keeps diary entries,
// catches and spots in sync with the backend.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCLI(os.Stdout).root().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
