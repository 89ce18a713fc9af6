// Command kquery builds record query strings from query documents.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/roach88/kquery/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(cli.GetExitCode(err))
	}
}
