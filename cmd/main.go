// Package main provides the entry point for the titlecase line filter
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"titlecase/cmd/cli"
	"titlecase/log"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	defer log.Logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewTitleCaseCmd(version)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		log.Logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
}
