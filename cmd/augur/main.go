package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.Version = version
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
