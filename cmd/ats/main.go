package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"jobportal-backend/internal/cli"
	"jobportal-backend/internal/shared/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	telemetry.Configure(level)
	defer telemetry.Sync()

	if err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
