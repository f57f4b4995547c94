package main

import (
	"context"
	"os"
	"os/signal"
	"physiocare-client/internal/app/delivery/cli"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, cli.NewApp); err != nil {
		stop()
		os.Exit(1)
	}
}
