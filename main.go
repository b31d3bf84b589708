package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jumppad-labs/matrixpanel/cmd"
)

var version = "v0.0.0"
var commit = "abc123"
var date = "0000-00-00"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx, version, commit, date)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
