// Package main is the entry point for the taskpick CLI.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/taskpack/cmd/taskpick/commands"
	"github.com/katalvlaran/taskpack/internal/app"
	"github.com/katalvlaran/taskpack/internal/logger"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	log.SetOutput(stderr)

	cli := commands.New(app.New(log, stdin, stdout), log)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}
