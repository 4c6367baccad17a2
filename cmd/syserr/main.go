// Package main provides the CLI entry point for syserr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jmgilman/go/syserr/exec"
	"github.com/jmgilman/go/syserr/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	executor := exec.New(
		exec.WithStdout(os.Stdout),
		exec.WithStderr(os.Stderr),
	)

	app := cli.NewCLI(os.Stdout, os.Stderr, executor)
	err := app.Run(ctx, os.Args)
	if err == nil {
		return cli.ExitSuccess
	}

	// An empty message means the failure was already reported.
	if msg := err.Error(); msg != "" {
		fmt.Fprintf(os.Stderr, "syserr: %s\n", msg)
	}
	return cli.ExitCode(err)
}
