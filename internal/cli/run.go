package cli

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/jmgilman/go/syserr/exec"
	"github.com/jmgilman/go/syserr/internal/config"
	"github.com/jmgilman/go/syserr/internal/render"
)

func (c *CLI) runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run a program and describe the platform error if it fails",
		ArgsUsage: "-- PROGRAM [ARGS...]",
		Description: `Runs PROGRAM with the current environment, streaming its output.
If it cannot be started, or (on Windows) exits with a non-zero status,
the platform error for the failure is printed to stderr and syserr exits
with the program's exit code.`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "kill the program after this long (0 = no timeout)",
			},
		},
		Action: c.runAction,
	}
}

func (c *CLI) runAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return NewExitError(ExitUsageError, "run requires a program", nil)
	}

	executor := c.executor.WithContext(ctx).WithPassthrough().WithInheritEnv()
	if timeout := cmd.Duration("timeout"); timeout > 0 {
		executor = executor.WithTimeout(timeout.String())
	}
	if c.cfg.Color == config.ColorNever {
		executor = executor.WithDisableColors()
	}

	c.logger.Info("running command", "args", args)
	start := time.Now()
	result, err := executor.Run(args...)
	if err == nil {
		c.logger.Debug("command finished", "exit_code", result.ExitCode, "elapsed", time.Since(start))
		return nil
	}

	var execErr *exec.ExecError
	if !errors.As(err, &execErr) {
		return NewExitError(ExitGeneralError, "command failed", err)
	}

	c.logger.Debug("command failed",
		"exit_code", execErr.ExitCode,
		"started", execErr.Started,
		"canceled", execErr.Canceled,
		"elapsed", time.Since(start),
	)

	code := ExitGeneralError
	if execErr.Started && execErr.ExitCode > 0 {
		code = execErr.ExitCode
	}

	perr, ok := execErr.PlatformError()
	if !ok {
		return NewExitError(code, "command failed", err)
	}

	r := c.renderer(c.stderr, render.Options{ShowName: true, ShowCustom: true})
	if renderErr := r.Render(perr); renderErr != nil {
		return NewExitError(code, "command failed", errors.Join(err, renderErr))
	}
	// Already reported on stderr.
	return NewExitError(code, "", nil)
}
