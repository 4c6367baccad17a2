package exec

import (
	"context"
	"io"
	"os"
	osexec "os/exec"
	"time"
)

// Command is the concrete Executor backed by os/exec.
type Command struct {
	config   *config
	baseCtx  context.Context
	localCtx context.Context
	stdout   io.Writer
	stderr   io.Writer

	localStdout io.Writer
	localStderr io.Writer
}

// New creates a Command with the given global options.
func New(opts ...Option) *Command {
	cmd := &Command{
		config:  newConfig(),
		baseCtx: context.Background(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// WithEnv sets environment variables for the next run.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithDir sets the working directory for the next run.
func (c *Command) WithDir(dir string) Executor {
	c.config.localDir = dir
	return c
}

// WithContext sets the context for the next run.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.localCtx = ctx
	return c
}

// WithDisableColors disables color output for the next run.
func (c *Command) WithDisableColors() Executor {
	val := true
	c.config.localDisableColors = &val
	return c
}

// WithTimeout bounds the next run.
func (c *Command) WithTimeout(timeout string) Executor {
	c.config.localTimeout = timeout
	return c
}

// WithInheritEnv passes the parent environment to the next run.
func (c *Command) WithInheritEnv() Executor {
	val := true
	c.config.localInheritEnv = &val
	return c
}

// WithStdout sets the stdout passthrough writer for the next run.
func (c *Command) WithStdout(w io.Writer) Executor {
	c.localStdout = w
	return c
}

// WithStderr sets the stderr passthrough writer for the next run.
func (c *Command) WithStderr(w io.Writer) Executor {
	c.localStderr = w
	return c
}

// WithPassthrough streams output for the next run.
func (c *Command) WithPassthrough() Executor {
	val := true
	c.config.localPassthrough = &val
	return c
}

// Run executes the command. A non-nil error is always an *ExecError; the
// Result is returned alongside it whenever the process was started.
func (c *Command) Run(args ...string) (*Result, error) {
	defer c.reset()

	if len(args) == 0 {
		return nil, &ExecError{
			Command:  args,
			ExitCode: -1,
			Err:      ErrNoCommand,
		}
	}

	ctx := c.baseCtx
	if c.localCtx != nil {
		ctx = c.localCtx
	}

	if timeout := c.config.effectiveTimeout(); timeout != "" {
		duration, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, &ExecError{
				Command:  args,
				ExitCode: -1,
				Err:      err,
			}
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)

	if dir := c.config.effectiveDir(); dir != "" {
		cmd.Dir = dir
	}

	if c.config.effectiveInheritEnv() {
		cmd.Env = os.Environ()
	}
	for k, v := range c.config.effectiveEnv() {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr, combined lockedBuffer
	var stdoutPassthrough, stderrPassthrough io.Writer
	if c.config.effectivePassthrough() {
		stdoutPassthrough, stderrPassthrough = c.effectiveStdout(), c.effectiveStderr()
	}
	cmd.Stdout = streamWriter(&stdout, &combined, stdoutPassthrough)
	cmd.Stderr = streamWriter(&stderr, &combined, stderrPassthrough)

	runErr := cmd.Run()
	started := cmd.Process != nil

	// A process that was never started has no result to report.
	if runErr != nil && !started {
		return nil, &ExecError{
			Command:  args,
			ExitCode: -1,
			Err:      runErr,
		}
	}

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Combined: combined.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	if runErr != nil {
		return result, &ExecError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Started:  true,
			Canceled: ctx.Err() != nil,
			Err:      runErr,
		}
	}

	return result, nil
}

func (c *Command) effectiveStdout() io.Writer {
	if c.localStdout != nil {
		return c.localStdout
	}
	return c.stdout
}

func (c *Command) effectiveStderr() io.Writer {
	if c.localStderr != nil {
		return c.localStderr
	}
	return c.stderr
}

func (c *Command) reset() {
	c.config.resetLocal()
	c.localCtx = nil
	c.localStdout = nil
	c.localStderr = nil
}
