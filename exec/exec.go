package exec

import (
	"context"
	"io"
)

// Executor runs commands and reports failures as *ExecError.
// Fluent setters apply to the next Run only and override the global
// settings given to New.
type Executor interface {
	// WithEnv sets environment variables for the next run.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the next run.
	WithDir(dir string) Executor

	// WithContext sets the context for the next run.
	WithContext(ctx context.Context) Executor

	// WithDisableColors sets NO_COLOR=1, TERM=dumb and related variables.
	WithDisableColors() Executor

	// WithTimeout bounds the next run. The value is a time.ParseDuration string.
	WithTimeout(timeout string) Executor

	// WithInheritEnv passes the parent environment to the child.
	WithInheritEnv() Executor

	// WithStdout sets the passthrough writer for stdout for the next run.
	WithStdout(w io.Writer) Executor

	// WithStderr sets the passthrough writer for stderr for the next run.
	WithStderr(w io.Writer) Executor

	// WithPassthrough streams output to the stdout/stderr writers while
	// still capturing it.
	WithPassthrough() Executor

	// Run executes args[0] with the remaining arguments.
	Run(args ...string) (*Result, error)
}

// Result is the outcome of a command execution.
type Result struct {
	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Combined holds stdout and stderr interleaved in write order
	Combined string

	// ExitCode is the exit status, or -1 if the process never exited normally
	ExitCode int
}

// Option configures global settings on a Command.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.globalEnv[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.globalDir = dir
	}
}

// WithContext returns an Option that sets the base context for every run.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.baseCtx = ctx
	}
}

// WithDisableColors returns an Option that disables color output for every run.
func WithDisableColors() Option {
	return func(c *Command) {
		c.config.globalDisableColors = true
	}
}

// WithTimeout returns an Option that bounds every run.
func WithTimeout(timeout string) Option {
	return func(c *Command) {
		c.config.globalTimeout = timeout
	}
}

// WithInheritEnv returns an Option that passes the parent environment to every run.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.globalInheritEnv = true
	}
}

// WithStdout returns an Option that sets the stdout passthrough writer.
func WithStdout(w io.Writer) Option {
	return func(c *Command) {
		c.stdout = w
	}
}

// WithStderr returns an Option that sets the stderr passthrough writer.
func WithStderr(w io.Writer) Option {
	return func(c *Command) {
		c.stderr = w
	}
}

// WithPassthrough returns an Option that streams output on every run.
func WithPassthrough() Option {
	return func(c *Command) {
		c.config.globalPassthrough = true
	}
}
