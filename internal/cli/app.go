// Package cli implements the syserr command-line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/jmgilman/go/syserr/exec"
	"github.com/jmgilman/go/syserr/internal/config"
	"github.com/jmgilman/go/syserr/internal/locale"
	"github.com/jmgilman/go/syserr/internal/render"
)

// Version is the reported binary version, set at build time.
var Version = "dev"

// CLI wires the command tree to its output streams and executor.
type CLI struct {
	app      *cli.Command
	stdout   io.Writer
	stderr   io.Writer
	executor exec.Executor

	// Populated by the root Before hook.
	cfg    config.Config
	langID uint32
	logger *slog.Logger
}

// NewCLI creates the syserr command tree. Output goes to stdout and
// stderr; the run command executes programs through executor.
func NewCLI(stdout, stderr io.Writer, executor exec.Executor) *CLI {
	c := &CLI{
		stdout:   stdout,
		stderr:   stderr,
		executor: executor,
		cfg:      config.Default(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c.app = &cli.Command{
		Name:      "syserr",
		Usage:     "Describe native platform error codes",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Suggest:   true,
		Description: `Resolves Win32 and errno codes to the platform's own descriptions.

EXAMPLES:
  syserr lookup 5                  # describe a code
  syserr lookup 0x80070005 --name  # hex and HRESULT forms are accepted
  syserr run -- make install       # explain why a command failed`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the settings file",
				Sources: cli.EnvVars("SYSERR_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "output format: text, json",
				Value:   config.FormatText,
				Sources: cli.EnvVars("SYSERR_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "lang",
				Usage:   "message language as a BCP 47 tag (Windows only)",
				Sources: cli.EnvVars("SYSERR_LANG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level: debug, info, warn, error",
				Value:   "warn",
				Sources: cli.EnvVars("SYSERR_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "color output mode: auto, always, never",
				Value: config.ColorAuto,
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable color output",
			},
		},
		Before: c.before,
		Commands: []*cli.Command{
			c.lookupCommand(),
			c.runCommand(),
		},
	}

	return c
}

// Run executes the CLI with the given arguments (including the program name).
func (c *CLI) Run(ctx context.Context, args []string) error {
	return c.app.Run(ctx, args)
}

// before resolves settings with precedence flag > environment > file > defaults.
// Help output and a bare invocation never read settings, so a broken
// settings file cannot hide the usage text.
func (c *CLI) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if sub := cmd.Command(cmd.Args().First()); sub == nil || sub.Name == "help" {
		return ctx, nil
	}

	path, explicit := config.DefaultPath(), false
	if cmd.IsSet("config") {
		path, explicit = cmd.String("config"), true
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return ctx, NewExitError(ExitConfigError, "failed to load configuration", err)
	}

	if cmd.IsSet("format") {
		cfg.Format = cmd.String("format")
	}
	if cmd.IsSet("lang") {
		cfg.Language = cmd.String("lang")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("color") {
		cfg.Color = cmd.String("color")
	}
	if cmd.Bool("no-color") {
		cfg.Color = config.ColorNever
	}

	if err := cfg.Validate(); err != nil {
		return ctx, NewExitError(exitCodeFor(cmd, "format", "log-level", "color"), "invalid settings", err)
	}

	langID, err := locale.LangID(cfg.Language)
	if err != nil {
		return ctx, NewExitError(exitCodeFor(cmd, "lang"), "invalid language", err)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	c.cfg = cfg
	c.langID = langID
	c.logger = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))
	c.logger.Debug("settings resolved",
		"config", path,
		"format", cfg.Format,
		"language", cfg.Language,
		"color", cfg.Color,
	)

	return ctx, nil
}

// exitCodeFor reports a usage error when any of the named flags was given
// on the command line or through the environment, and a configuration
// error when the offending value came from the settings file.
func exitCodeFor(cmd *cli.Command, flags ...string) int {
	for _, name := range flags {
		if cmd.IsSet(name) {
			return ExitUsageError
		}
	}
	return ExitConfigError
}

// renderer builds a Renderer for w using the resolved settings.
func (c *CLI) renderer(w io.Writer, opts render.Options) *render.Renderer {
	opts.Format = c.cfg.Format
	opts.Color = render.UseColor(c.cfg.Color, w)
	return render.New(w, opts)
}

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneralError
}
