package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/jmgilman/go/syserr"
	"github.com/jmgilman/go/syserr/internal/render"
)

func (c *CLI) lookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Aliases:   []string{"l"},
		Usage:     "print the description of one or more codes",
		ArgsUsage: "CODE...",
		Description: `Codes may be decimal, 0x-prefixed hex, or negative (HRESULT) values.
Put negative values after "--" so they are not read as flags.
Each code is printed as "<code>: <message>".`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "name",
				Usage: "append the symbolic name of the code in text output",
			},
		},
		Action: c.lookupAction,
	}
}

func (c *CLI) lookupAction(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return NewExitError(ExitUsageError, "lookup requires at least one code", nil)
	}

	codes := make([]syserr.Code, 0, len(args))
	for _, arg := range args {
		code, err := syserr.ParseCode(arg)
		if err != nil {
			return NewExitError(ExitUsageError, "invalid code", err)
		}
		codes = append(codes, code)
	}

	r := c.renderer(c.stdout, render.Options{ShowName: cmd.Bool("name")})
	for _, code := range codes {
		c.logger.Debug("looking up code", "code", code, "hex", code.Hex(), "lang_id", c.langID)
		if err := r.Render(syserr.NewInLanguage(code, c.langID)); err != nil {
			return err
		}
	}

	return nil
}
