package nextbus

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/config"
	"github.com/urfave/cli/v2"
)

type runnerFactory func(ctx context.Context, out io.Writer) (*Runner, error)

func NewApp(cfg *config.Config) *cli.App {
	return newApp(func(ctx context.Context, out io.Writer) (*Runner, error) {
		return NewRunner(ctx, cfg, out)
	})
}

func newApp(newRunner runnerFactory) *cli.App {
	return &cli.App{
		Name:            "nextbus",
		Usage:           "Minutes until the next bus on a Metro Transit route",
		UsageText:       "nextbus ROUTE STOP DIRECTION",
		ArgsUsage:       "ROUTE STOP DIRECTION",
		HideHelpCommand: true,

		Action: func(c *cli.Context) error {
			log.Debug().Strs("args", c.Args().Slice()).Msg("Raw arguments")

			if c.NArg() != 3 {
				return cli.Exit(fmt.Sprintf("expected 3 arguments, got %d\nUsage: %s", c.NArg(), c.App.UsageText), ExitUsage)
			}

			query := Query{
				Route:     c.Args().Get(0),
				Stop:      c.Args().Get(1),
				Direction: c.Args().Get(2),
			}
			log.Debug().Interface("query", query).Msg("Parsed arguments")

			runner, err := newRunner(c.Context, c.App.Writer)
			if err != nil {
				log.Error().Err(err).Msg("Failed to set up")
				return cli.Exit("", ExitFailure)
			}
			defer runner.Close()

			if err := runner.Run(c.Context, query); err != nil {
				return cli.Exit("", ExitCode(err))
			}

			return nil
		},
	}
}
