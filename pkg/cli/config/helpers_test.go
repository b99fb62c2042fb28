package config_test

import (
	"context"

	"github.com/urfave/cli/v3"
)

func newFlagApp(flags []cli.Flag) *cli.Command {
	return &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
}
