package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlformat/pkg/config"
	"github.com/pseudomuto/sqlformat/pkg/dialect"
	"github.com/urfave/cli/v3"
)

// dialectsCmd lists the registered dialects. The configured dialect is marked with *.
func dialectsCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List the supported SQL dialects",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			current, err := dialect.Get(cfg.Dialect)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			for _, name := range dialect.Names() {
				d, err := dialect.Get(name)
				if err != nil {
					return err
				}

				marker := " "
				if d == current {
					marker = "*"
				}

				line := fmt.Sprintf("%s %-12s %s", marker, d.Name, d.Description)
				if len(d.Aliases) > 0 {
					line += fmt.Sprintf(" (aliases: %s)", strings.Join(d.Aliases, ", "))
				}

				if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
					return errors.Wrap(err, "failed to write dialects")
				}
			}

			return nil
		},
	}
}
