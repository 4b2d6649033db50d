package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pseudomuto/sqlformat/pkg/config"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Level      *slog.LevelVar
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the sqlformat CLI application with the given arguments.
//
// Global Flags:
//   - --config, -c: Configuration file, replacing the one found in the working directory
//   - --verbose, -v: Enable debug logging
//
// The application is started from an fx start hook and shuts the fx app down with the
// command's exit code once it returns.
func Run(p Params) {
	// -v is --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Root().Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Root().Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Root().Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "sqlformat",
		Usage: "A configurable SQL pretty-printer",
		Description: `sqlformat re-indents SQL according to its clause structure. It works on
the token stream of a dialect rather than a full parse, so incomplete or invalid SQL
is formatted on a best-effort basis.`,
		Version:  p.Version.Version,
		Flags:    globalFlags(),
		Before:   setup(p.Config, p.Level),
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the sqlformat config file",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable debug logging",
		},
	}
}

// setup applies the global flags. An explicit --config replaces the contents of cfg so
// that every command sees the same configuration.
func setup(cfg *config.Config, level *slog.LevelVar) cli.BeforeFunc {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if cmd.Bool("verbose") {
			level.Set(slog.LevelDebug)
		}

		path := cmd.String("config")
		if path == "" {
			return ctx, nil
		}

		loaded, err := config.LoadConfigFile(path)
		if err != nil {
			return ctx, err
		}

		slog.Debug("Loaded config", "path", path, "dialect", loaded.Dialect)
		*cfg = *loaded
		return ctx, nil
	}
}
