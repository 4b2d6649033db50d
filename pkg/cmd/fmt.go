package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/pseudomuto/sqlformat/pkg/config"
	"github.com/pseudomuto/sqlformat/pkg/consts"
	"github.com/pseudomuto/sqlformat/pkg/format"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const stdinPath = "-"

type (
	// fmtMode is the set of output flags given to fmt.
	fmtMode struct {
		write bool
		list  bool
		diff  bool
		check bool
	}

	// source is a single input and its formatted result.
	source struct {
		path      string
		perm      fs.FileMode
		original  string
		formatted string
	}
)

func (m fmtMode) printsFormatted() bool {
	return !m.write && !m.list && !m.diff && !m.check
}

func (s *source) name() string {
	if s.path == stdinPath {
		return "<stdin>"
	}
	return s.path
}

func (s *source) changed() bool {
	return s.original != s.formatted
}

// fmtCmd creates a CLI command for formatting SQL files.
// This command provides gofmt-like functionality for SQL files, allowing users to
// format standard input, individual files or entire directory trees.
//
// Path handling:
//   - No path or "-": Read SQL from standard input
//   - File paths: Format the specified file directly
//   - Directory paths: Recursively find and format all .sql files
//
// Flags:
//   - -w: Write formatted results back to source files instead of stdout
//   - -l: List files whose formatting differs
//   - -d: Print a unified diff of the changes
//   - --check: Like -l, but fail when any file needs formatting
//   - --dialect, --indent, --tabs, --line-width, --keyword-case: Override the config
//
// Examples:
//
//	# Format a query from stdin
//	echo "select a from t" | sqlformat fmt
//
//	# Format all SQL files in a directory tree in-place
//	sqlformat fmt -w db/
//
//	# Fail in CI when anything is unformatted
//	sqlformat fmt --check db/
func fmtCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "[path...]",
		Flags: append(formatFlags(),
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "list files whose formatting differs",
			},
			&cli.BoolFlag{
				Name:    "diff",
				Aliases: []string{"d"},
				Usage:   "display diffs instead of rewriting files",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "exit with an error if any file is not formatted",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			formatter, err := commandFormatter(cfg, cmd)
			if err != nil {
				return err
			}

			mode := fmtMode{
				write: cmd.Bool("write"),
				list:  cmd.Bool("list"),
				diff:  cmd.Bool("diff"),
				check: cmd.Bool("check"),
			}

			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				paths = []string{stdinPath}
			}

			sources, err := collectSources(paths)
			if err != nil {
				return err
			}

			for _, src := range sources {
				if src.path == stdinPath && mode.write {
					return errors.New("cannot use -w with standard input")
				}
			}

			if err := formatSources(ctx, formatter, sources, cmd.Root().Reader); err != nil {
				return err
			}

			return report(cmd.Root().Writer, sources, mode)
		},
	}
}

// formatFlags are the flags that override the formatting configuration.
func formatFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "dialect",
			Usage: "the SQL dialect of the input",
		},
		&cli.IntFlag{
			Name:  "indent",
			Usage: "number of spaces per indent level",
		},
		&cli.BoolFlag{
			Name:  "tabs",
			Usage: "indent with tabs",
		},
		&cli.IntFlag{
			Name:  "line-width",
			Usage: "preferred maximum line width, 0 for unlimited",
		},
		&cli.StringFlag{
			Name:  "keyword-case",
			Usage: "case of reserved words: preserve, upper or lower",
		},
	}
}

// commandFormatter builds a formatter from cfg with any flags set on cmd applied.
func commandFormatter(cfg *config.Config, cmd *cli.Command) (*format.Formatter, error) {
	settings := *cfg
	if cmd.IsSet("dialect") {
		settings.Dialect = cmd.String("dialect")
	}
	if cmd.IsSet("indent") {
		settings.IndentSize = cmd.Int("indent")
	}
	if cmd.IsSet("tabs") {
		settings.UseTabs = cmd.Bool("tabs")
	}
	if cmd.IsSet("line-width") {
		settings.LineWidth = cmd.Int("line-width")
	}
	if cmd.IsSet("keyword-case") {
		settings.KeywordCase = cmd.String("keyword-case")
	}

	return settings.GetFormatter()
}

// collectSources expands directories into the .sql files below them. Sources keep the
// order of paths and the lexical order of each directory walk.
func collectSources(paths []string) ([]*source, error) {
	var sources []*source

	for _, path := range paths {
		if path == stdinPath {
			sources = append(sources, &source{path: stdinPath})
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", path)
		}

		if !info.IsDir() {
			sources = append(sources, &source{path: path, perm: info.Mode().Perm()})
			continue
		}

		found, err := sqlFiles(path)
		if err != nil {
			return nil, err
		}

		if len(found) == 0 {
			return nil, errors.Errorf("no SQL files found in directory: %s", path)
		}

		sources = append(sources, found...)
	}

	return sources, nil
}

func sqlFiles(dir string) ([]*source, error) {
	var sources []*source

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), consts.SQLExtension) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		sources = append(sources, &source{path: path, perm: info.Mode().Perm()})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	return sources, nil
}

// formatSources reads and formats every source concurrently. The formatter's tokenizer
// is shared by all goroutines.
func formatSources(ctx context.Context, f *format.Formatter, sources []*source, stdin io.Reader) error {
	for _, src := range sources {
		if src.path != stdinPath {
			continue
		}

		if stdin == nil {
			stdin = os.Stdin
		}

		data, err := io.ReadAll(stdin)
		if err != nil {
			return errors.Wrap(err, "failed to read standard input")
		}

		src.original = string(data)
		break
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if src.path != stdinPath {
				data, err := os.ReadFile(src.path)
				if err != nil {
					return errors.Wrapf(err, "failed to read file: %s", src.path)
				}
				src.original = string(data)
			}

			out, err := f.String(src.original)
			if err != nil {
				return errors.Wrapf(err, "failed to format file: %s", src.name())
			}

			if out != "" {
				out += "\n"
			}

			src.formatted = out
			slog.Debug("Formatted file", "path", src.name(), "changed", src.changed())
			return nil
		})
	}

	return g.Wait()
}

func report(w io.Writer, sources []*source, mode fmtMode) error {
	unformatted := 0

	for _, src := range sources {
		if mode.printsFormatted() {
			if _, err := io.WriteString(w, src.formatted); err != nil {
				return errors.Wrap(err, "failed to write formatted content to output")
			}
			continue
		}

		if !src.changed() {
			continue
		}
		unformatted++

		if mode.list || mode.check {
			fmt.Fprintln(w, src.name())
		}

		if mode.diff {
			if err := writeDiff(w, src); err != nil {
				return err
			}
		}

		if mode.write {
			if err := os.WriteFile(src.path, []byte(src.formatted), src.perm); err != nil {
				return errors.Wrapf(err, "failed to write formatted content to file: %s", src.path)
			}
			slog.Debug("Rewrote file", "path", src.path)
		}
	}

	if mode.check && unformatted > 0 {
		return errors.Errorf("%d file(s) not formatted", unformatted)
	}

	return nil
}

func writeDiff(w io.Writer, src *source) error {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        diffLines(src.original),
		B:        diffLines(src.formatted),
		FromFile: src.name() + ".orig",
		ToFile:   src.name(),
		Context:  3,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to diff file: %s", src.name())
	}

	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	hunk := color.New(color.FgCyan)

	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			_, err = fmt.Fprintln(w, line)
		case strings.HasPrefix(line, "@@"):
			_, err = hunk.Fprintln(w, line)
		case strings.HasPrefix(line, "+"):
			_, err = added.Fprintln(w, line)
		case strings.HasPrefix(line, "-"):
			_, err = removed.Fprintln(w, line)
		default:
			_, err = fmt.Fprintln(w, line)
		}

		if err != nil {
			return errors.Wrap(err, "failed to write diff")
		}
	}

	return nil
}

// diffLines splits s into newline terminated lines. A missing final newline is marked
// the way diff(1) does so that it shows up as a change.
func diffLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := difflib.SplitLines(strings.TrimSuffix(s, "\n"))
	if !strings.HasSuffix(s, "\n") {
		lines[len(lines)-1] += "\\ No newline at end of file\n"
	}
	return lines
}
