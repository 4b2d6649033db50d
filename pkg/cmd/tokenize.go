package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlformat/pkg/config"
	"github.com/pseudomuto/sqlformat/pkg/dialect"
	"github.com/urfave/cli/v3"
)

// tokenizeCmd prints the token stream of a file (or stdin) as the formatter sees it,
// one token per line: offset, category and quoted text. It's mostly useful when
// working on dialect definitions.
//
// Examples:
//
//	echo "select a::int" | sqlformat tokenize --dialect postgresql
//	sqlformat tokenize query.sql
func tokenizeCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "tokenize",
		Usage:     "Print the tokens of a SQL file",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dialect",
				Usage: "the SQL dialect of the input",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.New("at most one path argument is allowed")
			}

			name := cfg.Dialect
			if cmd.IsSet("dialect") {
				name = cmd.String("dialect")
			}

			d, err := dialect.Get(name)
			if err != nil {
				return err
			}

			sql, err := readInput(cmd.Args().First(), cmd.Root().Reader)
			if err != nil {
				return err
			}

			tokens, err := d.Tokenizer().Tokenize(sql)
			if err != nil {
				return errors.Wrap(err, "failed to tokenize SQL")
			}

			w := cmd.Root().Writer
			for _, tok := range tokens {
				if _, err := fmt.Fprintf(w, "%d\t%s\t%q\n", tok.Offset, tok.Category, tok.Text); err != nil {
					return errors.Wrap(err, "failed to write tokens")
				}
			}

			return nil
		},
	}
}

// readInput returns the contents of path, or of stdin when path is empty or "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path != "" && path != stdinPath {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read file: %s", path)
		}
		return string(data), nil
	}

	if stdin == nil {
		stdin = os.Stdin
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "failed to read standard input")
	}
	return string(data), nil
}
