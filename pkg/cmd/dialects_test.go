package cmd

import (
	"strings"
	"testing"

	"github.com/pseudomuto/sqlformat/pkg/config"
	"github.com/pseudomuto/sqlformat/pkg/dialect"
	"github.com/stretchr/testify/require"
)

func TestDialectsCommand(t *testing.T) {
	t.Run("marks the default dialect", func(t *testing.T) {
		out, err := runCommand(t, dialectsCmd(config.Defaults()), "")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, len(dialect.Names()))
		require.Contains(t, lines, "* sql          Standard SQL (aliases: standard, ansi)")
		require.Contains(t, lines, "  postgresql   PostgreSQL (aliases: postgres, pg)")
		require.Contains(t, lines, "  sqlite       SQLite")
	})

	t.Run("marks the configured dialect by alias", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Dialect = "mysql"

		out, err := runCommand(t, dialectsCmd(cfg), "")
		require.NoError(t, err)
		require.Contains(t, out, "* mariadb      MariaDB and MySQL (aliases: mysql)\n")
		require.Equal(t, 1, strings.Count(out, "*"))
	})

	t.Run("unknown configured dialect", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Dialect = "cobol"

		_, err := runCommand(t, dialectsCmd(cfg), "")
		require.ErrorContains(t, err, "unknown dialect: cobol")
	})
}
