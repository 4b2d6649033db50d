package cmd

import (
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlformat/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestTokenizeCommand(t *testing.T) {
	expected := "0\tRESERVED_COMMAND\t\"select\"\n" +
		"7\tIDENTIFIER\t\"a\"\n" +
		"8\tEOF\t\"\"\n"

	t.Run("stdin", func(t *testing.T) {
		out, err := runCommand(t, tokenizeCmd(config.Defaults()), "select a")
		require.NoError(t, err)
		require.Equal(t, expected, out)
	})

	t.Run("file", func(t *testing.T) {
		sqlFile := filepath.Join(t.TempDir(), "q.sql")
		writeSQL(t, sqlFile, "select a")

		out, err := runCommand(t, tokenizeCmd(config.Defaults()), "", sqlFile)
		require.NoError(t, err)
		require.Equal(t, expected, out)
	})

	t.Run("dialect flag", func(t *testing.T) {
		out, err := runCommand(t, tokenizeCmd(config.Defaults()), "`a`", "--dialect", "clickhouse")
		require.NoError(t, err)
		require.Equal(t, "0\tQUOTED_IDENTIFIER\t\"`a`\"\n3\tEOF\t\"\"\n", out)
	})

	t.Run("quoted text", func(t *testing.T) {
		out, err := runCommand(t, tokenizeCmd(config.Defaults()), "'it''s'")
		require.NoError(t, err)
		require.Equal(t, "0\tSTRING\t\"'it''s'\"\n7\tEOF\t\"\"\n", out)
	})
}

func TestTokenizeCommand_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		error string
	}{
		{name: "too many paths", args: []string{"a.sql", "b.sql"}, error: "at most one path argument is allowed"},
		{name: "missing file", args: []string{"/nonexistent/q.sql"}, error: "failed to read file"},
		{name: "unknown dialect", args: []string{"--dialect", "cobol"}, error: "unknown dialect"},
		{name: "unterminated comment", stdin: "select /* open", error: "failed to tokenize SQL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, tokenizeCmd(config.Defaults()), tt.stdin, tt.args...)
			require.ErrorContains(t, err, tt.error)
		})
	}
}
