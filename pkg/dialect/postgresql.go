package dialect

import (
	"github.com/pseudomuto/sqlformat/pkg/lexer"
	"github.com/pseudomuto/sqlformat/pkg/phrase"
)

// https://www.postgresql.org/docs/current/sql-commands.html
var (
	postgresCommands = concat(standardCommands, phrase.MustExpand(
		"ON CONFLICT",
		"DO {NOTHING | UPDATE}",
		"CREATE [OR REPLACE] FUNCTION",
		"CREATE [MATERIALIZED] VIEW",
		"CREATE SCHEMA [IF NOT EXISTS]",
		"CREATE EXTENSION [IF NOT EXISTS]",
		"REFRESH MATERIALIZED VIEW",
		"COPY",
		"GRANT",
		"REVOKE",
		"SHOW",
		"VACUUM",
		"ANALYZE",
	))

	postgresKeywords = concat(standardKeywords, []string{
		"BYTEA", "CONFLICT", "CONCURRENTLY", "DO", "JSONB", "MATERIALIZED", "NOTHING",
		"SERIAL", "BIGSERIAL", "SIMILAR", "UUID", "VARIADIC",
	})

	postgresFunctions = concat(standardFunctions, []string{
		"ARRAY_AGG", "DATE_PART", "DATE_TRUNC", "GENERATE_SERIES", "JSON_AGG", "JSONB_AGG",
		"JSONB_BUILD_OBJECT", "NOW", "STRING_AGG", "TO_CHAR", "TO_TIMESTAMP", "UNNEST",
	})
)

func init() {
	Register(&Dialect{
		Name:        "postgresql",
		Aliases:     []string{"postgres", "pg"},
		Description: "PostgreSQL",
		Config: &lexer.Config{
			ReservedCommands:         postgresCommands,
			ReservedBinaryCommands:   concat(standardSetOperations, standardJoins),
			ReservedDependentClauses: []string{"ON", "WHEN", "THEN", "ELSE"},
			ReservedLogicalOperators: []string{"AND", "OR"},
			ReservedKeywords:         postgresKeywords,
			ReservedFunctionNames:    postgresFunctions,
			StringTypes: []lexer.QuoteType{
				lexer.Quote("'", "B", "X", "U&"),
				lexer.Quote("'", "E").WithEscape(lexer.EscapeBackslash),
				lexer.Quote("$$"),
			},
			IdentTypes:       []lexer.QuoteType{lexer.Quote(`"`, "U&")},
			LineCommentTypes: []string{"--"},
			Operators: []string{
				"::", "||", "->", "->>", "#>", "#>>", "@>", "<@", "?|", "?&", "&&",
				"~*", "!~", "!~*", "<<", ">>", "@@",
			},
			NumberedPlaceholderTypes: []string{"$"},
			OpenParens:               []string{"(", "["},
			CloseParens:              []string{")", "]"},
			IdentChars:               lexer.IdentChars{Rest: "$"},
		},
	})
}
