package dialect

import (
	"github.com/pseudomuto/sqlformat/pkg/lexer"
	"github.com/pseudomuto/sqlformat/pkg/phrase"
)

// https://clickhouse.com/docs/en/sql-reference/statements
var clickhouseCommands = concat(standardCommands, phrase.MustExpand(
	"CREATE [OR REPLACE] {DATABASE | DICTIONARY} [IF NOT EXISTS]",
	"CREATE [MATERIALIZED] VIEW [IF NOT EXISTS]",
	"{ATTACH | DETACH} {TABLE | VIEW | DICTIONARY | DATABASE}",
	"ALTER DATABASE",
	"ENGINE",
	"PRIMARY KEY",
	"SAMPLE BY",
	"TTL",
	"SETTINGS",
	"FORMAT",
	"PREWHERE",
	"ARRAY JOIN",
	"OPTIMIZE TABLE",
	"SYSTEM",
))

func init() {
	Register(&Dialect{
		Name:        "clickhouse",
		Description: "ClickHouse",
		Config: &lexer.Config{
			ReservedCommands: clickhouseCommands,
			ReservedBinaryCommands: concat(standardSetOperations, phrase.MustExpand(
				"[GLOBAL] [ANY | ALL | ASOF] {LEFT | RIGHT | FULL} [OUTER] JOIN",
				"[GLOBAL] [ANY | ALL | ASOF] [INNER] JOIN",
				"{LEFT | RIGHT} {SEMI | ANTI} JOIN",
				"CROSS JOIN",
			)),
			ReservedDependentClauses: []string{"ON", "WHEN", "THEN", "ELSE"},
			ReservedLogicalOperators: []string{"AND", "OR"},
			ReservedKeywords: concat(standardKeywords, []string{
				"CLUSTER", "CODEC", "FINAL", "GLOBAL", "ILIKE", "LowCardinality", "MATERIALIZED",
				"Nullable", "POPULATE", "SYNC",
			}),
			ReservedFunctionNames: concat(standardFunctions, []string{
				"any", "argMax", "argMin", "arrayJoin", "countIf", "groupArray", "now", "sumIf",
				"toDate", "toDateTime", "toStartOfDay", "toYYYYMM", "uniq", "uniqExact",
			}),
			StringTypes: []lexer.QuoteType{lexer.Quote("'").WithEscape(lexer.EscapeBackslash)},
			IdentTypes: []lexer.QuoteType{
				lexer.Quote("`").WithEscape(lexer.EscapeBackslash),
				lexer.Quote(`"`),
			},
			LineCommentTypes: []string{"--", "#"},
			Operators:        []string{"->", "||", "=="},
			OpenParens:       []string{"(", "["},
			CloseParens:      []string{")", "]"},
		},
	})
}
