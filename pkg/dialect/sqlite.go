package dialect

import (
	"github.com/pseudomuto/sqlformat/pkg/lexer"
	"github.com/pseudomuto/sqlformat/pkg/phrase"
)

// https://www.sqlite.org/lang.html
var sqliteCommands = concat(standardCommands, phrase.MustExpand(
	"INSERT [OR ABORT | OR FAIL | OR IGNORE | OR REPLACE | OR ROLLBACK] INTO",
	"REPLACE INTO",
	"UPDATE [OR ABORT | OR FAIL | OR IGNORE | OR REPLACE | OR ROLLBACK]",
	"ON CONFLICT",
	"PRAGMA",
	"VACUUM",
	"ATTACH [DATABASE]",
	"DETACH [DATABASE]",
))

func init() {
	Register(&Dialect{
		Name:        "sqlite",
		Description: "SQLite",
		Config: &lexer.Config{
			ReservedCommands: sqliteCommands,
			ReservedBinaryCommands: concat(
				phrase.MustExpand("UNION [ALL]", "EXCEPT", "INTERSECT"),
				standardJoins,
			),
			ReservedDependentClauses: []string{"ON", "WHEN", "THEN", "ELSE"},
			ReservedLogicalOperators: []string{"AND", "OR"},
			ReservedKeywords: concat(
				standardKeywords,
				[]string{"ABORT", "AUTOINCREMENT", "GLOB", "MATCH", "REGEXP", "ROWID", "WITHOUT"},
				// keeps foreign key actions from starting an ON clause
				phrase.MustExpand("ON {DELETE | UPDATE}"),
			),
			ReservedFunctionNames:    concat(standardFunctions, []string{"DATETIME", "GROUP_CONCAT", "IFNULL", "IIF", "INSTR", "JSON", "JSON_EXTRACT", "PRINTF", "RANDOM", "STRFTIME", "TYPEOF"}),
			// X'..' blobs; "" is an identifier.
			StringTypes: []lexer.QuoteType{lexer.Quote("'", "X")},
			IdentTypes: []lexer.QuoteType{
				lexer.Quote(`"`),
				lexer.Quote("`"),
				lexer.Quotes("[", "]"),
			},
			LineCommentTypes:         []string{"--"},
			Operators:                []string{"~", "->", "->>", "||", "<<", ">>", "=="},
			PositionalPlaceholders:   true,
			NumberedPlaceholderTypes: []string{"?"},
			NamedPlaceholderTypes:    []string{":", "@", "$"},
		},
	})
}
