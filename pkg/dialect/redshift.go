package dialect

import (
	"github.com/pseudomuto/sqlformat/pkg/lexer"
	"github.com/pseudomuto/sqlformat/pkg/phrase"
)

// https://docs.aws.amazon.com/redshift/latest/dg/cm_chap_SQLCommandRef.html
var redshiftCommands = concat(standardCommands, phrase.MustExpand(
	"ANALYZE [COMPRESSION]",
	"COPY",
	"UNLOAD",
	"VACUUM",
	"CREATE EXTERNAL {SCHEMA | TABLE}",
	"CREATE [MATERIALIZED] VIEW",
	"SHOW {DATABASES | EXTERNAL TABLE | MODEL | PROCEDURE | TABLE | VIEW}",
	"MODIFY",
	"SET SCHEMA",
))

func init() {
	Register(&Dialect{
		Name:        "redshift",
		Description: "Amazon Redshift",
		Config: &lexer.Config{
			ReservedCommands:         redshiftCommands,
			ReservedBinaryCommands:   concat(standardSetOperations, phrase.MustExpand("MINUS"), standardJoins),
			ReservedDependentClauses: []string{"ON", "WHEN", "THEN", "ELSE"},
			ReservedLogicalOperators: []string{"AND", "OR"},
			ReservedKeywords: concat(standardKeywords, []string{
				"DISTKEY", "DISTSTYLE", "ENCODE", "IDENTITY", "INTERLEAVED", "SORTKEY", "SUPER",
			}),
			ReservedFunctionNames: concat(standardFunctions, phrase.MustExpand(
				"APPROXIMATE PERCENTILE_DISC", "CONVERT_TIMEZONE", "DATEADD", "DATEDIFF",
				"DATE_TRUNC", "GETDATE", "LISTAGG", "MEDIAN", "NVL", "NVL2", "SYSDATE",
			)),
			StringTypes:            []lexer.QuoteType{lexer.Quote("'")},
			IdentTypes:             []lexer.QuoteType{lexer.Quote(`"`)},
			LineCommentTypes:       []string{"--"},
			Operators:              []string{"|/", "||/", "<<", ">>", "||"},
			PositionalPlaceholders: true,
			NamedPlaceholderTypes:  []string{"@", "#", "$"},
		},
	})
}
