package dialect

import (
	"github.com/pseudomuto/sqlformat/pkg/lexer"
	"github.com/pseudomuto/sqlformat/pkg/phrase"
)

// https://mariadb.com/kb/en/sql-statements-structure/
var (
	mariadbCommands = concat(standardCommands, phrase.MustExpand(
		"INSERT [LOW_PRIORITY | DELAYED | HIGH_PRIORITY] [IGNORE] [INTO]",
		"REPLACE [LOW_PRIORITY | DELAYED] [INTO]",
		"ON DUPLICATE KEY UPDATE",
		"DELETE [LOW_PRIORITY] [QUICK] [IGNORE] FROM",
		"UPDATE [LOW_PRIORITY] [IGNORE]",
		"SHOW {TABLES | DATABASES | COLUMNS | INDEX | CREATE TABLE}",
		"DESCRIBE",
		"EXPLAIN",
		"USE",
		"MODIFY [COLUMN]",
		"CHANGE [COLUMN]",
		"LOCK TABLES",
		"UNLOCK TABLES",
	))

	mariadbBinaryCommands = concat(
		standardSetOperations,
		phrase.MustExpand("MINUS [ALL | DISTINCT]"),
		phrase.MustExpand(
			"JOIN",
			"{LEFT | RIGHT} [OUTER] JOIN",
			"{INNER | CROSS} JOIN",
			"NATURAL [INNER] JOIN",
			"NATURAL {LEFT | RIGHT} [OUTER] JOIN",
			"STRAIGHT_JOIN",
		),
	)

	mariadbKeywords = concat(standardKeywords, []string{
		"CHARSET", "DATABASE", "DATABASES", "DELAYED", "DUAL", "ENGINE", "ENUM", "FORCE",
		"FULLTEXT", "HIGH_PRIORITY", "IGNORE", "JSON", "LONGTEXT", "LOW_PRIORITY", "MEDIUMINT",
		"MEDIUMTEXT", "QUICK", "REGEXP", "RLIKE", "SEPARATOR", "SET", "SIGNED", "SPATIAL",
		"SQL_CALC_FOUND_ROWS", "STRAIGHT_JOIN", "TINYINT", "TINYTEXT", "UNSIGNED", "XOR",
		"ZEROFILL",
	}, phrase.MustExpand("ON {DELETE | UPDATE}"))

	mariadbFunctions = concat(standardFunctions, []string{
		"CONCAT_WS", "CURDATE", "CURTIME", "DATE_ADD", "DATE_FORMAT", "DATE_SUB", "DATEDIFF",
		"FIND_IN_SET", "FROM_UNIXTIME", "GROUP_CONCAT", "IFNULL", "JSON_EXTRACT", "JSON_OBJECT",
		"LAST_INSERT_ID", "NOW", "RAND", "SUBSTRING_INDEX", "UNIX_TIMESTAMP", "UUID",
	})
)

func init() {
	Register(&Dialect{
		Name:        "mariadb",
		Aliases:     []string{"mysql"},
		Description: "MariaDB and MySQL",
		Config: &lexer.Config{
			ReservedCommands:         mariadbCommands,
			ReservedBinaryCommands:   mariadbBinaryCommands,
			ReservedDependentClauses: []string{"ON", "WHEN", "THEN", "ELSE", "ELSEIF", "ELSIF"},
			ReservedLogicalOperators: []string{"AND", "OR", "XOR"},
			ReservedKeywords:         mariadbKeywords,
			ReservedFunctionNames:    mariadbFunctions,
			StringTypes: []lexer.QuoteType{
				lexer.Quote("'", "X", "B", "N").WithEscape(lexer.EscapeBackslash),
				lexer.Quote(`"`).WithEscape(lexer.EscapeBackslash),
			},
			IdentTypes:             []lexer.QuoteType{lexer.Quote("`")},
			LineCommentTypes:       []string{"--", "#"},
			Operators:              []string{":=", "<<", ">>", "<=>", "&&", "||", "->", "->>"},
			PositionalPlaceholders: true,
			IdentChars:             lexer.IdentChars{Prefix: "@", Rest: "$"},
			Preprocess:             CommandBeforeParenIsKeyword("SET"),
		},
	})
}
