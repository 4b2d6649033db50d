package dialect

import (
	"github.com/pseudomuto/sqlformat/pkg/lexer"
	"github.com/pseudomuto/sqlformat/pkg/phrase"
)

// Word lists shared by the built-in dialects.
var (
	standardCommands = phrase.MustExpand(
		// queries
		"WITH [RECURSIVE]",
		"SELECT [ALL | DISTINCT]",
		"FROM",
		"WHERE",
		"GROUP BY",
		"HAVING",
		"WINDOW",
		"PARTITION BY",
		"ORDER BY",
		"LIMIT",
		"OFFSET",
		"FETCH {FIRST | NEXT}",
		// data manipulation
		"INSERT INTO",
		"VALUES",
		"UPDATE",
		"SET",
		"DELETE FROM",
		"MERGE INTO",
		"WHEN [NOT] MATCHED [THEN]",
		"RETURNING",
		// data definition
		"CREATE [OR REPLACE] [TEMPORARY] {TABLE | VIEW}",
		"CREATE [UNIQUE] INDEX",
		"ALTER TABLE",
		"ALTER COLUMN",
		"ADD [COLUMN]",
		"DROP [COLUMN]",
		"DROP {TABLE | VIEW | INDEX} [IF EXISTS]",
		"TRUNCATE [TABLE]",
		"RENAME {TO | COLUMN}",
		// transactions
		"BEGIN",
		"START TRANSACTION",
		"COMMIT",
		"ROLLBACK",
	)

	standardSetOperations = phrase.MustExpand(
		"UNION [ALL | DISTINCT]",
		"EXCEPT [ALL | DISTINCT]",
		"INTERSECT [ALL | DISTINCT]",
	)

	standardJoins = phrase.MustExpand(
		"JOIN",
		"{LEFT | RIGHT | FULL} [OUTER] JOIN",
		"{INNER | CROSS} JOIN",
		"NATURAL [INNER] JOIN",
		"NATURAL {LEFT | RIGHT | FULL} [OUTER] JOIN",
	)

	standardKeywords = []string{
		"ALL", "AND", "ANY", "ARRAY", "AS", "ASC", "AUTO_INCREMENT", "BETWEEN", "BIGINT",
		"BINARY", "BOOLEAN", "BY", "CASCADE", "CASE", "CAST", "CHAR", "CHARACTER", "CHECK",
		"COLLATE", "COLUMN", "CONSTRAINT", "CROSS", "CURRENT", "DATE", "DECIMAL", "DEFAULT",
		"DESC", "DISTINCT", "DOUBLE", "ELSE", "END", "ESCAPE", "EXISTS", "FALSE", "FILTER",
		"FIRST", "FLOAT", "FOLLOWING", "FOR", "FOREIGN", "FULL", "IF", "ILIKE", "IN", "INDEX",
		"INNER", "INT", "INTEGER", "INTERVAL", "INTO", "IS", "KEY", "LAST", "LATERAL", "LEFT",
		"LIKE", "NOT", "NULL", "NULLS", "NUMERIC", "ON", "ONLY", "OR", "OUTER", "OVER",
		"PARTITION", "PRECEDING", "PRIMARY", "RANGE", "REAL", "REFERENCES", "RESTRICT", "RIGHT",
		"ROW", "ROWS", "SMALLINT", "SOME", "TABLE", "TEMPORARY", "TEXT", "THEN", "TIME",
		"TIMESTAMP", "TO", "TRUE", "UNBOUNDED", "UNIQUE", "UNKNOWN", "USING", "VARCHAR", "VIEW",
		"WHEN", "WITHIN", "WITHOUT", "ZONE",
	}

	standardFunctions = []string{
		"ABS", "AVG", "CEIL", "CEILING", "CHAR_LENGTH", "COALESCE", "CONCAT", "COUNT",
		"CUME_DIST", "CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER",
		"DENSE_RANK", "EXP", "EXTRACT", "FIRST_VALUE", "FLOOR", "GREATEST", "LAG", "LAST_VALUE",
		"LEAD", "LEAST", "LENGTH", "LN", "LOWER", "LTRIM", "MAX", "MIN", "MOD", "NTH_VALUE",
		"NTILE", "NULLIF", "OCTET_LENGTH", "PERCENT_RANK", "POSITION", "POWER", "RANK",
		"REPLACE", "ROUND", "ROW_NUMBER", "RTRIM", "SQRT", "SUBSTRING", "SUM", "TRIM", "UPPER",
	}
)

func init() {
	Register(&Dialect{
		Name:        "sql",
		Aliases:     []string{"standard", "ansi"},
		Description: "Standard SQL",
		Config: &lexer.Config{
			ReservedCommands:         standardCommands,
			ReservedBinaryCommands:   concat(standardSetOperations, standardJoins),
			ReservedDependentClauses: []string{"ON", "WHEN", "THEN", "ELSE"},
			ReservedLogicalOperators: []string{"AND", "OR"},
			ReservedKeywords:         standardKeywords,
			ReservedFunctionNames:    standardFunctions,
			StringTypes:              []lexer.QuoteType{lexer.Quote("'", "N", "X", "B")},
			IdentTypes:               []lexer.QuoteType{lexer.Quote(`"`)},
			LineCommentTypes:         []string{"--"},
			Operators:                []string{"||"},
			PositionalPlaceholders:   true,
		},
	})
}
