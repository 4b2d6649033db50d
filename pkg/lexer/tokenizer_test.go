package lexer_test

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/sqlformat/pkg/lexer"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		ReservedCommands:         []string{"SELECT", "FROM", "WHERE", "GROUP BY", "ORDER BY", "SET"},
		ReservedBinaryCommands:   []string{"JOIN", "LEFT JOIN", "LEFT OUTER JOIN", "UNION", "UNION ALL"},
		ReservedDependentClauses: []string{"ON", "WHEN", "THEN", "ELSE"},
		ReservedLogicalOperators: []string{"AND", "OR"},
		ReservedKeywords:         []string{"AS", "IN", "COUNT", "ON", "SET", "LEFT", "BETWEEN"},
		ReservedFunctionNames:    []string{"NOW"},
		StringTypes:              []QuoteType{Quote("'", "N", "X")},
		IdentTypes:               []QuoteType{Quote(`"`), Quote("`").WithEscape(EscapeBackslash)},
		LineCommentTypes:         []string{"--", "#"},
		Operators:                []string{"::", "||"},
		PositionalPlaceholders:   true,
		NumberedPlaceholderTypes: []string{"$"},
		NamedPlaceholderTypes:    []string{":", "@"},
	}
}

type tok struct {
	cat  Category
	text string
}

func tokenize(t *testing.T, src string) []tok {
	t.Helper()

	tokens, err := Tokenize(src, testConfig())
	require.NoError(t, err)
	require.Equal(t, src, Join(tokens))
	require.Equal(t, EOF, tokens[len(tokens)-1].Category)

	result := make([]tok, 0, len(tokens)-1)
	for _, token := range tokens[:len(tokens)-1] {
		result = append(result, tok{token.Category, token.Text})
	}
	return result
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []tok
	}{
		{
			name: "simple select",
			src:  "SELECT a, b FROM t",
			expected: []tok{
				{ReservedCommand, "SELECT"},
				{Identifier, "a"},
				{Comma, ","},
				{Identifier, "b"},
				{ReservedCommand, "FROM"},
				{Identifier, "t"},
			},
		},
		{
			name: "case insensitive reserved words",
			src:  "select x from t where x = 1 and y = 2",
			expected: []tok{
				{ReservedCommand, "select"},
				{Identifier, "x"},
				{ReservedCommand, "from"},
				{Identifier, "t"},
				{ReservedCommand, "where"},
				{Identifier, "x"},
				{Operator, "="},
				{Number, "1"},
				{ReservedLogicalOperator, "and"},
				{Identifier, "y"},
				{Operator, "="},
				{Number, "2"},
			},
		},
		{
			name: "multi-word phrase across whitespace",
			src:  "a left   outer\njoin b",
			expected: []tok{
				{Identifier, "a"},
				{ReservedBinaryCommand, "left   outer\njoin"},
				{Identifier, "b"},
			},
		},
		{
			name: "backs off to the longest matching phrase",
			src:  "LEFT OUTER x",
			expected: []tok{
				{ReservedKeyword, "LEFT"},
				{Identifier, "OUTER"},
				{Identifier, "x"},
			},
		},
		{
			name: "partial phrase is an identifier",
			src:  "GROUP x",
			expected: []tok{
				{Identifier, "GROUP"},
				{Identifier, "x"},
			},
		},
		{
			name: "comments break phrases",
			src:  "ORDER -- c\nBY",
			expected: []tok{
				{Identifier, "ORDER"},
				{LineComment, "-- c"},
				{Identifier, "BY"},
			},
		},
		{
			name: "command wins over keyword",
			src:  "SET x = 1",
			expected: []tok{
				{ReservedCommand, "SET"},
				{Identifier, "x"},
				{Operator, "="},
				{Number, "1"},
			},
		},
		{
			name: "dependent clause wins over keyword",
			src:  "JOIN b ON a",
			expected: []tok{
				{ReservedBinaryCommand, "JOIN"},
				{Identifier, "b"},
				{ReservedDependentClause, "ON"},
				{Identifier, "a"},
			},
		},
		{
			name: "longest operator",
			src:  "a<>b<=c::int||d",
			expected: []tok{
				{Identifier, "a"},
				{Operator, "<>"},
				{Identifier, "b"},
				{Operator, "<="},
				{Identifier, "c"},
				{Operator, "::"},
				{Identifier, "int"},
				{Operator, "||"},
				{Identifier, "d"},
			},
		},
		{
			name: "strings",
			src:  `'it''s' N'x' x'FF' ''`,
			expected: []tok{
				{String, "'it''s'"},
				{String, "N'x'"},
				{String, "x'FF'"},
				{String, "''"},
			},
		},
		{
			name: "quoted identifiers",
			src:  "\"my col\" `a\\`b` `c``d`",
			expected: []tok{
				{QuotedIdentifier, `"my col"`},
				{QuotedIdentifier, "`a\\`b`"},
				{QuotedIdentifier, "`c``d`"},
			},
		},
		{
			name: "comments",
			src:  "-- one\r\n# two\n/* three\n */x--",
			expected: []tok{
				{LineComment, "-- one"},
				{LineComment, "# two"},
				{BlockComment, "/* three\n */"},
				{Identifier, "x"},
				{LineComment, "--"},
			},
		},
		{
			name: "placeholders",
			src:  "? $1 :name @id :'quoted' $",
			expected: []tok{
				{Placeholder, "?"},
				{Placeholder, "$1"},
				{Placeholder, ":name"},
				{Placeholder, "@id"},
				{Placeholder, ":'quoted'"},
				{Operator, "$"},
			},
		},
		{
			name: "numbers",
			src:  "1 1.5 .5 1e10 2.5E-3 0xFF -7 2x",
			expected: []tok{
				{Number, "1"},
				{Number, "1.5"},
				{Number, ".5"},
				{Number, "1e10"},
				{Number, "2.5E-3"},
				{Number, "0xFF"},
				{Operator, "-"},
				{Number, "7"},
				{Identifier, "2x"},
			},
		},
		{
			name: "function names",
			src:  "COUNT(x) NOW() a IN (1)",
			expected: []tok{
				{ReservedFunctionName, "COUNT"},
				{OpenParen, "("},
				{Identifier, "x"},
				{CloseParen, ")"},
				{ReservedFunctionName, "NOW"},
				{OpenParen, "("},
				{CloseParen, ")"},
				{Identifier, "a"},
				{ReservedKeyword, "IN"},
				{OpenParen, "("},
				{Number, "1"},
				{CloseParen, ")"},
			},
		},
		{
			name: "function name before comment",
			src:  "COUNT/* all */(*)",
			expected: []tok{
				{ReservedFunctionName, "COUNT"},
				{BlockComment, "/* all */"},
				{OpenParen, "("},
				{Operator, "*"},
				{CloseParen, ")"},
			},
		},
		{
			name: "whitespace before paren keeps keyword",
			src:  "COUNT (x) COUNT/* all */ (x) COUNT /* all */(x)",
			expected: []tok{
				{ReservedKeyword, "COUNT"},
				{OpenParen, "("},
				{Identifier, "x"},
				{CloseParen, ")"},
				{ReservedKeyword, "COUNT"},
				{BlockComment, "/* all */"},
				{OpenParen, "("},
				{Identifier, "x"},
				{CloseParen, ")"},
				{ReservedKeyword, "COUNT"},
				{BlockComment, "/* all */"},
				{OpenParen, "("},
				{Identifier, "x"},
				{CloseParen, ")"},
			},
		},
		{
			name: "member names are identifiers",
			src:  "t.select, t.from",
			expected: []tok{
				{Identifier, "t"},
				{Operator, "."},
				{Identifier, "select"},
				{Comma, ","},
				{Identifier, "t"},
				{Operator, "."},
				{Identifier, "from"},
			},
		},
		{
			name: "unknown characters",
			src:  "a \\ b",
			expected: []tok{
				{Identifier, "a"},
				{Operator, "\\"},
				{Identifier, "b"},
			},
		},
		{
			name: "unicode words",
			src:  "SELECT café FROM naïve",
			expected: []tok{
				{ReservedCommand, "SELECT"},
				{Identifier, "café"},
				{ReservedCommand, "FROM"},
				{Identifier, "naïve"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tokenize(t, tt.src))
		})
	}
}

func TestTokenize_PositionsAndWhitespace(t *testing.T) {
	tokens, err := Tokenize("  SELECT\n\ta  ", testConfig())
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	require.Equal(t, Token{Category: ReservedCommand, Text: "SELECT", Offset: 2, Whitespace: "  "}, tokens[0])
	require.Equal(t, Token{Category: Identifier, Text: "a", Offset: 10, Whitespace: "\n\t"}, tokens[1])
	require.Equal(t, Token{Category: EOF, Offset: 13, Whitespace: "  "}, tokens[2])
}

func TestTokenize_Lossless(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t ",
		"SELECT * FROM t WHERE a = 'x' -- trailing",
		"select\n  a,\n  b\nfrom\n  t\n;\n\n",
		"/* c */ SELECT COUNT (*) , x::int FROM \"t\" LEFT  JOIN u ON t.id=u.id",
		"a §± b",
	}

	for _, src := range inputs {
		tokens, err := Tokenize(src, testConfig())
		require.NoError(t, err)
		require.Equal(t, src, Join(tokens))

		for _, token := range tokens[:len(tokens)-1] {
			require.Equal(t, token.Text, src[token.Offset:token.Offset+len(token.Text)])
		}
	}
}

func TestTokenize_Preprocess(t *testing.T) {
	var calls [][]Token

	cfg := testConfig()
	cfg.Preprocess = func(tokens []Token) []Token {
		calls = append(calls, append([]Token(nil), tokens...))
		for i := range tokens {
			if tokens[i].Key() == "X" {
				tokens[i].Category = ReservedKeyword
			}
		}
		return tokens
	}

	tokenizer, err := New(cfg)
	require.NoError(t, err)

	tokens, err := tokenizer.Tokenize("")
	require.NoError(t, err)
	require.Equal(t, []Token{{Category: EOF}}, tokens)
	require.Len(t, calls, 1)
	require.Empty(t, calls[0])

	tokens, err = tokenizer.Tokenize("x y")
	require.NoError(t, err)
	require.Len(t, calls, 2)
	require.Len(t, calls[1], 2, "preprocess never sees EOF")
	require.Equal(t, ReservedKeyword, tokens[0].Category)
	require.Equal(t, Identifier, tokens[1].Category)
	require.Equal(t, EOF, tokens[2].Category)
}

func TestTokenize_Unterminated(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		kind   ErrorKind
		offset int
		line   int
		column int
	}{
		{name: "string", src: "SELECT 'abc", kind: UnterminatedString, offset: 7, line: 1, column: 8},
		{name: "prefixed string", src: "SELECT N'abc''", kind: UnterminatedString, offset: 7, line: 1, column: 8},
		{name: "identifier", src: "SELECT\n  \"abc", kind: UnterminatedIdentifier, offset: 9, line: 2, column: 3},
		{name: "block comment", src: "a\n/* x", kind: UnterminatedComment, offset: 2, line: 2, column: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.src, testConfig())
			require.Error(t, err)
			require.Nil(t, tokens)

			var lexErr *Error
			require.ErrorAs(t, err, &lexErr)
			require.Equal(t, tt.kind, lexErr.Kind)
			require.Equal(t, tt.offset, lexErr.Offset)
			require.Equal(t, tt.line, lexErr.Line)
			require.Equal(t, tt.column, lexErr.Column)

			require.ErrorIs(t, err, ErrUnterminated)
			require.Equal(t, ErrUnterminated, errors.Cause(err))
			require.Contains(t, err.Error(), "unterminated "+tt.kind.String())
		})
	}
}

func TestTokenize_UnbalancedParens(t *testing.T) {
	require.Equal(t, []tok{
		{CloseParen, ")"},
		{OpenParen, "("},
		{OpenParen, "("},
	}, tokenize(t, ") (("))
}

func TestTokenize_CustomParensAndIdentChars(t *testing.T) {
	cfg := testConfig()
	cfg.NamedPlaceholderTypes = nil
	cfg.OpenParens = []string{"(", "["}
	cfg.CloseParens = []string{")", "]"}
	cfg.IdentChars = IdentChars{Prefix: "@", Rest: "$"}

	tokens, err := Tokenize("a[1] @var b$c", cfg)
	require.NoError(t, err)

	var got []tok
	for _, token := range tokens {
		got = append(got, tok{token.Category, token.Text})
	}

	require.Equal(t, []tok{
		{Identifier, "a"},
		{OpenParen, "["},
		{Number, "1"},
		{CloseParen, "]"},
		{Identifier, "@var"},
		{Identifier, "b$c"},
		{EOF, ""},
	}, got)
}

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := New(nil)
		require.EqualError(t, err, "lexer config is required")
	})

	t.Run("invalid quote type", func(t *testing.T) {
		_, err := New(&Config{StringTypes: []QuoteType{{Open: "'"}}})
		require.ErrorContains(t, err, "invalid quote type 0")
	})

	t.Run("invalid block comment", func(t *testing.T) {
		_, err := New(&Config{BlockCommentTypes: []Delimiters{{Open: "{"}}})
		require.ErrorContains(t, err, "invalid block comment type 0")
	})

	t.Run("empty line comment", func(t *testing.T) {
		_, err := New(&Config{LineCommentTypes: []string{""}})
		require.Error(t, err)
	})

	t.Run("must new panics", func(t *testing.T) {
		require.Panics(t, func() { MustNew(nil) })
	})

	t.Run("empty config", func(t *testing.T) {
		tokenizer, err := New(&Config{})
		require.NoError(t, err)

		tokens, err := tokenizer.Tokenize("select (1) /* c */")
		require.NoError(t, err)
		require.Equal(t, Identifier, tokens[0].Category)
		require.Equal(t, OpenParen, tokens[1].Category)
		require.Equal(t, BlockComment, tokens[4].Category)
	})
}

func TestToken(t *testing.T) {
	token := Token{Category: ReservedBinaryCommand, Text: "left  outer\njoin", Whitespace: " "}

	require.Equal(t, "LEFT OUTER JOIN", token.Key())
	require.True(t, token.Is(ReservedBinaryCommand, "left outer join"))
	require.False(t, token.Is(ReservedCommand, "LEFT OUTER JOIN"))
	require.True(t, token.IsReserved())
	require.Equal(t, " left  outer\njoin", token.String())
}

func TestCategory(t *testing.T) {
	require.Equal(t, "RESERVED_COMMAND", ReservedCommand.String())
	require.Equal(t, "RESERVED_FUNCTION_NAME", ReservedFunctionName.String())
	require.Equal(t, "EOF", EOF.String())
	require.Equal(t, "UNKNOWN", Category(99).String())

	require.True(t, ReservedFunctionName.IsReserved())
	require.False(t, Identifier.IsReserved())
	require.True(t, LineComment.IsComment())
	require.True(t, BlockComment.IsComment())
	require.False(t, String.IsComment())
}
