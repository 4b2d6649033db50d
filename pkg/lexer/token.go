package lexer

import "strings"

// Category classifies a token.
type Category int

const (
	ReservedCommand Category = iota
	ReservedBinaryCommand
	ReservedDependentClause
	ReservedLogicalOperator
	ReservedKeyword
	ReservedFunctionName
	Identifier
	QuotedIdentifier
	String
	Number
	Operator
	Placeholder
	LineComment
	BlockComment
	OpenParen
	CloseParen
	Comma
	EOF
)

var categoryNames = [...]string{
	ReservedCommand:         "RESERVED_COMMAND",
	ReservedBinaryCommand:   "RESERVED_BINARY_COMMAND",
	ReservedDependentClause: "RESERVED_DEPENDENT_CLAUSE",
	ReservedLogicalOperator: "RESERVED_LOGICAL_OPERATOR",
	ReservedKeyword:         "RESERVED_KEYWORD",
	ReservedFunctionName:    "RESERVED_FUNCTION_NAME",
	Identifier:              "IDENTIFIER",
	QuotedIdentifier:        "QUOTED_IDENTIFIER",
	String:                  "STRING",
	Number:                  "NUMBER",
	Operator:                "OPERATOR",
	Placeholder:             "PLACEHOLDER",
	LineComment:             "LINE_COMMENT",
	BlockComment:            "BLOCK_COMMENT",
	OpenParen:               "OPEN_PAREN",
	CloseParen:              "CLOSE_PAREN",
	Comma:                   "COMMA",
	EOF:                     "EOF",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "UNKNOWN"
	}
	return categoryNames[c]
}

// IsReserved reports whether c is one of the reserved word categories.
func (c Category) IsReserved() bool {
	return c <= ReservedFunctionName
}

// IsComment reports whether c is a line or block comment.
func (c Category) IsComment() bool {
	return c == LineComment || c == BlockComment
}

// Token is a classified span of source text. Whitespace holds the source text between
// the previous token and this one, so that Whitespace+Text over a token stream
// reproduces the source.
type Token struct {
	Category   Category
	Text       string
	Offset     int
	Whitespace string
}

// Key returns the upper-cased text with interior whitespace collapsed to single spaces.
// Reserved phrases and keywords are compared by key.
func (t Token) Key() string {
	return normalize(t.Text)
}

// Is reports whether the token has the given category and key.
func (t Token) Is(c Category, key string) bool {
	return t.Category == c && t.Key() == normalize(key)
}

// IsReserved reports whether the token is a reserved word or phrase.
func (t Token) IsReserved() bool {
	return t.Category.IsReserved()
}

// String returns the source text the token was read from, whitespace included.
func (t Token) String() string {
	return t.Whitespace + t.Text
}

// Join concatenates the tokens' whitespace and text. For a stream returned by Tokenize
// the result equals the tokenized source.
func Join(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Whitespace)
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func normalize(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
