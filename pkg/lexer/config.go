package lexer

type (
	// Escape selects how a quoted literal escapes its closing delimiter.
	Escape int

	// QuoteType describes a quoted string or identifier. Prefixes lists the optional,
	// case-insensitive prefixes that may directly precede Open (X'..', N'..', E'..').
	QuoteType struct {
		Open     string
		Close    string
		Prefixes []string
		Escape   Escape
	}

	// Delimiters is an open/close pair, used for block comments.
	Delimiters struct {
		Open  string
		Close string
	}

	// IdentChars lists characters that may appear in bare words besides letters, digits
	// and underscores. Prefix characters may only start a word, Rest characters may
	// appear anywhere after the first character.
	IdentChars struct {
		Prefix string
		Rest   string
	}

	// Config is the lexical description of a SQL dialect. It is plain data: a dialect
	// builds one value, usually at package initialization, and shares it read-only.
	//
	// Reserved lists hold complete phrases ("LEFT OUTER JOIN"); use the phrase package
	// to expand templates. Matching is case-insensitive and a word that appears in more
	// than one list is classified by the first list in this order: commands, binary
	// commands, dependent clauses, logical operators, keywords, function names.
	Config struct {
		ReservedCommands         []string
		ReservedBinaryCommands   []string
		ReservedDependentClauses []string
		ReservedLogicalOperators []string
		ReservedKeywords         []string
		ReservedFunctionNames    []string

		StringTypes       []QuoteType
		IdentTypes        []QuoteType
		LineCommentTypes  []string
		BlockCommentTypes []Delimiters

		// Operators are matched longest first together with the base operators.
		Operators []string

		PositionalPlaceholders   bool
		NumberedPlaceholderTypes []string
		NamedPlaceholderTypes    []string

		OpenParens  []string
		CloseParens []string

		IdentChars IdentChars

		// Preprocess reclassifies tokens after classification. It receives the stream
		// without its EOF token, possibly empty, and must keep every token's text and
		// whitespace so the stream stays lossless.
		Preprocess func([]Token) []Token
	}
)

const (
	// EscapeDouble escapes the closing delimiter by doubling it ('it''s').
	EscapeDouble Escape = iota
	// EscapeBackslash escapes any character with a backslash. Doubling is also accepted.
	EscapeBackslash
)

// baseOperators are recognized by every dialect.
var baseOperators = []string{
	"<>", "<=", ">=", "!=",
	"+", "-", "*", "/", "%", "=", "<", ">", "!", "~", "&", "|", "^", ".", ";", ":",
}

// Quote returns a QuoteType delimited by q on both sides.
func Quote(q string, prefixes ...string) QuoteType {
	return QuoteType{Open: q, Close: q, Prefixes: prefixes}
}

// Quotes returns a QuoteType with distinct open and close delimiters, e.g. [ and ].
func Quotes(open, close string) QuoteType {
	return QuoteType{Open: open, Close: close}
}

// WithEscape returns a copy of q using the given escape convention.
func (q QuoteType) WithEscape(e Escape) QuoteType {
	q.Escape = e
	return q
}
