package lexer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Tokenizer is a compiled Config. It holds no per-call state and may be shared by
// concurrent callers.
type Tokenizer struct {
	cfg         Config
	phrases     map[string]Category
	maxWords    int
	operators   []string
	openParens  []string
	closeParens []string
	blocks      []Delimiters
}

// New compiles cfg into a Tokenizer.
func New(cfg *Config) (*Tokenizer, error) {
	if cfg == nil {
		return nil, errors.New("lexer config is required")
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	t := &Tokenizer{
		cfg:         *cfg,
		phrases:     make(map[string]Category),
		openParens:  orDefault(cfg.OpenParens, "("),
		closeParens: orDefault(cfg.CloseParens, ")"),
		blocks:      cfg.BlockCommentTypes,
	}

	if len(t.blocks) == 0 {
		t.blocks = []Delimiters{{Open: "/*", Close: "*/"}}
	}

	// Earlier lists win when a phrase appears in more than one of them.
	lists := []struct {
		category Category
		phrases  []string
	}{
		{ReservedCommand, cfg.ReservedCommands},
		{ReservedBinaryCommand, cfg.ReservedBinaryCommands},
		{ReservedDependentClause, cfg.ReservedDependentClauses},
		{ReservedLogicalOperator, cfg.ReservedLogicalOperators},
		{ReservedKeyword, cfg.ReservedKeywords},
		{ReservedFunctionName, cfg.ReservedFunctionNames},
	}
	for _, list := range lists {
		for _, p := range list.phrases {
			key := normalize(p)
			if key == "" {
				continue
			}
			if _, ok := t.phrases[key]; !ok {
				t.phrases[key] = list.category
			}
			t.maxWords = max(t.maxWords, strings.Count(key, " ")+1)
		}
	}

	seen := make(map[string]bool)
	for _, op := range append(append([]string{}, baseOperators...), cfg.Operators...) {
		if op != "" && !seen[op] {
			seen[op] = true
			t.operators = append(t.operators, op)
		}
	}
	sort.SliceStable(t.operators, func(i, j int) bool {
		return len(t.operators[i]) > len(t.operators[j])
	})

	return t, nil
}

// MustNew is like New but panics on an invalid config.
func MustNew(cfg *Config) *Tokenizer {
	t, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// Tokenize compiles cfg and tokenizes src with it. Callers tokenizing more than one
// input should compile the config once with New.
func Tokenize(src string, cfg *Config) ([]Token, error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return t.Tokenize(src)
}

// Tokenize splits src into classified tokens. The returned stream always ends with an
// EOF token holding any trailing whitespace. If src ends inside a string, quoted
// identifier or block comment, no tokens are returned and the error is an *Error.
func (t *Tokenizer) Tokenize(src string) ([]Token, error) {
	s := &scanner{Tokenizer: t, src: src, tokens: []Token{}}

	for {
		start := s.pos
		s.skipWhitespace()
		ws := src[start:s.pos]

		if s.pos >= len(src) {
			tokens := markFunctionNames(s.tokens)
			if t.cfg.Preprocess != nil {
				tokens = t.cfg.Preprocess(tokens)
			}
			return append(tokens, Token{Category: EOF, Offset: s.pos, Whitespace: ws}), nil
		}

		tok, err := s.next()
		if err != nil {
			return nil, err
		}

		tok.Whitespace = ws
		s.tokens = append(s.tokens, tok)
	}
}

func validate(cfg *Config) error {
	for i, qt := range append(append([]QuoteType{}, cfg.StringTypes...), cfg.IdentTypes...) {
		if qt.Open == "" || qt.Close == "" {
			return errors.Errorf("invalid quote type %d: open and close delimiters are required", i)
		}
	}

	for i, d := range cfg.BlockCommentTypes {
		if d.Open == "" || d.Close == "" {
			return errors.Errorf("invalid block comment type %d: open and close delimiters are required", i)
		}
	}

	for _, marker := range cfg.LineCommentTypes {
		if marker == "" {
			return errors.New("line comment markers must not be empty")
		}
	}

	return nil
}

// markFunctionNames turns a keyword directly followed by an open paren, ignoring
// comments, into a function name. Any whitespace between the keyword and the paren
// keeps it a keyword.
func markFunctionNames(tokens []Token) []Token {
	for i := range tokens {
		if tokens[i].Category != ReservedKeyword {
			continue
		}

		j := i + 1
		for j < len(tokens) && tokens[j].Whitespace == "" && tokens[j].Category.IsComment() {
			j++
		}

		if j < len(tokens) && tokens[j].Whitespace == "" && tokens[j].Category == OpenParen {
			tokens[i].Category = ReservedFunctionName
		}
	}
	return tokens
}

func orDefault(values []string, def string) []string {
	if len(values) == 0 {
		return []string{def}
	}
	return values
}

// scanner holds the state of one Tokenize call.
type scanner struct {
	*Tokenizer
	src    string
	pos    int
	tokens []Token
}

func (s *scanner) skipWhitespace() {
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += size
	}
}

func (s *scanner) emit(c Category, end int) Token {
	tok := Token{Category: c, Text: s.src[s.pos:end], Offset: s.pos}
	s.pos = end
	return tok
}

func (s *scanner) emitOrFail(c Category, end int, err error) (Token, error) {
	if err != nil {
		return Token{}, err
	}
	return s.emit(c, end), nil
}

// next scans the token starting at s.pos. Rules are tried in priority order.
func (s *scanner) next() (Token, error) {
	if end, err := s.quoted(s.cfg.StringTypes, UnterminatedString); err != nil || end > 0 {
		return s.emitOrFail(String, end, err)
	}

	if end, err := s.quoted(s.cfg.IdentTypes, UnterminatedIdentifier); err != nil || end > 0 {
		return s.emitOrFail(QuotedIdentifier, end, err)
	}

	if end := s.lineComment(); end > 0 {
		return s.emit(LineComment, end), nil
	}

	if end, err := s.blockComment(); err != nil || end > 0 {
		return s.emitOrFail(BlockComment, end, err)
	}

	if end := s.placeholder(); end > 0 {
		return s.emit(Placeholder, end), nil
	}

	if end := s.number(); end > 0 {
		return s.emit(Number, end), nil
	}

	if end := s.operator(); end > 0 {
		return s.emit(Operator, end), nil
	}

	if c, end := s.punctuation(); end > 0 {
		return s.emit(c, end), nil
	}

	if c, end := s.word(); end > 0 {
		return s.emit(c, end), nil
	}

	// Unknown characters become single character operators.
	_, size := utf8.DecodeRuneInString(s.src[s.pos:])
	return s.emit(Operator, s.pos+size), nil
}

// quoted returns the end offset of a quoted literal starting at s.pos, or 0 if none of
// the quote types match.
func (s *scanner) quoted(types []QuoteType, kind ErrorKind) (int, error) {
	rest := s.src[s.pos:]

	for _, qt := range types {
		for _, p := range qt.Prefixes {
			if len(rest) > len(p) && strings.EqualFold(rest[:len(p)], p) && strings.HasPrefix(rest[len(p):], qt.Open) {
				return s.closeQuote(s.pos+len(p), qt, kind)
			}
		}

		if strings.HasPrefix(rest, qt.Open) {
			return s.closeQuote(s.pos, qt, kind)
		}
	}

	return 0, nil
}

func (s *scanner) closeQuote(open int, qt QuoteType, kind ErrorKind) (int, error) {
	if end := scanQuoted(s.src, open, qt); end > 0 {
		return end, nil
	}
	return 0, newError(kind, s.src, s.pos)
}

// scanQuoted returns the offset just past the closing delimiter of the literal opened
// at open, or 0 when the input ends first.
func scanQuoted(src string, open int, qt QuoteType) int {
	i := open + len(qt.Open)
	for i < len(src) {
		if qt.Escape == EscapeBackslash && src[i] == '\\' {
			i += 2
			continue
		}

		if strings.HasPrefix(src[i:], qt.Close) {
			next := i + len(qt.Close)
			if strings.HasPrefix(src[next:], qt.Close) {
				i = next + len(qt.Close)
				continue
			}
			return next
		}
		i++
	}
	return 0
}

func (s *scanner) lineComment() int {
	rest := s.src[s.pos:]
	for _, marker := range s.cfg.LineCommentTypes {
		if strings.HasPrefix(rest, marker) {
			if n := strings.IndexAny(rest, "\r\n"); n >= 0 {
				return s.pos + n
			}
			return len(s.src)
		}
	}
	return 0
}

func (s *scanner) blockComment() (int, error) {
	rest := s.src[s.pos:]
	for _, d := range s.blocks {
		if strings.HasPrefix(rest, d.Open) {
			n := strings.Index(rest[len(d.Open):], d.Close)
			if n < 0 {
				return 0, newError(UnterminatedComment, s.src, s.pos)
			}
			return s.pos + len(d.Open) + n + len(d.Close), nil
		}
	}
	return 0, nil
}

func (s *scanner) placeholder() int {
	rest := s.src[s.pos:]

	for _, p := range s.cfg.NumberedPlaceholderTypes {
		if strings.HasPrefix(rest, p) {
			if n := countDigits(rest[len(p):]); n > 0 {
				return s.pos + len(p) + n
			}
		}
	}

	for _, p := range s.cfg.NamedPlaceholderTypes {
		if !strings.HasPrefix(rest, p) {
			continue
		}

		if n := s.wordLength(rest[len(p):]); n > 0 {
			return s.pos + len(p) + n
		}

		// Quoted names, e.g. @"my var" or :'name'.
		for _, qt := range append(append([]QuoteType{}, s.cfg.StringTypes...), s.cfg.IdentTypes...) {
			if strings.HasPrefix(rest[len(p):], qt.Open) {
				if end := scanQuoted(s.src, s.pos+len(p), qt); end > 0 {
					return end
				}
			}
		}
	}

	if s.cfg.PositionalPlaceholders && rest[0] == '?' {
		return s.pos + 1
	}

	return 0
}

func (s *scanner) number() int {
	src, i := s.src, s.pos

	switch {
	case len(src) > i+2 && src[i] == '0' && (src[i+1] == 'x' || src[i+1] == 'X') && isHexDigit(src[i+2]):
		i += 2
		for i < len(src) && isHexDigit(src[i]) {
			i++
		}
	case isDigit(src[i]) || (src[i] == '.' && i+1 < len(src) && isDigit(src[i+1])):
		i += countDigits(src[i:])
		if i < len(src) && src[i] == '.' {
			i++
			i += countDigits(src[i:])
		}
		if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
			j := i + 1
			if j < len(src) && (src[j] == '+' || src[j] == '-') {
				j++
			}
			if n := countDigits(src[j:]); n > 0 {
				i = j + n
			}
		}
	default:
		return 0
	}

	// 1st or 2x are words, not numbers followed by words.
	if i < len(src) {
		if r, _ := utf8.DecodeRuneInString(src[i:]); s.isWordRune(r) {
			return 0
		}
	}
	return i
}

func (s *scanner) operator() int {
	rest := s.src[s.pos:]
	for _, op := range s.operators {
		if strings.HasPrefix(rest, op) {
			return s.pos + len(op)
		}
	}
	return 0
}

func (s *scanner) punctuation() (Category, int) {
	rest := s.src[s.pos:]
	if rest[0] == ',' {
		return Comma, s.pos + 1
	}

	for _, p := range s.openParens {
		if strings.HasPrefix(rest, p) {
			return OpenParen, s.pos + len(p)
		}
	}

	for _, p := range s.closeParens {
		if strings.HasPrefix(rest, p) {
			return CloseParen, s.pos + len(p)
		}
	}

	return 0, 0
}

// word scans a run of word characters and classifies it, extending the token over the
// longest reserved phrase that starts here.
func (s *scanner) word() (Category, int) {
	end := s.wordEnd(s.pos, true)
	if end == s.pos {
		return 0, 0
	}

	// Member names (t.select) are never reserved.
	if n := len(s.tokens); n > 0 && s.tokens[n-1].Category == Operator && s.tokens[n-1].Text == "." {
		return Identifier, end
	}

	ends := []int{end}
	for len(ends) < s.maxWords {
		next := ends[len(ends)-1]
		for next < len(s.src) {
			r, size := utf8.DecodeRuneInString(s.src[next:])
			if !unicode.IsSpace(r) {
				break
			}
			next += size
		}

		if next == ends[len(ends)-1] {
			break
		}

		wordEnd := s.wordEnd(next, false)
		if wordEnd == next {
			break
		}
		ends = append(ends, wordEnd)
	}

	for n := len(ends) - 1; n >= 0; n-- {
		if c, ok := s.phrases[normalize(s.src[s.pos:ends[n]])]; ok {
			return c, ends[n]
		}
	}

	return Identifier, end
}

// wordEnd returns the end of the word starting at pos, or pos if there is none.
func (s *scanner) wordEnd(pos int, allowPrefix bool) int {
	r, size := utf8.DecodeRuneInString(s.src[pos:])
	if !s.isWordRune(r) && !(allowPrefix && strings.ContainsRune(s.cfg.IdentChars.Prefix, r)) {
		return pos
	}

	end := pos + size
	return end + s.wordLength(s.src[end:])
}

func (s *scanner) wordLength(text string) int {
	n := 0
	for n < len(text) {
		r, size := utf8.DecodeRuneInString(text[n:])
		if !s.isWordRune(r) {
			break
		}
		n += size
	}
	return n
}

func (s *scanner) isWordRune(r rune) bool {
	return r == '_' ||
		unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) ||
		strings.ContainsRune(s.cfg.IdentChars.Rest, r)
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
