package format

import (
	"strings"
	"unicode"

	"github.com/pseudomuto/sqlformat/pkg/lexer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokens formats a token stream produced by a lexer.Tokenizer. It never fails: token
// streams that are not valid SQL, unbalanced parentheses included, are laid out on a
// best-effort basis and every token's text appears in the output. The result has no
// trailing newline.
func Tokens(tokens []lexer.Token, opts Options) string {
	e := newEngine(tokens, opts)
	e.run()
	return e.p.String()
}

type engine struct {
	opts    Options
	tokens  []lexer.Token
	p       *printer
	frames  FrameStack
	caser   *cases.Caser
	inlines map[string]bool

	// depth of the parenthesized span being rendered on one line, 0 outside such spans
	inline int
}

func newEngine(tokens []lexer.Token, opts Options) *engine {
	if opts.IndentSize < 0 {
		opts.IndentSize = 0
	}

	e := &engine{
		opts:    opts,
		tokens:  tokens,
		p:       newPrinter(opts),
		inlines: make(map[string]bool, len(opts.InlineCommands)),
	}

	for _, cmd := range opts.InlineCommands {
		e.inlines[lexer.Token{Text: cmd}.Key()] = true
	}

	var caser cases.Caser
	switch opts.KeywordCase {
	case CaseUpper:
		caser = cases.Upper(language.Und)
		e.caser = &caser
	case CaseLower:
		caser = cases.Lower(language.Und)
		e.caser = &caser
	}

	return e
}

func (e *engine) run() {
	for i, tok := range e.tokens {
		switch {
		case tok.Category == lexer.EOF:
			return
		case tok.Category == lexer.LineComment:
			e.lineComment(tok)
		case tok.Category == lexer.BlockComment:
			e.blockComment(i, tok)
		case tok.Category == lexer.ReservedCommand:
			e.command(i, tok, !e.inlines[tok.Key()])
		case tok.Category == lexer.ReservedBinaryCommand:
			e.command(i, tok, false)
		case tok.Category == lexer.ReservedDependentClause:
			e.dependentClause(i, tok)
		case tok.Category == lexer.ReservedLogicalOperator:
			e.logicalOperator(i, tok)
		case tok.Category == lexer.OpenParen:
			e.openParen(i, tok)
		case tok.Category == lexer.CloseParen:
			e.closeParen(tok)
		case tok.Category == lexer.Comma:
			e.comma(tok)
		case isOperator(tok, ";"):
			e.separator(i, tok)
		default:
			if e.inline == 0 && tok.Is(lexer.ReservedKeyword, "BETWEEN") {
				e.frames.Push(Frame{Kind: BetweenOperand, Indent: e.frames.Indent()})
			}
			e.p.write(e.render(tok), e.spaced(i))
		}
	}
}

// command starts a clause at the level of the statement or subquery it belongs to. With
// breakAfter set, the clause body starts on the next line.
func (e *engine) command(i int, tok lexer.Token, breakAfter bool) {
	level := e.frames.PopClauses()
	e.p.breakAt(level)
	e.p.write(e.render(tok), e.spaced(i))
	e.frames.Push(Frame{Kind: TopLevel, Indent: level + 1})

	if breakAfter {
		e.p.breakAt(level + 1)
	}
}

// dependentClause keeps ON, WHEN, THEN and the like on the current line when the clause
// and its operand fit, and otherwise moves it to the body of the enclosing clause.
func (e *engine) dependentClause(i int, tok lexer.Token) {
	spaced := e.spaced(i)
	if e.inline == 0 && !e.p.fits(e.segmentWidth(i), spaced) {
		e.p.breakAt(max(e.frames.Indent(), 1))
	}
	e.p.write(e.render(tok), spaced)
}

func (e *engine) logicalOperator(i int, tok lexer.Token) {
	if e.inline == 0 {
		top, ok := e.frames.Top()
		switch {
		case ok && top.Kind == BetweenOperand && tok.Key() == "AND":
			e.frames.Pop()
		case ok:
			e.p.breakAt(e.frames.Indent())
		}
	}
	e.p.write(e.render(tok), e.spaced(i))
}

// openParen renders a parenthesized span on one line when it fits and holds no clause
// or comment. Otherwise it opens a block whose body is indented one level deeper than
// the line holding the paren.
func (e *engine) openParen(i int, tok lexer.Token) {
	spaced := e.spaced(i)
	if e.inline > 0 {
		e.inline++
		e.p.write(tok.Text, spaced)
		return
	}

	if end := e.matchingParen(i); end > 0 && e.flat(i, end) && e.p.fits(e.spanWidth(i, end), spaced) {
		e.inline = 1
		e.p.write(tok.Text, spaced)
		return
	}

	e.p.write(tok.Text, spaced)
	level := e.p.level + 1
	e.frames.Push(Frame{Kind: ParenBlock, Indent: level})
	e.p.breakAt(level)
}

func (e *engine) closeParen(tok lexer.Token) {
	if e.inline > 0 {
		e.inline--
		e.p.write(tok.Text, false)
		return
	}

	if f, ok := e.frames.PopParen(); ok {
		e.p.breakAt(f.Indent - 1)
	}
	e.p.write(tok.Text, false)
}

func (e *engine) comma(tok lexer.Token) {
	e.p.attach(tok.Text, false)
	if e.inline > 0 {
		return
	}

	if f, ok := e.frames.Enclosing(); ok {
		e.p.breakAt(f.Indent)
	}
}

// separator ends a statement.
func (e *engine) separator(i int, tok lexer.Token) {
	e.p.attach(tok.Text, false)
	e.frames.Reset()
	e.inline = 0

	if e.hasMore(i + 1) {
		e.p.separate(e.opts.LinesBetweenQueries)
	}
}

// lineComment keeps a comment that followed code on the same source line attached to
// that line. Anything after a line comment starts on a new line.
func (e *engine) lineComment(tok lexer.Token) {
	level := e.breakLevel()
	if strings.Contains(tok.Whitespace, "\n") || e.p.empty() {
		e.p.breakAt(level)
		e.p.write(tok.Text, false)
	} else {
		e.p.attach(tok.Text, true)
	}
	e.p.newline(level)
}

// blockComment places comments that span several lines on lines of their own.
func (e *engine) blockComment(i int, tok lexer.Token) {
	if !strings.Contains(tok.Text, "\n") {
		e.p.write(tok.Text, e.spaced(i))
		return
	}

	level := e.breakLevel()
	e.p.breakAt(level)
	e.p.write(tok.Text, false)
	e.p.newline(level)
}

// breakLevel is the level a line started at this point would use.
func (e *engine) breakLevel() int {
	switch {
	case e.p.pending:
		return e.p.pendingLevel
	case e.p.empty():
		return e.p.level
	default:
		return e.frames.Indent()
	}
}

func (e *engine) render(tok lexer.Token) string {
	if !tok.IsReserved() {
		return tok.Text
	}

	text := tok.Text
	if strings.IndexFunc(text, unicode.IsSpace) >= 0 {
		text = strings.Join(strings.Fields(text), " ")
	}

	if e.caser != nil {
		text = e.caser.String(text)
	}
	return text
}

// spaced reports whether token i is separated from the token before it by a space when
// both are on the same line.
func (e *engine) spaced(i int) bool {
	if i == 0 {
		return false
	}

	tok, prev := e.tokens[i], e.tokens[i-1]
	switch {
	case tok.Category == lexer.Comma, tok.Category == lexer.CloseParen, isOperator(tok, ";"):
		return false
	case prev.Category == lexer.OpenParen:
		return false
	case tok.Category.IsComment():
		return true
	case isOperator(tok, "::"), isOperator(prev, "::"):
		return false
	case isOperator(tok, ".") && prev.Category != lexer.Number, isOperator(prev, ".") && tok.Category != lexer.Number:
		return false
	case prev.Category == lexer.Operator && tok.Category != lexer.Operator && e.unary(i-1):
		return false
	case tok.Category == lexer.OpenParen && prev.Category == lexer.ReservedFunctionName:
		return false
	case tok.Category == lexer.OpenParen && tok.Whitespace == "" &&
		(prev.Category == lexer.Identifier || prev.Category == lexer.QuotedIdentifier):
		return false
	}
	return true
}

// unary reports whether the sign operator at i applies to the operand after it rather
// than combining the operands around it.
func (e *engine) unary(i int) bool {
	switch e.tokens[i].Text {
	case "+", "-", "~":
	default:
		return false
	}

	for j := i - 1; j >= 0; j-- {
		prev := e.tokens[j]
		switch {
		case prev.Category.IsComment():
			continue
		case prev.Category == lexer.Operator, prev.Category == lexer.OpenParen, prev.Category == lexer.Comma:
			return true
		default:
			return prev.IsReserved() && prev.Category != lexer.ReservedFunctionName
		}
	}
	return true
}

// matchingParen returns the index of the paren closing the one at i, or -1.
func (e *engine) matchingParen(i int) int {
	depth := 0
	for j := i; j < len(e.tokens); j++ {
		switch e.tokens[j].Category {
		case lexer.OpenParen:
			depth++
		case lexer.CloseParen:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// flat reports whether tokens i through end can be rendered on one line.
func (e *engine) flat(i, end int) bool {
	for _, tok := range e.tokens[i : end+1] {
		switch {
		case tok.Category == lexer.ReservedCommand,
			tok.Category == lexer.ReservedBinaryCommand,
			tok.Category.IsComment(),
			isOperator(tok, ";"),
			strings.Contains(tok.Text, "\n"):
			return false
		}
	}
	return true
}

// spanWidth is the width of tokens i through end rendered on one line.
func (e *engine) spanWidth(i, end int) int {
	n := 0
	for j := i; j <= end; j++ {
		if j > i && e.spaced(j) {
			n++
		}
		n += width(e.render(e.tokens[j]))
	}
	return n
}

// segmentWidth is the width of the dependent clause at i and its operand: the tokens up
// to the next comma, clause, logical operator or comment outside parentheses, or the
// close paren of the enclosing span.
func (e *engine) segmentWidth(i int) int {
	depth, end := 0, i
	for j := i + 1; j < len(e.tokens); j++ {
		tok := e.tokens[j]
		if depth == 0 && e.endsSegment(tok) {
			break
		}

		switch tok.Category {
		case lexer.OpenParen:
			depth++
		case lexer.CloseParen:
			depth--
		}

		if depth < 0 {
			break
		}
		end = j
	}
	return e.spanWidth(i, end)
}

func (e *engine) endsSegment(tok lexer.Token) bool {
	switch tok.Category {
	case lexer.Comma,
		lexer.ReservedCommand,
		lexer.ReservedBinaryCommand,
		lexer.ReservedDependentClause,
		lexer.ReservedLogicalOperator,
		lexer.LineComment,
		lexer.BlockComment,
		lexer.EOF:
		return true
	}
	return isOperator(tok, ";")
}

// hasMore reports whether any token other than EOF starts at or after i.
func (e *engine) hasMore(i int) bool {
	return i < len(e.tokens) && e.tokens[i].Category != lexer.EOF
}

func isOperator(tok lexer.Token, text string) bool {
	return tok.Category == lexer.Operator && tok.Text == text
}
