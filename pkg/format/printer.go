package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// printer assembles output lines. Line breaks are lazy: breakAt records where the next
// token should start and the current line is only closed once a token is written, so
// attached punctuation (commas, semicolons, trailing comments) still lands on it.
type printer struct {
	opts Options

	lines []string
	line  strings.Builder
	level int

	pending      bool
	pendingLevel int

	// blank lines owed before the next non-empty line
	gap int
}

func newPrinter(opts Options) *printer {
	return &printer{opts: opts}
}

// empty reports whether nothing has been written to the current line.
func (p *printer) empty() bool {
	return p.line.Len() == 0
}

// breakAt requests that the next written token starts a new line at level.
func (p *printer) breakAt(level int) {
	level = max(level, 0)
	if p.empty() {
		p.level = level
		p.pending = false
		return
	}
	p.pending = true
	p.pendingLevel = level
}

// newline closes the current line now. A pending break takes precedence over level.
func (p *printer) newline(level int) {
	if p.pending {
		level = p.pendingLevel
	}
	p.flush()
	p.level = max(level, 0)
}

// separate closes the current line and owes n blank lines before the next one.
func (p *printer) separate(n int) {
	p.flush()
	p.level = 0
	p.gap = max(n, 0)
}

// write appends text, starting a new line first if a break is pending. A space is
// inserted when spaced is set and the line is not empty.
func (p *printer) write(text string, spaced bool) {
	if p.pending {
		p.newline(p.pendingLevel)
	}
	p.attach(text, spaced)
}

// attach appends text to the current line, ignoring a pending break.
func (p *printer) attach(text string, spaced bool) {
	if spaced && !p.empty() {
		p.line.WriteByte(' ')
	}
	p.line.WriteString(text)
}

func (p *printer) flush() {
	p.pending = false
	if p.empty() {
		return
	}

	if len(p.lines) > 0 {
		for ; p.gap > 0; p.gap-- {
			p.lines = append(p.lines, "")
		}
	}
	p.gap = 0

	p.lines = append(p.lines, p.indent(p.level)+p.line.String())
	p.line.Reset()
}

// column returns the width of the line the next token would be written to.
func (p *printer) column() int {
	if p.pending {
		return p.indentWidth(p.pendingLevel)
	}

	text := p.line.String()
	if n := strings.LastIndexByte(text, '\n'); n >= 0 {
		return width(text[n+1:])
	}
	return p.indentWidth(p.level) + width(text)
}

// fits reports whether n more cells, preceded by a space when spaced, fit on the line.
func (p *printer) fits(n int, spaced bool) bool {
	if p.opts.LineWidth <= 0 {
		return true
	}

	col := p.column()
	if spaced && !p.pending && !p.empty() {
		col++
	}
	return col+n <= p.opts.LineWidth
}

func (p *printer) indent(level int) string {
	if p.opts.UseTabs {
		return strings.Repeat("\t", level)
	}
	return strings.Repeat(" ", level*p.opts.IndentSize)
}

func (p *printer) indentWidth(level int) int {
	return level * p.opts.IndentSize
}

func (p *printer) String() string {
	p.flush()
	return strings.Join(p.lines, "\n")
}

// width is the number of terminal cells text occupies.
func width(text string) int {
	return runewidth.StringWidth(text)
}
