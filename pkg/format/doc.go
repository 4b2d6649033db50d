// Package format lays out a SQL token stream as indented, readable text.
//
// The engine walks the tokens produced by the lexer package once, keeping an explicit
// stack of frames that records which constructs are open:
//
//   - a command (SELECT, FROM, WHERE) starts a line at the level of its statement and
//     indents its body one level deeper
//   - a binary command (JOIN, UNION ALL) starts a line at the same level and keeps its
//     operand inline
//   - AND/OR start a new line at the body level of the enclosing clause, except the AND
//     of a BETWEEN
//   - dependent clauses (ON, WHEN, THEN) stay inline while they fit the line width
//   - a parenthesized span stays on one line when it fits and holds no clause or
//     comment; otherwise its body becomes an indented block
//   - a ; ends the statement and resets the stack
//
// Comments and literals are copied verbatim. Reserved words are cased according to
// Options.KeywordCase and multi-word phrases are joined with single spaces. Formatting
// is idempotent: formatting the output again with the same options returns it
// unchanged.
//
// Usage:
//
//	d, _ := dialect.Get("postgresql")
//	f := format.New(d.Tokenizer(), format.Defaults)
//
//	out, err := f.String("select a, b from t where a = 1 and b = 2")
//
//	// or, writing to an io.Writer
//	err = format.Format(os.Stdout, format.Defaults, d.Tokenizer(), sql)
//
// Output:
//
//	select
//	  a,
//	  b
//	from
//	  t
//	where
//	  a = 1
//	  and b = 2
//
// Widths are measured in terminal cells (github.com/mattn/go-runewidth), so wide
// characters in identifiers and strings count double.
package format
