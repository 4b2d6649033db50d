package format

import (
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlformat/pkg/lexer"
)

// Formatter formats SQL text for one dialect. It holds no per-call state and may be
// shared by concurrent callers.
type Formatter struct {
	tokenizer *lexer.Tokenizer
	options   Options
}

// New creates a Formatter that tokenizes with t and lays out with opts.
func New(t *lexer.Tokenizer, opts Options) *Formatter {
	return &Formatter{tokenizer: t, options: opts}
}

// Options returns the formatting options.
func (f *Formatter) Options() Options {
	return f.options
}

// String formats sql and returns the result.
func (f *Formatter) String(sql string) (string, error) {
	tokens, err := f.tokenizer.Tokenize(sql)
	if err != nil {
		return "", errors.Wrap(err, "failed to tokenize SQL")
	}
	return Tokens(tokens, f.options), nil
}

// Format formats sql and writes the result to w. Nothing is written when sql cannot be
// tokenized.
func (f *Formatter) Format(w io.Writer, sql string) error {
	out, err := f.String(sql)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, "failed to write formatted SQL")
	}
	return nil
}

// Format formats sql with the given tokenizer and options and writes the result to w.
func Format(w io.Writer, opts Options, t *lexer.Tokenizer, sql string) error {
	return New(t, opts).Format(w, sql)
}
