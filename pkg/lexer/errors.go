package lexer

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind identifies the literal that was left open.
type ErrorKind int

const (
	UnterminatedString ErrorKind = iota
	UnterminatedIdentifier
	UnterminatedComment
)

// ErrUnterminated is the cause of every tokenizer error.
var ErrUnterminated = errors.New("unterminated literal")

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "string literal"
	case UnterminatedIdentifier:
		return "quoted identifier"
	case UnterminatedComment:
		return "block comment"
	default:
		return "literal"
	}
}

// Error reports input that ended inside an open literal. Offset is the byte offset of
// the literal's first character, Line and Column are 1-based.
type Error struct {
	Kind   ErrorKind
	Offset int
	Line   int
	Column int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: unterminated %s starting at offset %d", e.Line, e.Column, e.Kind, e.Offset)
}

// Cause returns ErrUnterminated, for errors.Cause.
func (e *Error) Cause() error {
	return ErrUnterminated
}

// Unwrap returns ErrUnterminated, for errors.Is.
func (e *Error) Unwrap() error {
	return ErrUnterminated
}

func newError(kind ErrorKind, src string, offset int) *Error {
	line, col := 1, 1
	for _, r := range src[:offset] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return &Error{Kind: kind, Offset: offset, Line: line, Column: col}
}
