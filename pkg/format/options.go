package format

import (
	"strings"

	"github.com/pkg/errors"
)

// KeywordCase controls how reserved words are cased in the output.
type KeywordCase int

const (
	// CasePreserve leaves reserved words as written.
	CasePreserve KeywordCase = iota
	// CaseUpper upper-cases reserved words.
	CaseUpper
	// CaseLower lower-cases reserved words.
	CaseLower
)

func (k KeywordCase) String() string {
	switch k {
	case CaseUpper:
		return "upper"
	case CaseLower:
		return "lower"
	default:
		return "preserve"
	}
}

// ParseKeywordCase parses "preserve", "upper" or "lower" (case-insensitive). An empty
// string is CasePreserve.
func ParseKeywordCase(s string) (KeywordCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "preserve":
		return CasePreserve, nil
	case "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	default:
		return CasePreserve, errors.Errorf("invalid keyword case: %q (expected preserve, upper or lower)", s)
	}
}

// Options controls formatting behavior.
type Options struct {
	// IndentSize is the number of spaces per indent level. It is also the width of a tab
	// when measuring lines.
	IndentSize int
	// UseTabs indents with one tab per level instead of spaces.
	UseTabs bool
	// LineWidth is the width at which parenthesized spans and dependent clauses stop
	// being kept on one line. Zero or less means unlimited.
	LineWidth int
	// KeywordCase is applied to reserved words.
	KeywordCase KeywordCase
	// LinesBetweenQueries is the number of blank lines after each ; that is followed by
	// another statement.
	LinesBetweenQueries int
	// InlineCommands lists the commands whose first argument stays on the command's
	// line (LIMIT 10).
	InlineCommands []string
}

// Defaults are the standard formatting options.
var Defaults = Options{
	IndentSize:          2,
	LineWidth:           80,
	KeywordCase:         CasePreserve,
	LinesBetweenQueries: 1,
	InlineCommands:      []string{"LIMIT", "OFFSET"},
}
