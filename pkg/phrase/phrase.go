package phrase

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// templateLexer splits a template into words and the grouping punctuation
	templateLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Word", Pattern: `[^\s\[\]{}|]+`},
		{Name: "Punct", Pattern: `[\[\]{}|]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// parser is the participle parser instance for phrase templates
	parser = participle.MustBuild[template](
		participle.Lexer(templateLexer),
		participle.Elide("Whitespace"),
	)
)

type (
	// template is a non-empty sequence of segments
	template struct {
		Segments []*segment `parser:"@@+"`
	}

	// segment is a literal word, an optional group or an alternation group
	segment struct {
		Word     string  `parser:"  @Word"`
		Optional *choice `parser:"| '[' @@ ']'"`
		Required *choice `parser:"| '{' @@ '}'"`
	}

	// choice lists the alternatives of a group
	choice struct {
		Options []*template `parser:"@@ ( '|' @@ )*"`
	}
)

// Expand parses every template and returns the concatenation of their expansions with
// duplicates removed. The first occurrence of a phrase determines its position.
//
// Example:
//
//	phrases, err := phrase.Expand("{LEFT | RIGHT} [OUTER] JOIN", "CROSS JOIN")
//	// phrases: LEFT JOIN, LEFT OUTER JOIN, RIGHT JOIN, RIGHT OUTER JOIN, CROSS JOIN
func Expand(templates ...string) ([]string, error) {
	seen := make(map[string]bool)
	result := make([]string, 0, len(templates))

	for _, text := range templates {
		tmpl, err := parser.ParseString("", text)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse phrase template %q", text)
		}

		for _, p := range tmpl.expand() {
			if !seen[p] {
				seen[p] = true
				result = append(result, p)
			}
		}
	}

	return result, nil
}

// MustExpand is like Expand but panics when a template is malformed. It is meant for
// package level phrase tables.
func MustExpand(templates ...string) []string {
	phrases, err := Expand(templates...)
	if err != nil {
		panic(err)
	}
	return phrases
}

func (t *template) expand() []string {
	return combine(t.Segments)
}

func (c *choice) expand() []string {
	var result []string
	for _, opt := range c.Options {
		result = append(result, opt.expand()...)
	}
	return result
}

// combine expands segs right to left. Alternatives vary slowest, while an optional
// group alternates between omitted and included for each tail.
func combine(segs []*segment) []string {
	if len(segs) == 0 {
		return []string{""}
	}

	head, tails := segs[0], combine(segs[1:])
	var result []string

	switch {
	case head.Optional != nil:
		heads := append([]string{""}, head.Optional.expand()...)
		for _, tail := range tails {
			for _, h := range heads {
				result = append(result, join(h, tail))
			}
		}
	case head.Required != nil:
		for _, h := range head.Required.expand() {
			for _, tail := range tails {
				result = append(result, join(h, tail))
			}
		}
	default:
		for _, tail := range tails {
			result = append(result, join(head.Word, tail))
		}
	}

	return result
}

func join(head, tail string) string {
	switch {
	case head == "":
		return tail
	case tail == "":
		return head
	default:
		return strings.TrimSpace(head + " " + tail)
	}
}
