package dialect

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlformat/pkg/lexer"
)

// Dialect is a named lexical configuration.
type Dialect struct {
	// Name is the canonical, lower-case dialect name.
	Name string
	// Aliases are alternative names accepted by Get.
	Aliases []string
	// Description is a one line summary shown by the CLI.
	Description string
	// Config is the lexical configuration. It must not be modified after Register.
	Config *lexer.Config

	tokenizer *lexer.Tokenizer
}

var (
	mu       sync.RWMutex
	registry = make(map[string]*Dialect)
	names    []string
)

// Register compiles d's configuration and makes it available by name and aliases. It
// panics if the configuration is invalid or the name is taken, like other registration
// functions called from init.
func Register(d *Dialect) {
	mu.Lock()
	defer mu.Unlock()

	d.tokenizer = lexer.MustNew(d.Config)

	for _, name := range append([]string{d.Name}, d.Aliases...) {
		key := strings.ToLower(name)
		if _, ok := registry[key]; ok {
			panic("dialect: duplicate registration of " + key)
		}
		registry[key] = d
	}

	names = append(names, d.Name)
	sort.Strings(names)
}

// Get returns the dialect registered under name (case-insensitive).
func Get(name string) (*Dialect, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Errorf("unknown dialect: %s (available: %s)", name, strings.Join(names, ", "))
	}
	return d, nil
}

// Names returns the canonical names of all registered dialects, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	return append([]string(nil), names...)
}

// Tokenizer returns the compiled tokenizer for the dialect.
func (d *Dialect) Tokenizer() *lexer.Tokenizer {
	return d.tokenizer
}

// CommandBeforeParenIsKeyword returns a preprocess hook that reclassifies the given
// commands as keywords when the next token is an open paren. MariaDB uses it for SET,
// which is a statement in SET a = 1 but a column type in SET('a', 'b').
func CommandBeforeParenIsKeyword(words ...string) func([]lexer.Token) []lexer.Token {
	keys := make(map[string]bool, len(words))
	for _, w := range words {
		keys[strings.ToUpper(w)] = true
	}

	return func(tokens []lexer.Token) []lexer.Token {
		for i, tok := range tokens {
			if tok.Category != lexer.ReservedCommand || !keys[tok.Key()] {
				continue
			}
			if i+1 < len(tokens) && tokens[i+1].Category == lexer.OpenParen {
				tokens[i].Category = lexer.ReservedKeyword
			}
		}
		return tokens
	}
}

// concat joins word lists into a new slice.
func concat(lists ...[]string) []string {
	var result []string
	for _, l := range lists {
		result = append(result, l...)
	}
	return result
}
