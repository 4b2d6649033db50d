// Package lexer splits SQL source text into a classified, lossless token stream.
//
// A Tokenizer is compiled from a Config, the lexical description of one SQL dialect:
// its reserved word lists, quoting rules, comment markers, operators, placeholder
// syntax and parenthesis pairs. The tokenizer never validates grammar. It only
// classifies text, and every token records the whitespace that preceded it, so
// joining a stream reproduces the input byte for byte:
//
//	t, err := lexer.New(cfg)
//	tokens, err := t.Tokenize("select a, b from t")
//	lexer.Join(tokens) == "select a, b from t"
//
// Bare words are classified by the longest reserved phrase that starts at them
// ("LEFT OUTER JOIN" across any whitespace), using a fixed priority when a phrase
// appears in several lists:
//
//	commands > binary commands > dependent clauses > logical operators > keywords > function names
//
// Two context rules refine the result. A keyword directly followed by an open paren
// becomes a function name (COUNT(x)), and a word following a "." operator is always an
// identifier (t.select). Dialects may reclassify further with Config.Preprocess.
//
// Input that ends inside a string, quoted identifier or block comment fails with an
// *Error whose cause is ErrUnterminated. No partial stream is returned.
package lexer
