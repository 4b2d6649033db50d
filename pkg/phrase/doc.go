// Package phrase expands grammar-like phrase templates into concrete phrase lists.
//
// Dialect definitions describe their multi-word reserved phrases with a compact
// shorthand instead of spelling out every combination:
//
//   - literal words are copied as written (case preserved)
//   - [A] marks an optional group, [A | B] an optional choice
//   - {A | B} marks a required choice of exactly one alternative
//
// Groups nest, so "{LEFT | RIGHT | FULL} [OUTER] JOIN" expands to six phrases.
//
// Usage:
//
//	joins := phrase.MustExpand(
//		"JOIN",
//		"{LEFT | RIGHT | FULL} [OUTER] JOIN",
//		"NATURAL [INNER] JOIN",
//	)
//
// Templates are parsed with github.com/alecthomas/participle/v2. Expansion happens once,
// when a dialect table is built, so it favors completeness over speed.
package phrase
