// Package text provides the string-mode primitive recognizers: literals,
// character classes, bounded takes, escape loops, line endings and textual
// number literals. All parsers here consume whole runes and never split a
// multi-byte UTF-8 sequence.
//
// Combine these with the combinators in
// [github.com/mogest/elnom/pkg/elnom]; byte-oriented equivalents live in
// [github.com/mogest/elnom/pkg/bin]. A parser tree should stick to one
// mode package, since rune offsets and byte offsets are not
// interchangeable.
package text
