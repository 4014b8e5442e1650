// Package lexertest provides shared test helpers for the lexer
// package, grounded on parser/testutil/util.go's "mustParse plus
// typed assertion" shape, adapted from a whole-module AST parse to a
// byte-at-a-time-or-all-at-once token stream.
package lexertest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shlexcore/shlex/lexer"
	"github.com/shlexcore/shlex/token"
)

// MustLex lexes src in one call and requires a clean OK status,
// returning the resulting tokens. Mirrors testutil.mustParseSnippet:
// fail the test immediately rather than returning an error for the
// caller to check.
func MustLex(t *testing.T, src string) []token.Token {
	t.Helper()
	l := lexer.New()
	l.AppendInput([]byte(src))
	var toks []token.Token
	status := l.Tokenize(&toks)
	require.Equal(t, lexer.OK, status, "MustLex(%q): status %s, err=%v", src, status, l.GetError())
	return toks
}

// MustLexByteAtATime feeds src to the lexer one byte per AppendInput
// call, re-running Tokenize after each byte. It requires that no call
// returns ERROR or INTERNAL_ERROR and that a final Tokenize returns
// OK, then returns the accumulated tokens; it does not itself compare
// them with a one-shot MustLex of the same input.
func MustLexByteAtATime(t *testing.T, src string) []token.Token {
	t.Helper()
	l := lexer.New()
	var toks []token.Token
	for i := 0; i < len(src); i++ {
		l.AppendInput([]byte{src[i]})
		status := l.Tokenize(&toks)
		require.NotEqual(t, lexer.ERROR, status, "MustLexByteAtATime(%q): ERROR after byte %d, err=%v", src, i, l.GetError())
		require.NotEqual(t, lexer.INTERNAL_ERROR, status, "MustLexByteAtATime(%q): INTERNAL_ERROR after byte %d, err=%v", src, i, l.GetError())
	}
	status := l.Tokenize(&toks)
	require.Equal(t, lexer.OK, status, "MustLexByteAtATime(%q): final status %s, err=%v", src, status, l.GetError())
	return toks
}

// TypeNames renders a token slice's types, useful for concise
// table-driven expectations.
func TypeNames(toks []token.Token) []string {
	names := make([]string, len(toks))
	for i, tk := range toks {
		names[i] = tk.Type.String()
	}
	return names
}
