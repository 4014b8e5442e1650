// Package aliastest provides shared test helpers for the alias
// package, grounded on parser/testutil/util.go's mustParse-and-assert
// shape.
package aliastest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shlexcore/shlex/alias"
	"github.com/shlexcore/shlex/lexer"
	"github.com/shlexcore/shlex/token"
)

// MustExpand lexes src, runs the alias tokenizer against store, and
// requires a clean OK status from both passes, returning the final
// token stream.
func MustExpand(t *testing.T, store alias.Store, src string) []token.Token {
	t.Helper()

	l := lexer.New()
	l.AppendInput([]byte(src))
	var toks []token.Token
	lexStatus := l.Tokenize(&toks)
	require.Equal(t, lexer.OK, lexStatus, "MustExpand(%q): lex status %s, err=%v", src, lexStatus, l.GetError())

	tz := alias.New(store)
	var out []token.Token
	status := tz.Process(&toks, &out)
	require.Equal(t, lexer.OK, status, "MustExpand(%q): alias status %s, err=%v", src, status, tz.GetError())
	return out
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

// Literals renders a token slice's single-unquoted-literal text where
// applicable, and "" otherwise — convenient for asserting word text
// without constructing full Part slices in test tables.
func Literals(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, tk := range toks {
		if text, ok := token.IsSingleUnquotedLiteral(tk.Parts); ok {
			out[i] = text
		}
	}
	return out
}
