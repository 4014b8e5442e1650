package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shlexcore/shlex/lexer/lexertest"
	"github.com/shlexcore/shlex/token"
)

// A ')' inside a single-quoted run must not be mistaken for the
// construct's own closing paren (spec.md §4.3.8).
func TestArithSquoteHidesCloseParen(t *testing.T) {
	for _, toks := range [][]token.Token{
		lexertest.MustLex(t, `$(( arr['x)'] ))`),
		lexertest.MustLexByteAtATime(t, `$(( arr['x)'] ))`),
	} {
		if !assert.Len(t, toks, 1) {
			continue
		}
		assert.Equal(t, token.WORD, toks[0].Type)
		if assert.Len(t, toks[0].Parts, 1) {
			part := toks[0].Parts[0]
			assert.Equal(t, token.Arithmetic, part.Kind)
			assert.Equal(t, ` arr['x)'] `, part.Text)
		}
	}
}

// A ')' inside a double-quoted run is likewise hidden, and a
// backslash there escapes the quote's own close marker.
func TestArithDquoteHidesCloseParenAndHonorsEscape(t *testing.T) {
	for _, toks := range [][]token.Token{
		lexertest.MustLex(t, `$(( a["x)\"y)"] ))`),
		lexertest.MustLexByteAtATime(t, `$(( a["x)\"y)"] ))`),
	} {
		if !assert.Len(t, toks, 1) {
			continue
		}
		if assert.Len(t, toks[0].Parts, 1) {
			part := toks[0].Parts[0]
			assert.Equal(t, token.Arithmetic, part.Kind)
			assert.Equal(t, ` a["x)\"y)"] `, part.Text)
		}
	}
}

// A ')' inside a backtick span is hidden the same way.
func TestArithBacktickHidesCloseParen(t *testing.T) {
	toks := lexertest.MustLex(t, "$(( `echo )` ))")
	if assert.Len(t, toks, 1) && assert.Len(t, toks[0].Parts, 1) {
		part := toks[0].Parts[0]
		assert.Equal(t, token.Arithmetic, part.Kind)
		assert.Equal(t, " `echo )` ", part.Text)
	}
}

// A '}' inside a ${...} span doesn't end the span early, and a ')'
// inside one is likewise hidden from the construct's depth count.
func TestArithParamExpansionHidesCloseParen(t *testing.T) {
	toks := lexertest.MustLex(t, `$(( ${arr[x)]} ))`)
	if assert.Len(t, toks, 1) && assert.Len(t, toks[0].Parts, 1) {
		part := toks[0].Parts[0]
		assert.Equal(t, token.Arithmetic, part.Kind)
		assert.Equal(t, ` ${arr[x)]} `, part.Text)
	}
}

// Ordinary, unquoted nested parens still count toward depth as before
// the quote/backslash handling was added.
func TestArithNestedParensStillCount(t *testing.T) {
	toks := lexertest.MustLex(t, `$(( (1+2)*3 ))`)
	if assert.Len(t, toks, 1) && assert.Len(t, toks[0].Parts, 1) {
		assert.Equal(t, " (1+2)*3 ", toks[0].Parts[0].Text)
	}
}
