package participlebridge_test

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shlexcore/shlex/alias"
	"github.com/shlexcore/shlex/participlebridge"
	"github.com/shlexcore/shlex/token"
)

func collect(t *testing.T, lx lexer.Lexer) []lexer.Token {
	t.Helper()
	var toks []lexer.Token
	for {
		tok, err := lx.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	return toks
}

func TestLexBytesRendersVerbatimValues(t *testing.T) {
	def := participlebridge.NewDefinition()
	lx, err := def.LexBytes("test.sh", []byte("echo hi"))
	require.NoError(t, err)

	toks := collect(t, lx)
	require.Len(t, toks, 3) // echo, hi, EOF

	assert.Equal(t, "echo", toks[0].Value)
	assert.Equal(t, lexer.TokenType(token.WORD), toks[0].Type)
	assert.Equal(t, "hi", toks[1].Value)
	assert.Equal(t, lexer.EOF, toks[2].Type)
}

func TestLexStringExpandsAliasesWhenStoreConfigured(t *testing.T) {
	def := participlebridge.NewDefinition()
	def.Store = alias.MapStore{"ll": "ls -l"}

	lx, err := def.LexString("test.sh", "ll")
	require.NoError(t, err)

	toks := collect(t, lx)
	require.Len(t, toks, 3) // ls, -l, EOF
	assert.Equal(t, "ls", toks[0].Value)
	assert.Equal(t, "-l", toks[1].Value)
}

func TestLexBytesReturnsErrorOnUnterminatedQuote(t *testing.T) {
	def := participlebridge.NewDefinition()
	_, err := def.LexBytes("test.sh", []byte(`echo "unterminated`))
	assert.Error(t, err)
}

func TestSymbolsIncludesEOFAndWord(t *testing.T) {
	def := participlebridge.NewDefinition()
	symbols := def.Symbols()

	assert.Equal(t, lexer.EOF, symbols["EOF"])
	assert.Equal(t, lexer.TokenType(token.WORD), symbols["WORD"])
	assert.Equal(t, lexer.TokenType(token.LESS), symbols["LESS"])
}
