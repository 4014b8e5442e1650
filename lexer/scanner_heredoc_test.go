package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shlexcore/shlex/lexer/lexertest"
	"github.com/shlexcore/shlex/token"
)

func heredocBody(t *testing.T, toks []token.Token) token.Token {
	t.Helper()
	for _, tk := range toks {
		if tk.Type == token.END_OF_HEREDOC {
			return tk
		}
	}
	t.Fatalf("no END_OF_HEREDOC token in %v", toks)
	return token.Token{}
}

func TestHeredocUnquotedBackslashEscapes(t *testing.T) {
	tests := []struct {
		name string
		body string // heredoc body lines, already newline-joined
		want string
	}{
		{
			name: "backslash-dollar is escaped to a literal dollar",
			body: `\$x` + "\n",
			want: "$x\n",
		},
		{
			name: "backslash-backtick is escaped to a literal backtick",
			body: "\\`cmd`\n",
			want: "`cmd`\n",
		},
		{
			name: "backslash-backslash is escaped to one backslash",
			body: `a\\b` + "\n",
			want: "a\\b\n",
		},
		{
			name: "bare dollar is copied literally, not treated as expansion",
			body: "$x\n",
			want: "$x\n",
		},
		{
			name: "bare backtick is copied literally",
			body: "`cmd`\n",
			want: "`cmd`\n",
		},
		{
			name: "backslash before an ordinary byte stays literal",
			body: `a\nb` + "\n",
			want: `a\nb` + "\n",
		},
		{
			name: "trailing backslash-newline joins physical lines",
			body: "one\\\ntwo\n",
			want: "onetwo\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "cat <<EOF\n" + tt.body + "EOF\n"
			toks := lexertest.MustLex(t, src)
			end := heredocBody(t, toks)
			assert.Equal(t, tt.want, end.Body)
			assert.False(t, end.DelimiterWasQuoted)
		})
	}
}

func TestHeredocQuotedDelimiterSuppressesAllEscapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "backslash-dollar stays literal backslash-dollar", body: `\$x` + "\n", want: `\$x` + "\n"},
		{name: "bare dollar stays literal", body: "$x\n", want: "$x\n"},
		{name: "backslash-backslash stays doubled", body: `a\\b` + "\n", want: `a\\b` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "cat <<'EOF'\n" + tt.body + "EOF\n"
			toks := lexertest.MustLex(t, src)
			end := heredocBody(t, toks)
			assert.Equal(t, tt.want, end.Body)
			assert.True(t, end.DelimiterWasQuoted)
		})
	}
}

func TestHeredocStripTabsDedentsBeforeDelimiterMatch(t *testing.T) {
	src := "cat <<-EOF\n\t\thello\n\tEOF\n"
	toks := lexertest.MustLex(t, src)
	end := heredocBody(t, toks)
	assert.Equal(t, "hello\n", end.Body)
}

func TestHeredocByteAtATimeMatchesOneShot(t *testing.T) {
	src := "cat <<EOF\nhello\\$world\nEOF\n"
	oneShot := lexertest.MustLex(t, src)
	resumed := lexertest.MustLexByteAtATime(t, src)
	assert.Equal(t, heredocBody(t, oneShot).Body, heredocBody(t, resumed).Body)
}
