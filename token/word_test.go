package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shlexcore/shlex/token"
)

func TestComputeWordFlags(t *testing.T) {
	tests := []struct {
		name                                                         string
		parts                                                        []token.Part
		wantExpansion, wantFieldSplitting, wantPathnameExpansion bool
	}{
		{
			name:  "plain literal needs nothing",
			parts: []token.Part{token.NewLiteral("foo")},
		},
		{
			name:          "tilde needs expansion only, never splitting",
			parts:         []token.Part{{Kind: token.Tilde, Text: ""}},
			wantExpansion: true,
		},
		{
			name:                     "unquoted parameter needs everything",
			parts:                    []token.Part{{Kind: token.Parameter, Name: "x"}},
			wantExpansion:            true,
			wantFieldSplitting:       true,
			wantPathnameExpansion:    true,
		},
		{
			name:          "double-quoted parameter needs expansion only",
			parts:         []token.Part{{Kind: token.Parameter, Name: "x", WasDoubleQuoted: true}},
			wantExpansion: true,
		},
		{
			name:                  "unquoted command substitution needs everything",
			parts:                 []token.Part{{Kind: token.CommandSubst, Text: "echo hi"}},
			wantExpansion:         true,
			wantFieldSplitting:    true,
			wantPathnameExpansion: true,
		},
		{
			name:          "double-quoted arithmetic needs expansion only",
			parts:         []token.Part{{Kind: token.Arithmetic, Text: "1+2", WasDoubleQuoted: true}},
			wantExpansion: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotExpansion, gotFieldSplitting, gotPathnameExpansion := token.ComputeWordFlags(tt.parts)
			assert.Equal(t, tt.wantExpansion, gotExpansion, "needsExpansion")
			assert.Equal(t, tt.wantFieldSplitting, gotFieldSplitting, "needsFieldSplitting")
			assert.Equal(t, tt.wantPathnameExpansion, gotPathnameExpansion, "needsPathnameExpansion")
		})
	}
}

func TestWordIsQuotedAsWhole(t *testing.T) {
	tests := []struct {
		name  string
		parts []token.Part
		want  bool
	}{
		{name: "empty is not quoted as a whole", parts: nil, want: false},
		{name: "unquoted literal is not quoted", parts: []token.Part{token.NewLiteral("foo")}, want: false},
		{
			name:  "single-quoted literal is quoted as a whole",
			parts: []token.Part{token.NewQuotedLiteral("foo", true, false)},
			want:  true,
		},
		{
			name:  "double-quoted literal is quoted as a whole",
			parts: []token.Part{token.NewQuotedLiteral("foo", false, true)},
			want:  true,
		},
		{
			name:  "tilde is never quoted as a whole",
			parts: []token.Part{{Kind: token.Tilde, Text: ""}},
			want:  false,
		},
		{
			name:  "unquoted parameter among quoted literals breaks it",
			parts: []token.Part{token.NewQuotedLiteral("foo", false, true), {Kind: token.Parameter, Name: "x"}},
			want:  false,
		},
		{
			name:  "double-quoted parameter and double-quoted literal together are quoted as a whole",
			parts: []token.Part{token.NewQuotedLiteral("foo", false, true), {Kind: token.Parameter, Name: "x", WasDoubleQuoted: true}},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, token.WordIsQuotedAsWhole(tt.parts))
		})
	}
}

func TestIsSingleUnquotedLiteral(t *testing.T) {
	tests := []struct {
		name     string
		parts    []token.Part
		wantText string
		wantOK   bool
	}{
		{name: "single unquoted literal", parts: []token.Part{token.NewLiteral("foo")}, wantText: "foo", wantOK: true},
		{name: "empty parts", parts: nil, wantOK: false},
		{name: "two parts", parts: []token.Part{token.NewLiteral("a"), token.NewLiteral("b")}, wantOK: false},
		{name: "single-quoted literal does not qualify", parts: []token.Part{token.NewQuotedLiteral("foo", true, false)}, wantOK: false},
		{name: "parameter part does not qualify", parts: []token.Part{{Kind: token.Parameter, Name: "x"}}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := token.IsSingleUnquotedLiteral(tt.parts)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantText, text)
			}
		})
	}
}

func TestIsAllDigits(t *testing.T) {
	assert.True(t, token.IsAllDigits("0"))
	assert.True(t, token.IsAllDigits("12345"))
	assert.False(t, token.IsAllDigits(""))
	assert.False(t, token.IsAllDigits("12a"))
	assert.False(t, token.IsAllDigits("-1"))
}

func TestIsShellName(t *testing.T) {
	assert.True(t, token.IsShellName("foo"))
	assert.True(t, token.IsShellName("_foo123"))
	assert.True(t, token.IsShellName("FOO_BAR"))
	assert.False(t, token.IsShellName(""))
	assert.False(t, token.IsShellName("1foo"))
	assert.False(t, token.IsShellName("foo-bar"))
	assert.False(t, token.IsShellName("foo bar"))
}
