package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shlexcore/shlex/token"
)

func TestCanCoalesce(t *testing.T) {
	tests := []struct {
		name string
		a, b token.Part
		want bool
	}{
		{
			name: "two unquoted literals coalesce",
			a:    token.NewLiteral("foo"),
			b:    token.NewLiteral("bar"),
			want: true,
		},
		{
			name: "two single-quoted literals coalesce",
			a:    token.NewQuotedLiteral("foo", true, false),
			b:    token.NewQuotedLiteral("bar", true, false),
			want: true,
		},
		{
			name: "unquoted and single-quoted do not coalesce",
			a:    token.NewLiteral("foo"),
			b:    token.NewQuotedLiteral("bar", true, false),
			want: false,
		},
		{
			name: "single-quoted and double-quoted do not coalesce",
			a:    token.NewQuotedLiteral("foo", true, false),
			b:    token.NewQuotedLiteral("bar", false, true),
			want: false,
		},
		{
			name: "literal and parameter never coalesce",
			a:    token.NewLiteral("foo"),
			b:    token.Part{Kind: token.Parameter, Name: "x"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, token.CanCoalesce(tt.a, tt.b))
		})
	}
}

func TestCoalesceParts(t *testing.T) {
	in := []token.Part{
		token.NewLiteral("foo"),
		token.NewLiteral("bar"),
		{Kind: token.Parameter, Name: "x"},
		token.NewQuotedLiteral("a", true, false),
		token.NewQuotedLiteral("b", true, false),
	}
	out := token.CoalesceParts(in)

	want := []token.Part{
		token.NewLiteral("foobar"),
		{Kind: token.Parameter, Name: "x"},
		token.NewQuotedLiteral("ab", true, false),
	}
	assert.Equal(t, want, out)
}
