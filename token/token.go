// Package token defines the grammar token and word-part model produced
// by the lexer and consumed by the alias tokenizer and, ultimately, a
// parser outside this module's scope.
package token

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Position reuses participle's line/column/offset triple instead of a
// parallel span type; every Token carries two (Start and End). Parts
// carry no position of their own.
type Position = lexer.Position

// Type identifies the grammar category of a Token.
type Type int

const (
	EOF Type = iota
	WORD
	ASSIGNMENT_WORD
	IO_NUMBER
	IO_LOCATION
	NEWLINE
	END_OF_HEREDOC

	// Operators
	AND_IF
	OR_IF
	DSEMI
	DLESS
	DGREAT
	LESSAND
	GREATAND
	LESSGREAT
	DLESSDASH
	CLOBBER
	PIPE
	SEMI
	AMPER
	LPAREN
	RPAREN
	GREATER
	LESS
)

//go:generate stringer -type=Type
func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WORD:
		return "WORD"
	case ASSIGNMENT_WORD:
		return "ASSIGNMENT_WORD"
	case IO_NUMBER:
		return "IO_NUMBER"
	case IO_LOCATION:
		return "IO_LOCATION"
	case NEWLINE:
		return "NEWLINE"
	case END_OF_HEREDOC:
		return "END_OF_HEREDOC"
	case AND_IF:
		return "AND_IF"
	case OR_IF:
		return "OR_IF"
	case DSEMI:
		return "DSEMI"
	case DLESS:
		return "DLESS"
	case DGREAT:
		return "DGREAT"
	case LESSAND:
		return "LESSAND"
	case GREATAND:
		return "GREATAND"
	case LESSGREAT:
		return "LESSGREAT"
	case DLESSDASH:
		return "DLESSDASH"
	case CLOBBER:
		return "CLOBBER"
	case PIPE:
		return "PIPE"
	case SEMI:
		return "SEMI"
	case AMPER:
		return "AMPER"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case GREATER:
		return "GREATER"
	case LESS:
		return "LESS"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// operatorText maps the fixed-text operator token types to their
// canonical spelling, used by Token.String through OperatorText.
var operatorText = map[Type]string{
	AND_IF: "&&", OR_IF: "||", DSEMI: ";;", DLESS: "<<", DGREAT: ">>",
	LESSAND: "<&", GREATAND: ">&", LESSGREAT: "<>", DLESSDASH: "<<-",
	CLOBBER: ">|", PIPE: "|", SEMI: ";", AMPER: "&", LPAREN: "(",
	RPAREN: ")", GREATER: ">", LESS: "<",
}

// OperatorText returns the canonical spelling of an operator token
// type, or "" if t is not an operator.
func OperatorText(t Type) string { return operatorText[t] }

// IsRedirectionOperator reports whether t can be preceded by an
// IO_NUMBER (spec.md §4.5's IO_NUMBER-promotion trigger set).
func IsRedirectionOperator(t Type) bool {
	switch t {
	case LESS, GREATER, DGREAT, DLESS, DLESSDASH, LESSAND, GREATAND, LESSGREAT, CLOBBER:
		return true
	default:
		return false
	}
}

// Token is one grammar token in the lexer's output stream.
type Token struct {
	Type Type

	Start Position // first byte of the token
	End   Position // just past the last byte of the token

	// WORD / ASSIGNMENT_WORD value.
	Parts []Part

	// ASSIGNMENT_WORD name (the bytes before "=").
	Name string

	// IO_NUMBER value.
	Number int

	// IO_LOCATION inner text ("{fd}").
	Location string

	// END_OF_HEREDOC payload.
	Delimiter          string
	Body               string
	DelimiterWasQuoted bool

	// WORD-level flags (spec.md §3.1).
	NeedsExpansion          bool
	NeedsFieldSplitting     bool
	NeedsPathnameExpansion  bool
	WasQuoted               bool
	HasEqualsBeforeQuote    bool
}

// String renders a token for debugging; it is not a serialization
// format. Production token dumps go through repr (see cmd/shlexdump).
func (t Token) String() string {
	switch t.Type {
	case WORD, ASSIGNMENT_WORD:
		return fmt.Sprintf("%s%v", t.Type, t.Parts)
	case IO_NUMBER:
		return fmt.Sprintf("IO_NUMBER(%d)", t.Number)
	case IO_LOCATION:
		return fmt.Sprintf("IO_LOCATION{%s}", t.Location)
	case END_OF_HEREDOC:
		return fmt.Sprintf("END_OF_HEREDOC{delimiter=%q}", t.Delimiter)
	default:
		if text := OperatorText(t.Type); text != "" {
			return text
		}
		return t.Type.String()
	}
}

// EOF reports whether t is the sentinel end-of-file token.
func (t Token) EOF() bool { return t.Type == EOF }
