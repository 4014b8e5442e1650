// Package participlebridge adapts this module's lexer+alias pipeline
// into participle's lexer.Definition/lexer.Lexer interfaces (spec.md
// §1: the grammar parser that consumes this token stream is out of
// scope for this module, but needs a concrete, idiomatic attachment
// point). Grounded on parser/lexer/lexer.go's LexerDefinition, which
// exists there for exactly the same reason: to let a hand-written
// lexer plug into participle.MustBuild.
package participlebridge

import (
	"fmt"
	"io"
	"io/ioutil"
	"sync"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/shlexcore/shlex/alias"
	shlexer "github.com/shlexcore/shlex/lexer"
	"github.com/shlexcore/shlex/token"
)

// Definition implements participle's lexer.Definition, running the
// byte-cursor lexer to completion and, when a non-nil Store is
// configured, the alias-expansion pass over its output (spec.md §4.4,
// §4.5). Tokenization is eager (the whole input is lexed up front on
// LexBytes/LexString/Lex), the same way the teacher's own
// ioutil.ReadAll-based Lex reads its whole file before producing the
// first token — there is no benefit to streaming once the grammar
// parser needs random lookahead over the result anyway.
type Definition struct {
	Store alias.Store
}

// NewDefinition builds a Definition with no alias expansion
// configured; set Store afterward to enable it.
func NewDefinition() *Definition {
	return &Definition{}
}

func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("participlebridge: reading input for %s: %w", filename, err)
	}
	return d.LexBytes(filename, b)
}

func (d *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	return d.LexBytes(filename, []byte(input))
}

func (d *Definition) LexBytes(filename string, input []byte) (lexer.Lexer, error) {
	var toks []token.Token
	lx := shlexer.New()
	lx.AppendInput(input)
	status := lx.Tokenize(&toks)
	if status != shlexer.OK {
		if err := lx.GetError(); err != nil {
			return nil, fmt.Errorf("participlebridge: lexing %s: %w", filename, err)
		}
		return nil, fmt.Errorf("participlebridge: lexing %s: status %s", filename, status)
	}

	if d.Store != nil {
		var expanded []token.Token
		tz := alias.New(d.Store)
		aliasStatus := tz.Process(&toks, &expanded)
		if aliasStatus != shlexer.OK {
			if err := tz.GetError(); err != nil {
				return nil, fmt.Errorf("participlebridge: expanding aliases in %s: %w", filename, err)
			}
			return nil, fmt.Errorf("participlebridge: expanding aliases in %s: status %s", filename, aliasStatus)
		}
		toks = expanded
	}

	return &Lexer{filename: filename, input: input, toks: toks}, nil
}

// Symbols implements lexer.Definition, mapping every shell grammar
// token.Type to a participle lexer.TokenType under its Type.String()
// name. "EOF" maps to participle's own lexer.EOF, the type Next
// returns at end of input.
func (d *Definition) Symbols() map[string]lexer.TokenType {
	symbolsOnce.Do(func() {
		cachedSymbols = map[string]lexer.TokenType{
			"EOF": lexer.EOF,
		}
		for t := token.WORD; t <= token.LESS; t++ {
			cachedSymbols[t.String()] = lexer.TokenType(t)
		}
	})
	return cachedSymbols
}

var (
	cachedSymbols map[string]lexer.TokenType
	symbolsOnce   sync.Once
)

// Lexer implements participle's lexer.Lexer over an already-complete
// token.Token slice, rendering each Token's Value as the verbatim
// input bytes it spanned (Start.Offset:End.Offset) rather than
// attempting to re-print Parts, so participle's error messages still
// quote the user's actual source text.
type Lexer struct {
	filename string
	input    []byte
	toks     []token.Token
	pos      int
}

func (l *Lexer) Next() (lexer.Token, error) {
	if l.pos >= len(l.toks) {
		return lexer.Token{
			Type: lexer.EOF,
			Pos:  l.position(len(l.input), l.toks),
		}, nil
	}
	t := l.toks[l.pos]
	l.pos++

	value := ""
	if t.Start.Offset >= 0 && t.End.Offset <= len(l.input) && t.Start.Offset <= t.End.Offset {
		value = string(l.input[t.Start.Offset:t.End.Offset])
	}

	return lexer.Token{
		Type:  lexer.TokenType(t.Type),
		Value: value,
		Pos: lexer.Position{
			Filename: l.filename,
			Offset:   t.Start.Offset,
			Line:     t.Start.Line,
			Column:   t.Start.Column,
		},
	}, nil
}

// position synthesizes the EOF token's position from the last token
// observed, or the start of the buffer if it was empty.
func (l *Lexer) position(offset int, toks []token.Token) lexer.Position {
	if n := len(toks); n > 0 {
		last := toks[n-1].End
		return lexer.Position{Filename: l.filename, Offset: last.Offset, Line: last.Line, Column: last.Column}
	}
	return lexer.Position{Filename: l.filename, Offset: offset, Line: 1, Column: 1}
}
