package alias

import (
	"fmt"

	"github.com/shlexcore/shlex/lexer"
	"github.com/shlexcore/shlex/token"
)

// DefaultMaxDepth bounds alias-expansion recursion (spec.md §4.5, §5).
const DefaultMaxDepth = 32

// commandPositionWords are the reserved words whose unquoted literal
// text, standing alone as a WORD, puts the tokenizer back into
// command position (spec.md §4.5). The lexer itself never promotes
// these to a dedicated token type (spec.md §9's reserved-word design
// note), so they are recognized here by text alone, the same way a
// real shell's alias pass runs ahead of keyword recognition.
var commandPositionWords = map[string]bool{
	"if": true, "then": true, "else": true, "elif": true,
	"do": true, "while": true, "until": true, "for": true,
	"case": true, "{": true,
}

func entersCommandPosition(t token.Type) bool {
	switch t {
	case token.NEWLINE, token.SEMI, token.AMPER, token.PIPE,
		token.AND_IF, token.OR_IF, token.LPAREN, token.DSEMI:
		return true
	default:
		return false
	}
}

// Tokenizer is the alias-expansion pass over a lexer's token stream
// (spec.md §6.2).
type Tokenizer struct {
	store    Store
	maxDepth int
	lastErr  error
}

// New creates a Tokenizer bound to store, using DefaultMaxDepth.
func New(store Store) *Tokenizer {
	return &Tokenizer{store: store, maxDepth: DefaultMaxDepth}
}

// GetError returns the error recorded by the most recent Process call
// that returned a non-OK status, if any.
func (tz *Tokenizer) GetError() error { return tz.lastErr }

// Destroy releases any resources held by the tokenizer; Go's GC makes
// this a no-op, kept to round out the spec.md §6.2 surface.
func (tz *Tokenizer) Destroy() {}

// queueItem is either a real token or a popMarker that closes out one
// alias's scope on the recursion-guard stack once every token it
// spliced in has been consumed (spec.md §4.5's expansion stack).
// setAtCmd carries the POSIX trailing-blank rule (spec.md §4.5,
// GLOSSARY) across the whole span of spliced tokens: it must take
// effect only once the alias's own expansion has been fully consumed,
// for the real token that follows it, not for the expansion's own
// first word.
type queueItem struct {
	tok token.Token

	popMarker bool
	popName   string
	setAtCmd  bool
}

// Process consumes in (leaving it empty) and appends the alias-
// expanded, IO_NUMBER-promoted token sequence to out (spec.md §4.5,
// §6.2).
func (tz *Tokenizer) Process(in *[]token.Token, out *[]token.Token) lexer.Status {
	tz.lastErr = nil

	queue := make([]queueItem, 0, len(*in))
	for _, t := range *in {
		queue = append(queue, queueItem{tok: t})
	}
	*in = (*in)[:0]

	var stack []string
	atCmd := true

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.popMarker {
			stack = removeName(stack, item.popName)
			if item.setAtCmd {
				atCmd = true
			}
			continue
		}
		tok := item.tok

		if atCmd {
			if name, eligible := aliasEligible(tok, stack); eligible {
				if value, ok := tz.store.GetValue(name); ok {
					if len(stack)+1 > tz.maxDepth {
						tz.lastErr = fmt.Errorf("alias expansion depth exceeded %d at %q", tz.maxDepth, name)
						return lexer.ERROR
					}
					expansion, relErr := relex(value)
					if relErr != nil {
						tz.lastErr = fmt.Errorf("failed to re-lex alias expansion: %w", relErr)
						return lexer.ERROR
					}

					spliced := make([]queueItem, 0, len(expansion)+1)
					for _, et := range expansion {
						spliced = append(spliced, queueItem{tok: et})
					}
					spliced = append(spliced, queueItem{popMarker: true, popName: name, setAtCmd: endsInBlank(value)})
					queue = append(spliced, queue...)

					stack = append(stack, name)
					continue
				}
			}
		}

		if tok.Type == token.WORD {
			if nextType, hasNext := peekType(queue); hasNext && token.IsRedirectionOperator(nextType) {
				if digits, ok := token.IsSingleUnquotedLiteral(tok.Parts); ok && token.IsAllDigits(digits) {
					tok.Type = token.IO_NUMBER
					tok.Number = parseDigits(digits)
					tok.Parts = nil
				}
			}
		}

		*out = append(*out, tok)

		switch {
		case tok.Type == token.WORD:
			if isCommandPositionKeyword(tok) {
				atCmd = true
				stack = stack[:0]
			} else {
				atCmd = false
			}
		case entersCommandPosition(tok.Type):
			atCmd = true
			stack = stack[:0]
		default:
			atCmd = false
		}
	}

	return lexer.OK
}

// aliasEligible implements the four eligibility rules of spec.md §4.5
// that don't depend on position (position — at_command_position — is
// checked by the caller).
func aliasEligible(tok token.Token, stack []string) (name string, ok bool) {
	if tok.Type != token.WORD {
		return "", false
	}
	text, isLiteral := token.IsSingleUnquotedLiteral(tok.Parts)
	if !isLiteral {
		return "", false
	}
	if containsName(stack, text) {
		return "", false
	}
	return text, true
}

func isCommandPositionKeyword(tok token.Token) bool {
	text, ok := token.IsSingleUnquotedLiteral(tok.Parts)
	return ok && commandPositionWords[text]
}

func containsName(stack []string, name string) bool {
	for _, s := range stack {
		if s == name {
			return true
		}
	}
	return false
}

func removeName(stack []string, name string) []string {
	for i, s := range stack {
		if s == name {
			return append(stack[:i], stack[i+1:]...)
		}
	}
	return stack
}

// endsInBlank reports whether an alias's replacement text ends in a
// space or tab, triggering the POSIX trailing-blank rule (spec.md
// §4.5, GLOSSARY).
func endsInBlank(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	last := value[len(value)-1]
	return last == ' ' || last == '\t'
}

// peekType returns the type of the first real (non-popMarker) token
// still queued, used for IO_NUMBER promotion's one-token lookahead.
func peekType(queue []queueItem) (token.Type, bool) {
	for _, item := range queue {
		if item.popMarker {
			continue
		}
		return item.tok.Type, true
	}
	return 0, false
}

func parseDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// relex tokenizes an alias's replacement bytes to completion. A
// replacement that doesn't lex to a clean OK (e.g. an unterminated
// quote) is a re-lex error, wrapped by the caller per spec.md §7.
func relex(value []byte) ([]token.Token, error) {
	lx := lexer.New()
	lx.AppendInput(value)
	var toks []token.Token
	status := lx.Tokenize(&toks)
	if status != lexer.OK {
		if err := lx.GetError(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("lexer status %s", status)
	}
	return toks, nil
}
