package lexer

import (
	"strings"

	"github.com/shlexcore/shlex/token"
)

// wordBuilder accumulates the Parts of a WORD/ASSIGNMENT_WORD that is
// in progress. A single instance spans both NORMAL and DQUOTE mode
// for the same word (spec.md §4.3.1/§4.3.3): entering and leaving
// DQUOTE never finalizes the word, it only changes which byte-class
// rules apply while appending to the same builder.
type wordBuilder struct {
	parts    []token.Part
	start    token.Position
	hasStart bool
}

func (w *wordBuilder) markStart(pos token.Position) {
	if !w.hasStart {
		w.start = pos
		w.hasStart = true
	}
}

// appendLiteral appends text to the word, coalescing with the last
// Part when its quote flags match (token.CanCoalesce). A quoted empty
// run is still appended as its own Part so that a wholly-empty quoted
// word (`''`, `""`) produces the single-Part representation spec.md
// §3.1 requires; an unquoted empty run is a no-op.
func (w *wordBuilder) appendLiteral(text string, singleQuoted, doubleQuoted bool) {
	if text == "" && !singleQuoted && !doubleQuoted {
		return
	}
	candidate := token.Part{Kind: token.Literal, WasSingleQuoted: singleQuoted, WasDoubleQuoted: doubleQuoted}
	if n := len(w.parts); n > 0 && token.CanCoalesce(w.parts[n-1], candidate) {
		w.parts[n-1].Text += text
		return
	}
	candidate.Text = text
	w.parts = append(w.parts, candidate)
}

func (w *wordBuilder) appendPart(p token.Part) {
	w.parts = append(w.parts, p)
}

func (w *wordBuilder) empty() bool {
	return len(w.parts) == 0
}

// finalize coalesces, computes word-level flags, and — for NORMAL-mode
// words only — attempts assignment-word promotion (spec.md §4.3.9).
// allowAssignment is false for words that must stay a plain WORD:
// finalizeNormalWord passes false for a heredoc delimiter word.
func (w *wordBuilder) finalize(end token.Position, allowAssignment bool) token.Token {
	parts := token.CoalesceParts(w.parts)
	quotedAsWhole := token.WordIsQuotedAsWhole(parts)

	if allowAssignment {
		if name, value, ok := tryPromoteAssignment(parts); ok {
			needsExpansion, needsFieldSplitting, needsPathnameExpansion := token.ComputeWordFlags(value)
			return token.Token{
				Type:                   token.ASSIGNMENT_WORD,
				Start:                  w.start,
				End:                    end,
				Name:                   name,
				Parts:                  value,
				NeedsExpansion:         needsExpansion,
				NeedsFieldSplitting:    needsFieldSplitting,
				NeedsPathnameExpansion: needsPathnameExpansion,
				WasQuoted:              token.WordIsQuotedAsWhole(value),
				HasEqualsBeforeQuote:   true,
			}
		}
	}

	needsExpansion, needsFieldSplitting, needsPathnameExpansion := token.ComputeWordFlags(parts)
	return token.Token{
		Type:                   token.WORD,
		Start:                  w.start,
		End:                    end,
		Parts:                  parts,
		NeedsExpansion:         needsExpansion,
		NeedsFieldSplitting:    needsFieldSplitting,
		NeedsPathnameExpansion: needsPathnameExpansion,
		WasQuoted:              quotedAsWhole,
		HasEqualsBeforeQuote:   hasEqualsBeforeQuote(parts),
	}
}

// hasEqualsBeforeQuote implements spec.md §4.3.9 rule #2: the first
// Part must be an unquoted Literal whose first '=' (at position > 0)
// was reached before any quote or expansion began. Since the first
// Part is exactly the unbroken unquoted-literal run preceding the
// first quote/expansion, checking it in isolation is equivalent to
// tracking a separate "seen quote yet" flag during assembly.
func hasEqualsBeforeQuote(parts []token.Part) bool {
	if len(parts) == 0 {
		return false
	}
	first := parts[0]
	if first.Kind != token.Literal || first.WasSingleQuoted || first.WasDoubleQuoted {
		return false
	}
	return strings.IndexByte(first.Text, '=') > 0
}

// tryPromoteAssignment implements spec.md §4.3.9's promotion rules 1-4.
func tryPromoteAssignment(parts []token.Part) (name string, value []token.Part, ok bool) {
	if !hasEqualsBeforeQuote(parts) {
		return "", nil, false
	}
	first := parts[0]
	idx := strings.IndexByte(first.Text, '=')
	name = first.Text[:idx]
	if !token.IsShellName(name) {
		return "", nil, false
	}
	rest := first.Text[idx+1:]
	if rest == "" && len(parts) == 1 {
		return "", nil, false // rule 4: nothing follows the '='
	}
	if rest != "" {
		value = append(value, token.NewLiteral(rest))
	}
	value = append(value, parts[1:]...)
	return name, value, true
}
