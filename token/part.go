package token

import "fmt"

// ParamKind enumerates the parameter-expansion operators recognized by
// the PARAM_BRACED and PARAM_UNBRACED sub-scanners (spec.md §3.2).
type ParamKind int

const (
	PLAIN ParamKind = iota
	LENGTH
	SUBSTRING
	USE_DEFAULT
	ASSIGN_DEFAULT
	ERROR_IF_UNSET
	USE_ALTERNATE
	REMOVE_SMALL_PREFIX
	REMOVE_LARGE_PREFIX
	REMOVE_SMALL_SUFFIX
	REMOVE_LARGE_SUFFIX
	INDIRECT
)

func (k ParamKind) String() string {
	switch k {
	case PLAIN:
		return "PLAIN"
	case LENGTH:
		return "LENGTH"
	case SUBSTRING:
		return "SUBSTRING"
	case USE_DEFAULT:
		return "USE_DEFAULT"
	case ASSIGN_DEFAULT:
		return "ASSIGN_DEFAULT"
	case ERROR_IF_UNSET:
		return "ERROR_IF_UNSET"
	case USE_ALTERNATE:
		return "USE_ALTERNATE"
	case REMOVE_SMALL_PREFIX:
		return "REMOVE_SMALL_PREFIX"
	case REMOVE_LARGE_PREFIX:
		return "REMOVE_LARGE_PREFIX"
	case REMOVE_SMALL_SUFFIX:
		return "REMOVE_SMALL_SUFFIX"
	case REMOVE_LARGE_SUFFIX:
		return "REMOVE_LARGE_SUFFIX"
	case INDIRECT:
		return "INDIRECT"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// PartKind discriminates the Part sum type (spec.md §3.2).
type PartKind int

const (
	Literal PartKind = iota
	Parameter
	CommandSubst
	Arithmetic
	Tilde
)

// Part is one semantic fragment of a WORD. Only the fields relevant to
// Kind are meaningful; the zero value of the others is ignored.
//
// Literal:      Text, WasSingleQuoted, WasDoubleQuoted
// Parameter:    Name, ParamKind, Operand, WasDoubleQuoted
// CommandSubst: Text (raw, unparsed inner bytes), WasDoubleQuoted
// Arithmetic:   Text (raw inner expression), WasDoubleQuoted
// Tilde:        Text (bytes after '~'); never quoted
type Part struct {
	Kind PartKind

	Text string

	WasSingleQuoted bool
	WasDoubleQuoted bool

	Name      string
	ParamKind ParamKind
	Operand   string // raw, un-lexed word-operand text (e.g. the "default" in ${v:-default})
}

func (p Part) String() string {
	switch p.Kind {
	case Literal:
		q := ""
		switch {
		case p.WasSingleQuoted:
			q = "sq"
		case p.WasDoubleQuoted:
			q = "dq"
		}
		if q == "" {
			return fmt.Sprintf("L(%q)", p.Text)
		}
		return fmt.Sprintf("L(%q)·%s", p.Text, q)
	case Parameter:
		if p.Operand != "" {
			return fmt.Sprintf("P(%q,%s,%q)", p.Name, p.ParamKind, p.Operand)
		}
		return fmt.Sprintf("P(%q)", p.Name)
	case CommandSubst:
		return fmt.Sprintf("CS(%q)", p.Text)
	case Arithmetic:
		return fmt.Sprintf("A(%q)", p.Text)
	case Tilde:
		return fmt.Sprintf("~(%q)", p.Text)
	default:
		return fmt.Sprintf("Part(kind=%d)", int(p.Kind))
	}
}

// NewLiteral builds an unquoted Literal part.
func NewLiteral(text string) Part { return Part{Kind: Literal, Text: text} }

// NewQuotedLiteral builds a Literal part carrying exactly one of the
// two mutually-exclusive quote flags (spec.md §3.2 invariant).
func NewQuotedLiteral(text string, singleQuoted, doubleQuoted bool) Part {
	return Part{Kind: Literal, Text: text, WasSingleQuoted: singleQuoted, WasDoubleQuoted: doubleQuoted}
}

// CanCoalesce reports whether two adjacent Literal parts may be merged
// into one (spec.md §3.2: unquoted Literals MUST coalesce; Literals
// with differing quote flags MUST remain separate — same-quoted
// Literals are allowed, and chosen here, to coalesce too).
func CanCoalesce(a, b Part) bool {
	return a.Kind == Literal && b.Kind == Literal &&
		a.WasSingleQuoted == b.WasSingleQuoted &&
		a.WasDoubleQuoted == b.WasDoubleQuoted
}

// CoalesceParts merges adjacent Literal parts whose quote flags match
// (see CanCoalesce), preserving order. For two or more parts it
// returns a new slice and leaves parts unchanged. It is the canonical
// enforcement point for the
// spec.md §3.2 coalescing invariant and is called once, at word
// finalization.
func CoalesceParts(parts []Part) []Part {
	if len(parts) < 2 {
		return parts
	}
	out := make([]Part, 0, len(parts))
	for _, p := range parts {
		if n := len(out); n > 0 && CanCoalesce(out[n-1], p) {
			out[n-1].Text += p.Text
			continue
		}
		out = append(out, p)
	}
	return out
}
