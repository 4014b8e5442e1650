package lexer

import "github.com/shlexcore/shlex/internal/log"

// Mode selects which sub-scanner runs next (spec.md §2 item 2, §4.2).
type Mode int

const (
	NORMAL Mode = iota
	SQUOTE
	DQUOTE
	PARAM_BRACED
	PARAM_UNBRACED
	CMD_SUBST_PAREN
	CMD_SUBST_BACKTICK
	ARITH
	HEREDOC_BODY
)

func (m Mode) String() string {
	switch m {
	case NORMAL:
		return "NORMAL"
	case SQUOTE:
		return "SQUOTE"
	case DQUOTE:
		return "DQUOTE"
	case PARAM_BRACED:
		return "PARAM_BRACED"
	case PARAM_UNBRACED:
		return "PARAM_UNBRACED"
	case CMD_SUBST_PAREN:
		return "CMD_SUBST_PAREN"
	case CMD_SUBST_BACKTICK:
		return "CMD_SUBST_BACKTICK"
	case ARITH:
		return "ARITH"
	case HEREDOC_BODY:
		return "HEREDOC_BODY"
	default:
		return "Mode(?)"
	}
}

// modeStack is a stack of scanner modes. An empty stack is defined to
// yield NORMAL; pop underflow is a tolerated no-op that logs a
// warning, since it indicates a scanner imbalance (spec.md §4.2).
type modeStack struct {
	stack []Mode
}

func (s *modeStack) push(m Mode) {
	s.stack = append(s.stack, m)
}

func (s *modeStack) pop() Mode {
	if len(s.stack) == 0 {
		log.Warnf("lexer: mode stack underflow on pop, returning NORMAL")
		return NORMAL
	}
	n := len(s.stack) - 1
	m := s.stack[n]
	s.stack = s.stack[:n]
	return m
}

func (s *modeStack) current() Mode {
	if len(s.stack) == 0 {
		return NORMAL
	}
	return s.stack[len(s.stack)-1]
}

func (s *modeStack) contains(m Mode) bool {
	for _, x := range s.stack {
		if x == m {
			return true
		}
	}
	return false
}

func (s *modeStack) reset() {
	s.stack = s.stack[:0]
}
