package lexer

import "github.com/shlexcore/shlex/token"

type paramBracedPhase int

const (
	pbStart paramBracedPhase = iota
	pbInDigitName
	pbInLetterName
	pbHaveName
	pbInOperand
)

// paramBracedState tracks progress through a braced parameter
// expansion, ${...} (spec.md §3.2, §4.3.1): the '#'/'!' prefix
// decision, the name, the operator, and — for the word-taking
// operators — the raw operand text up to the matching '}'.
type paramBracedState struct {
	doubleQuoted bool
	phase        paramBracedPhase

	length   bool // '#' prefix seen: ${#name}
	indirect bool // '!' prefix seen: ${!name}

	nameStart int
	name      string

	kind         token.ParamKind
	operandStart int
	depth        int
	inSquote     bool
	inDquote     bool
}

func (l *Lexer) scanParamBraced() Status {
	switch l.pb.phase {
	case pbStart:
		return l.pbScanStart()
	case pbInDigitName:
		return l.pbScanDigitName()
	case pbInLetterName:
		return l.pbScanLetterName()
	case pbHaveName:
		return l.pbScanOperator()
	case pbInOperand:
		return l.pbScanOperand()
	default:
		l.lastErr = newInternalError(l.cur.position(), "PARAM_BRACED in unknown phase %d", l.pb.phase)
		return INTERNAL_ERROR
	}
}

// pbScanStart handles the optional '#' (LENGTH) / '!' (INDIRECT)
// prefix and the first byte of the name.
func (l *Lexer) pbScanStart() Status {
	if l.cur.atEnd() {
		return INCOMPLETE
	}
	b := l.cur.peek()

	if b == '#' {
		if l.cur.pos+1 >= len(l.cur.buf) {
			return INCOMPLETE
		}
		if l.cur.peekAhead(1) == '}' {
			// ${#} is the special parameter "#", not LENGTH of nothing.
			l.cur.advance()
			l.pb.name = "#"
			l.pb.phase = pbHaveName
			return OK
		}
		l.pb.length = true
		l.cur.advance()
		return OK
	}

	if b == '!' && !l.pb.length {
		if l.cur.pos+1 >= len(l.cur.buf) {
			return INCOMPLETE
		}
		if l.cur.peekAhead(1) != '}' {
			l.pb.indirect = true
			l.cur.advance()
			return OK
		}
	}

	return l.pbScanNameFirstByte()
}

func (l *Lexer) pbScanNameFirstByte() Status {
	b := l.cur.peek()
	switch {
	case b >= '0' && b <= '9':
		l.pb.nameStart = l.cur.pos
		l.pb.phase = pbInDigitName
		return l.pbScanDigitName()
	case isNameStart(b):
		l.pb.nameStart = l.cur.pos
		l.pb.phase = pbInLetterName
		return l.pbScanLetterName()
	case isSpecialParamByte(b):
		l.cur.advance()
		l.pb.name = string(b)
		l.pb.phase = pbHaveName
		return OK
	default:
		l.lastErr = newSyntaxError(l.cur.position(), "invalid parameter name %q in ${...}", b)
		return ERROR
	}
}

func (l *Lexer) pbScanDigitName() Status {
	for !l.cur.atEnd() && l.cur.peek() >= '0' && l.cur.peek() <= '9' {
		l.cur.advance()
	}
	if l.cur.atEnd() {
		return INCOMPLETE
	}
	l.pb.name = string(l.cur.buf[l.pb.nameStart:l.cur.pos])
	l.pb.phase = pbHaveName
	return OK
}

func (l *Lexer) pbScanLetterName() Status {
	for !l.cur.atEnd() && isNameByte(l.cur.peek()) {
		l.cur.advance()
	}
	if l.cur.atEnd() {
		return INCOMPLETE
	}
	l.pb.name = string(l.cur.buf[l.pb.nameStart:l.cur.pos])
	l.pb.phase = pbHaveName
	return OK
}

// pbScanOperator decides which ParamKind the construct is, consumes
// the operator spelling, and either finishes immediately (PLAIN) or
// transitions into pbInOperand to capture the raw operand text.
func (l *Lexer) pbScanOperator() Status {
	if l.pb.indirect {
		if l.cur.atEnd() {
			return INCOMPLETE
		}
		if l.cur.peek() != '}' {
			l.lastErr = newSyntaxError(l.cur.position(), "operators after ${!%s...} indirection are not supported", l.pb.name)
			return ERROR
		}
		l.cur.advance()
		l.finishParamBraced(token.INDIRECT, "")
		return OK
	}
	if l.pb.length {
		if l.cur.atEnd() {
			return INCOMPLETE
		}
		if l.cur.peek() != '}' {
			l.lastErr = newSyntaxError(l.cur.position(), "operators after ${#%s} length are not supported", l.pb.name)
			return ERROR
		}
		l.cur.advance()
		l.finishParamBraced(token.LENGTH, "")
		return OK
	}

	if l.cur.atEnd() {
		return INCOMPLETE
	}
	b := l.cur.peek()

	switch b {
	case '}':
		l.cur.advance()
		l.finishParamBraced(token.PLAIN, "")
		return OK
	case '#':
		if l.cur.pos+1 >= len(l.cur.buf) {
			return INCOMPLETE
		}
		if l.cur.peekAhead(1) == '#' {
			l.cur.advance()
			l.cur.advance()
			return l.pbStartOperand(token.REMOVE_LARGE_PREFIX)
		}
		l.cur.advance()
		return l.pbStartOperand(token.REMOVE_SMALL_PREFIX)
	case '%':
		if l.cur.pos+1 >= len(l.cur.buf) {
			return INCOMPLETE
		}
		if l.cur.peekAhead(1) == '%' {
			l.cur.advance()
			l.cur.advance()
			return l.pbStartOperand(token.REMOVE_LARGE_SUFFIX)
		}
		l.cur.advance()
		return l.pbStartOperand(token.REMOVE_SMALL_SUFFIX)
	case ':':
		if l.cur.pos+1 >= len(l.cur.buf) {
			return INCOMPLETE
		}
		switch l.cur.peekAhead(1) {
		case '-':
			l.cur.advance()
			l.cur.advance()
			return l.pbStartOperand(token.USE_DEFAULT)
		case '=':
			l.cur.advance()
			l.cur.advance()
			return l.pbStartOperand(token.ASSIGN_DEFAULT)
		case '?':
			l.cur.advance()
			l.cur.advance()
			return l.pbStartOperand(token.ERROR_IF_UNSET)
		case '+':
			l.cur.advance()
			l.cur.advance()
			return l.pbStartOperand(token.USE_ALTERNATE)
		default:
			l.cur.advance()
			return l.pbStartOperand(token.SUBSTRING)
		}
	case '-':
		l.cur.advance()
		return l.pbStartOperand(token.USE_DEFAULT)
	case '=':
		l.cur.advance()
		return l.pbStartOperand(token.ASSIGN_DEFAULT)
	case '?':
		l.cur.advance()
		return l.pbStartOperand(token.ERROR_IF_UNSET)
	case '+':
		l.cur.advance()
		return l.pbStartOperand(token.USE_ALTERNATE)
	default:
		l.lastErr = newSyntaxError(l.cur.position(), "unexpected byte %q after ${%s", b, l.pb.name)
		return ERROR
	}
}

func (l *Lexer) pbStartOperand(kind token.ParamKind) Status {
	l.pb.kind = kind
	l.pb.operandStart = l.cur.pos
	l.pb.depth = 0
	l.pb.inSquote = false
	l.pb.inDquote = false
	l.pb.phase = pbInOperand
	return l.pbScanOperand()
}

func (l *Lexer) pbScanOperand() Status {
	for {
		if l.cur.atEnd() {
			return INCOMPLETE
		}
		b := l.cur.peek()

		if l.pb.inSquote {
			if b == '\'' {
				l.pb.inSquote = false
			}
			l.cur.advance()
			continue
		}
		if l.pb.inDquote {
			if b == '\\' {
				if l.cur.pos+1 >= len(l.cur.buf) {
					return INCOMPLETE
				}
				l.cur.advance()
				l.cur.advance()
				continue
			}
			if b == '"' {
				l.pb.inDquote = false
			}
			l.cur.advance()
			continue
		}

		switch b {
		case '\'':
			l.pb.inSquote = true
			l.cur.advance()
		case '"':
			l.pb.inDquote = true
			l.cur.advance()
		case '\\':
			if l.cur.pos+1 >= len(l.cur.buf) {
				return INCOMPLETE
			}
			l.cur.advance()
			l.cur.advance()
		case '{':
			l.pb.depth++
			l.cur.advance()
		case '}':
			if l.pb.depth == 0 {
				operand := string(l.cur.buf[l.pb.operandStart:l.cur.pos])
				l.cur.advance()
				l.finishParamBraced(l.pb.kind, operand)
				return OK
			}
			l.pb.depth--
			l.cur.advance()
		default:
			l.cur.advance()
		}
	}
}

func (l *Lexer) finishParamBraced(kind token.ParamKind, operand string) {
	l.word.appendPart(token.Part{
		Kind:            token.Parameter,
		Name:            l.pb.name,
		ParamKind:       kind,
		Operand:         operand,
		WasDoubleQuoted: l.pb.doubleQuoted,
	})
	l.modes.pop()
}
