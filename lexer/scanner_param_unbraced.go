package lexer

import "github.com/shlexcore/shlex/token"

// paramUnbracedState tracks progress through an unbraced parameter
// reference ($name, $1, $@, ...). inName distinguishes "still reading
// a multi-byte name" (resumable) from "about to decide what kind of
// reference this is" (spec.md §4.3.1, §3.2).
type paramUnbracedState struct {
	doubleQuoted bool
	inName       bool
	nameStart    int
}

// scanParamUnbraced consumes exactly one parameter reference: a
// single special or digit byte (positional/special parameters are one
// byte wide when unbraced — ${10} requires braces), or the maximal
// run of name bytes for a $name reference.
func (l *Lexer) scanParamUnbraced() Status {
	if l.pu.inName {
		for !l.cur.atEnd() && isNameByte(l.cur.peek()) {
			l.cur.advance()
		}
		if l.cur.atEnd() {
			return INCOMPLETE
		}
		name := string(l.cur.buf[l.pu.nameStart:l.cur.pos])
		l.word.appendPart(token.Part{Kind: token.Parameter, Name: name, ParamKind: token.PLAIN, WasDoubleQuoted: l.pu.doubleQuoted})
		l.modes.pop()
		return OK
	}

	if l.cur.atEnd() {
		return INCOMPLETE
	}
	b := l.cur.peek()
	switch {
	case isNameStart(b):
		l.pu.inName = true
		l.pu.nameStart = l.cur.pos
		return l.scanParamUnbraced()
	case isSpecialParamByte(b):
		l.cur.advance()
		l.word.appendPart(token.Part{Kind: token.Parameter, Name: string(b), ParamKind: token.PLAIN, WasDoubleQuoted: l.pu.doubleQuoted})
		l.modes.pop()
		return OK
	default:
		l.lastErr = newInternalError(l.cur.position(), "PARAM_UNBRACED entered on unexpected byte %q", b)
		return INTERNAL_ERROR
	}
}
