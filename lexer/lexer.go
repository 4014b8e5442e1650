// Package lexer implements the mode-stack driven POSIX shell scanner:
// the byte cursor, mode stack, sub-scanners, heredoc queue, and the
// driver loop that ties them together into a single Tokenize call
// (spec.md §2, §4).
package lexer

import (
	"github.com/shlexcore/shlex/token"
)

// Lexer is the mode-stack driven scanner described in spec.md §2.
// All state needed to suspend mid-construct and resume on the next
// AppendInput/Tokenize call lives here — there is no module-level
// mutable state (spec.md §9 "Global/mutable state").
type Lexer struct {
	cur   *cursor
	modes modeStack
	hd    heredocQueue

	word   *wordBuilder // in-progress WORD/ASSIGNMENT_WORD, or nil
	tilde  *tildeState  // in-progress Tilde Part within word, or nil

	sq  squoteState
	dq  dquoteState
	pb  paramBracedState
	pu  paramUnbracedState
	csp cmdSubstParenState
	csb cmdSubstBacktickState
	ar  arithState
	hb  heredocBodyState

	// hdAwait is non-nil when the next WORD finalized in NORMAL mode is
	// the delimiter of a heredoc just queued by `<<`/`<<-`.
	hdAwait *pendingHeredocAwait

	lastErr error

	// out is the caller's output slice for the current Tokenize call;
	// valid only for the duration of that call.
	out *[]token.Token
}

// New creates a ready-to-use Lexer (spec.md §6.1 create()).
func New() *Lexer {
	return &Lexer{cur: newCursor()}
}

// AppendInput deep-copies b onto the end of the pending input buffer;
// the caller retains ownership of b (spec.md §6.1).
func (l *Lexer) AppendInput(b []byte) {
	l.cur.appendInput(b)
}

// GetError returns the last SyntaxError/InternalError recorded, if
// any (spec.md §6.1).
func (l *Lexer) GetError() error {
	return l.lastErr
}

// Reset clears all lexer state so the Lexer can be reused (spec.md
// §6.1). A SyntaxError leaves the lexer exactly as Reset expects:
// Reset is the only way out of it.
func (l *Lexer) Reset() {
	l.cur.reset()
	l.modes.reset()
	l.hd.reset()
	l.word = nil
	l.tilde = nil
	l.sq = squoteState{}
	l.dq = dquoteState{}
	l.pb = paramBracedState{}
	l.pu = paramUnbracedState{}
	l.csp = cmdSubstParenState{}
	l.csb = cmdSubstBacktickState{}
	l.ar = arithState{}
	l.hb = heredocBodyState{}
	l.hdAwait = nil
	l.lastErr = nil
}

// Destroy releases any resources held by the lexer. Go's GC makes
// this a no-op, kept only to round out the spec.md §6.1 surface for
// callers porting code from a manual-memory original.
func (l *Lexer) Destroy() {}

// Tokenize appends newly produced tokens to out and returns the
// resulting Status (spec.md §4.4, §6.1). It loops the current mode's
// sub-scanner until one of: a non-OK status, or the input is
// exhausted at a clean boundary (EOF).
func (l *Lexer) Tokenize(out *[]token.Token) Status {
	l.out = out
	defer func() { l.out = nil }()

	for {
		if l.atCleanEOF() {
			return OK
		}

		status := l.step()
		switch status {
		case OK:
			continue
		case INCOMPLETE:
			return INCOMPLETE
		case ERROR, INTERNAL_ERROR:
			return status
		}
	}
}

// LexToTokens is the one-shot convenience wrapper from spec.md §4.4.
func LexToTokens(input []byte, out *[]token.Token) Status {
	l := New()
	l.AppendInput(input)
	return l.Tokenize(out)
}

// atCleanEOF implements spec.md §4.4's implicit-EOF rule: true
// end-of-buffer, in NORMAL mode, no in-progress word, empty heredoc
// queue.
func (l *Lexer) atCleanEOF() bool {
	return l.cur.atEnd() && l.modes.current() == NORMAL && l.word == nil && l.hd.empty()
}

// step asks the current mode's sub-scanner to make one unit of
// progress, per the sub-scanner contract in spec.md §4.3.
func (l *Lexer) step() Status {
	switch l.modes.current() {
	case NORMAL:
		return l.scanNormal()
	case SQUOTE:
		return l.scanSquote()
	case DQUOTE:
		return l.scanDquote()
	case PARAM_BRACED:
		return l.scanParamBraced()
	case PARAM_UNBRACED:
		return l.scanParamUnbraced()
	case CMD_SUBST_PAREN:
		return l.scanCmdSubstParen()
	case CMD_SUBST_BACKTICK:
		return l.scanCmdSubstBacktick()
	case ARITH:
		return l.scanArith()
	case HEREDOC_BODY:
		return l.scanHeredocBody()
	default:
		l.lastErr = newInternalError(l.cur.position(), "unknown mode on stack: %d", l.modes.current())
		return INTERNAL_ERROR
	}
}

func (l *Lexer) emit(t token.Token) {
	*l.out = append(*l.out, t)
}

// ensureWord returns the in-progress word builder, creating it if
// needed.
func (l *Lexer) ensureWord() *wordBuilder {
	if l.word == nil {
		l.word = &wordBuilder{}
	}
	return l.word
}
