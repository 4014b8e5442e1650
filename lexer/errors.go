package lexer

import (
	"errors"
	"fmt"

	"github.com/shlexcore/shlex/token"
)

// ErrIncomplete names the state of a lexer that is merely awaiting
// more input (spec.md §7). No lexer error returns or wraps it:
// INCOMPLETE is signaled via Status, not via an error value, matching the
// suspension contract in spec.md §4.3 ("no side effects beyond the
// byte cursor's forward progress").
var ErrIncomplete = errors.New("lexer: incomplete input")

// ErrInternal backs InternalError-class failures (spec.md §7):
// invariant violations such as entering HEREDOC_BODY with an empty
// queue, or an unrecognized mode on the stack.
var ErrInternal = errors.New("lexer: internal error")

// SyntaxError is a user-visible error with the line/column the cursor
// had when the error was raised (spec.md §7).
type SyntaxError struct {
	Pos     token.Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// InternalError wraps ErrInternal with a descriptive message and the
// cursor position at the time of failure.
type InternalError struct {
	Pos     token.Position
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%d:%d: internal error: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func (e *InternalError) Unwrap() error { return ErrInternal }

func newSyntaxError(pos token.Position, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func newInternalError(pos token.Position, format string, args ...any) *InternalError {
	return &InternalError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
