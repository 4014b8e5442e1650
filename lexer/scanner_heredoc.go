package lexer

import "github.com/shlexcore/shlex/token"

// heredocBodyState is empty: all progress is recorded either in the
// cursor (how far we've scanned) or in the heredocEntry itself (the
// body accumulated so far), so there is nothing else to remember
// across an INCOMPLETE/resume boundary (spec.md §4.3.10).
type heredocBodyState struct{}

// scanHeredocBody consumes complete lines until one matches the
// current heredoc's delimiter (after optional leading-tab stripping),
// emits END_OF_HEREDOC, and advances to the next queued heredoc or
// back to NORMAL (spec.md §3.3, §4.3.10). A line is only judged once
// its trailing newline has actually arrived; an incomplete trailing
// line always yields INCOMPLETE rather than guessing.
func (l *Lexer) scanHeredocBody() Status {
	if l.hd.empty() {
		l.lastErr = newInternalError(l.cur.position(), "HEREDOC_BODY entered with empty heredoc queue")
		return INTERNAL_ERROR
	}
	entry := l.hd.front()

	for {
		lineStart := l.cur.pos
		nlIdx := -1
		for i := lineStart; i < len(l.cur.buf); i++ {
			if l.cur.buf[i] == '\n' {
				nlIdx = i
				break
			}
		}
		if nlIdx == -1 {
			return INCOMPLETE
		}

		line := l.cur.buf[lineStart:nlIdx]
		if entry.stripTabs {
			line = stripLeadingTabs(line)
		}

		if string(line) == entry.delimiter {
			for l.cur.pos <= nlIdx {
				l.cur.advance()
			}
			l.emitEndOfHeredoc(entry)
			l.hd.advance()
			if l.hd.empty() {
				l.modes.pop()
				return OK
			}
			entry = l.hd.front()
			continue
		}

		appendHeredocLine(entry, line, entry.delimiterWasQuoted)
		for l.cur.pos <= nlIdx {
			l.cur.advance()
		}
	}
}

// appendHeredocLine appends one physical line's worth of content to
// entry.body (spec.md §4.3.10). A quoted delimiter means every byte,
// including backslash, is copied verbatim. An unquoted delimiter means
// backslash escapes only $, `, \, and newline; backslash-newline joins
// this line directly onto the next with no intervening newline, and
// any other backslash is kept as a literal byte.
func appendHeredocLine(entry *heredocEntry, line []byte, quoted bool) {
	if quoted {
		entry.body = append(entry.body, line...)
		entry.body = append(entry.body, '\n')
		return
	}

	for i := 0; i < len(line); i++ {
		b := line[i]
		if b != '\\' {
			entry.body = append(entry.body, b)
			continue
		}
		if i == len(line)-1 {
			// Backslash immediately before the line's terminating
			// newline: drop both, joining onto the next physical line.
			return
		}
		nb := line[i+1]
		if nb == '$' || nb == '`' || nb == '\\' {
			entry.body = append(entry.body, nb)
			i++
			continue
		}
		entry.body = append(entry.body, b)
	}
	entry.body = append(entry.body, '\n')
}

func stripLeadingTabs(line []byte) []byte {
	i := 0
	for i < len(line) && line[i] == '\t' {
		i++
	}
	return line[i:]
}

func (l *Lexer) emitEndOfHeredoc(entry *heredocEntry) {
	pos := l.cur.position()
	l.emit(token.Token{
		Type:               token.END_OF_HEREDOC,
		Start:              pos,
		End:                pos,
		Delimiter:          entry.delimiter,
		Body:               string(entry.body),
		DelimiterWasQuoted: entry.delimiterWasQuoted,
	})
}
