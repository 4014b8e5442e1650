package lexer

// heredocEntry records a pending heredoc queued by `<<`/`<<-` on the
// current logical line, consumed in order once the next newline is
// crossed (spec.md §3.3, §4.3.10).
type heredocEntry struct {
	delimiter          string
	stripTabs          bool
	delimiterWasQuoted bool

	// insertionTokenIndex is the index, in the provisional token
	// stream, of the redirection token that introduced this entry
	// (spec.md §3.3). The driver fills it in once the token has
	// actually been appended to the caller's output.
	insertionTokenIndex int

	// body accumulates across INCOMPLETE/retry boundaries while the
	// delimiter hasn't been seen yet (spec.md §4.3.10's "partially
	// accumulated body is retained across the retry").
	body []byte
}

// heredocQueue is a FIFO of pending heredocs.
type heredocQueue struct {
	entries []heredocEntry
}

func (q *heredocQueue) push(e heredocEntry) {
	q.entries = append(q.entries, e)
}

func (q *heredocQueue) empty() bool {
	return len(q.entries) == 0
}

// front returns a pointer to the entry at the head of the queue. The
// caller must check empty() first; calling front on an empty queue is
// a driver-level invariant violation (spec.md §7 InternalError).
func (q *heredocQueue) front() *heredocEntry {
	return &q.entries[0]
}

// advance drops the entry at the head of the queue once its body has
// been fully consumed.
func (q *heredocQueue) advance() {
	q.entries = q.entries[1:]
}

func (q *heredocQueue) reset() {
	q.entries = nil
}
