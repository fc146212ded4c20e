package core

// DefaultHistoryLimit is how many recent messages a room retains.
const DefaultHistoryLimit = 200

// History is a bounded FIFO of recent room messages. Appending beyond
// capacity evicts the oldest entry.
type History struct {
	buf   []Message
	start int
	count int
}

// NewHistory constructs a history buffer with the given capacity.
// Non-positive capacities fall back to DefaultHistoryLimit.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryLimit
	}
	return &History{buf: make([]Message, capacity)}
}

// Append adds a message at the tail, evicting the oldest if full.
func (h *History) Append(m Message) {
	if h.count == len(h.buf) {
		h.buf[h.start] = m
		h.start = (h.start + 1) % len(h.buf)
		return
	}
	h.buf[(h.start+h.count)%len(h.buf)] = m
	h.count++
}

// Snapshot returns the buffered messages oldest-first. The returned slice
// is a copy and stays valid across later appends.
func (h *History) Snapshot() []Message {
	out := make([]Message, h.count)
	for i := 0; i < h.count; i++ {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}
	return out
}

// Len returns the number of buffered messages.
func (h *History) Len() int {
	return h.count
}
