package stopwatchtest

import (
	"slices"
	"sync"
)

// Recorder is a report sink that keeps every message. Safe for concurrent
// use.
type Recorder struct {
	messages []string
	mu       sync.Mutex
}

// Info records msg.
func (r *Recorder) Info(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, msg)
}

// Messages returns a copy of all recorded messages.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.messages)
}

// Len returns the number of recorded messages.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.messages)
}

// Last returns the most recent message, or "" when none was recorded.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.messages) == 0 {
		return ""
	}

	return r.messages[len(r.messages)-1]
}
