package client

import "sync"

// Transcript is the append-only message list backing a chat surface.
// Appends are serialized so replies from interleaved calls render one at a
// time, in arrival order.
type Transcript struct {
	mu       sync.Mutex
	entries  []Message
	onAppend func(Message)
}

// NewTranscript creates an empty transcript. onAppend, when non-nil, runs
// once per appended message and is where the surface draws it.
func NewTranscript(onAppend func(Message)) *Transcript {
	return &Transcript{onAppend: onAppend}
}

// Append adds one message to the end of the transcript.
func (t *Transcript) Append(msg Message) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, msg)
	if t.onAppend != nil {
		t.onAppend(msg)
	}
}

// Messages returns a copy of the transcript in append order.
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	copied := make([]Message, len(t.entries))
	copy(copied, t.entries)
	return copied
}
