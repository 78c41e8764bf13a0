// Package notices delivers non-blocking user-facing confirmations and
// failure notices (the toast surface of the original UI).
package notices

import (
	"fmt"
	"io"
	"sync"
)

// Level indicates how a notice should be presented.
type Level string

const (
	LevelInfo        Level = "info"
	LevelDestructive Level = "destructive"
)

// Notice is a single user-facing message.
type Notice struct {
	Title   string
	Message string
	Level   Level
}

// Sink receives notices. Posting never blocks the caller's flow and
// never fails.
type Sink interface {
	Post(notice Notice)
}

// WriterSink prints notices to an io.Writer, one per line.
type WriterSink struct {
	W io.Writer
}

func (s *WriterSink) Post(n Notice) {
	prefix := ""
	if n.Level == LevelDestructive {
		prefix = "! "
	}
	fmt.Fprintf(s.W, "%s%s: %s\n", prefix, n.Title, n.Message)
}

// Recorder captures notices for inspection in tests.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Post(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// All returns a copy of the recorded notices.
func (r *Recorder) All() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Discard drops every notice.
type Discard struct{}

func (Discard) Post(Notice) {}
