// Package diag implements the digester's diagnostic log sink (spec.md §6,
// "Support services required": warn, a diagnostic log sink). It mirrors
// the teacher's habit of routing every file touch through a
// billy.Filesystem rather than the real OS filesystem directly, so the
// same sink works unmodified against an in-memory filesystem or a real
// one (the demo binary uses osfs).
package diag

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/go-git/go-billy/v5"
)

const billyAppendFlags = os.O_APPEND | os.O_CREATE | os.O_WRONLY

// Sink collects warnings emitted during digestion. It satisfies
// digest.Warner.
type Sink struct {
	mu       sync.Mutex
	fs       billy.Filesystem
	path     string
	Messages []string
}

// NewSink returns a Sink that appends formatted warnings to path on fs, in
// addition to keeping them in memory for callers to inspect. fs may be
// nil, in which case warnings are kept in memory and sent to the stdlib
// log but not written to any file.
func NewSink(fs billy.Filesystem, path string) *Sink {
	return &Sink{fs: fs, path: path}
}

// Warnf formats and records a warning, appending it to the backing file (if
// any) and to the in-process log.
func (s *Sink) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	s.mu.Lock()
	s.Messages = append(s.Messages, msg)
	s.mu.Unlock()

	log.Printf("cvsdigest: warning: %s", msg)

	if s.fs == nil {
		return
	}
	f, err := s.fs.OpenFile(s.path, billyAppendFlags, 0o644)
	if err != nil {
		log.Printf("cvsdigest: warning sink: %v", err)
		return
	}
	defer f.Close()
	if _, err := f.Write([]byte(msg + "\n")); err != nil {
		log.Printf("cvsdigest: warning sink write failed: %v", err)
	}
}
