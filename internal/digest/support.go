package digest

import (
	"fmt"
	"time"
)

// Warner receives non-fatal diagnostics (spec.md §7). Fatal conditions are
// returned as errors instead; everything else — clock skew repairs,
// discarded dead branches, orphan non-vendor branches, internal invariant
// breaches — goes through Warner so callers can route it to a log file, a
// test buffer, or nowhere at all.
type Warner interface {
	Warnf(format string, args ...any)
}

// TagService attaches a symbolic tag to a commit (spec.md §6,
// "tag_commit"). The digester never interprets tags itself; it only
// resolves which commit a tag symbol points at and hands it off.
type TagService interface {
	TagCommit(c *Commit, name string)
}

// Clock compares two timestamps. The digester only ever needs ordering,
// never wall-clock access, so it takes this as a seam instead of calling
// time.Time methods directly (spec.md §6, "a monotonic time comparator").
type Clock interface {
	// Compare returns a negative number if a is before b, zero if equal,
	// and a positive number if a is after b.
	Compare(a, b time.Time) int
}

// SystemClock compares time.Time values with their natural ordering.
type SystemClock struct{}

func (SystemClock) Compare(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// NopWarner discards every warning. Useful for callers (and tests) that
// only care about the resulting graph.
type NopWarner struct{}

func (NopWarner) Warnf(string, ...any) {}

// CollectingWarner records warnings in memory, for tests that assert on
// warning text.
type CollectingWarner struct {
	Messages []string
}

func (w *CollectingWarner) Warnf(format string, args ...any) {
	w.Messages = append(w.Messages, fmt.Sprintf(format, args...))
}

// NopTagService discards every tag. Useful for callers that only care
// about the head/branch structure.
type NopTagService struct{}

func (NopTagService) TagCommit(*Commit, string) {}

// CollectingTagService records tags in memory, keyed by commit, for tests.
type CollectingTagService struct {
	Tags map[*Commit][]string
}

func (t *CollectingTagService) TagCommit(c *Commit, name string) {
	if t.Tags == nil {
		t.Tags = make(map[*Commit][]string)
	}
	t.Tags[c] = append(t.Tags[c], name)
}
