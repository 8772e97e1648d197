// Package digest implements the CVS master digester: it takes the parsed
// representation of a single CVS master (supplied by an external parser
// through the ParsedMaster contract) and produces a topologically coherent
// revision graph for that one file — branch construction, date repair,
// vendor-branch normalisation, branch grafting, symbol resolution, and
// head ordering (spec.md §§1-4).
package digest

import (
	"time"

	"github.com/dbremner/cvs-fast-export/internal/atom"
)

// Commit is one materialised revision (spec.md §3).
type Commit struct {
	Number   atom.RevNum
	Date     time.Time
	Author   atom.Atom
	CommitID atom.Atom
	Log      atom.Atom
	Dead     bool
	Dir      *atom.Dir
	Master   *Master
	Parent   *Commit
	// Tail, when true, means Parent denotes the branch-point commit on a
	// different branch (a graft edge) rather than an intra-branch step.
	Tail bool
	Hash uint64

	// Refcount, Serial, and Tailed are scratch fields reserved for the
	// downstream commit-fusion stage; the digester never reads them.
	Refcount int
	Serial   int
	Tailed   bool
}

// Head is a named or unnamed branch tip (spec.md §3, "ref"). Heads are
// held in the Master.Heads slice rather than chained through a next
// pointer into a singly linked list.
type Head struct {
	Commit  *Commit
	RefName atom.Atom  // nil until named
	Number  atom.RevNum // nil until a branch number is known
	Degree  int
	Parent  *Head // tree-of-heads link, not an intra-branch chain

	// Tail marks heads whose chain has already been grafted and should
	// not be walked again by the grafter (spec.md §4.E).
	Tail bool
}

// Master is the per-file revision graph produced by Digest (spec.md §3,
// "Master graph").
type Master struct {
	Path       string
	FileopName atom.Atom
	Dir        *atom.Dir
	Mode       string

	Heads []*Head

	slab     []Commit
	ncommits int
}

// NewMaster allocates a Master with a commit slab sized to versionCount,
// mirroring build_rev_master's xcalloc of the commit arena in
// original_source/revcvs.c. Commits are addressed by pointer into this
// slab for the life of the Master; nothing is freed independently of it
// (spec.md §3, "Lifecycles").
func NewMaster(path string, mode string, versionCount int) *Master {
	return &Master{
		Path:       path,
		FileopName: atom.Intern(atom.FileopName(path)),
		Dir:        atom.InternDir(atom.Intern(dirNameOf(path))),
		Mode:       mode,
		slab:       make([]Commit, versionCount),
	}
}

func dirNameOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return ""
}

// allocCommit returns the next free commit in the slab.
func (m *Master) allocCommit() *Commit {
	c := &m.slab[m.ncommits]
	m.ncommits++
	return c
}

// FindRevision performs cvs_master_find_revision: a linear scan over every
// head's chain (skipping already-grafted heads) for a commit matching
// number exactly.
func (m *Master) FindRevision(number atom.RevNum) *Commit {
	for _, h := range m.Heads {
		if h.Tail {
			continue
		}
		for c := h.Commit; c != nil; c = c.Parent {
			if c.Number == number {
				return c
			}
			if c.Tail {
				break
			}
		}
	}
	return nil
}

// FindBranch performs cvs_master_find_branch: walk number upward, two
// components at a time, looking for a head on that branch line.
func (m *Master) FindBranch(number atom.RevNum) *Head {
	if number.Len() < 2 {
		return nil
	}
	n := number
	for n.Len() >= 2 {
		for _, h := range m.Heads {
			if h.Number != nil && h.Number.SameBranch(n) {
				return h
			}
		}
		next, ok := n.DropLast(2)
		if !ok {
			break
		}
		n = next
	}
	return nil
}

// AddHead appends a new, unnamed-or-named head pointing at commit and
// returns it (rev_list_add_head).
func (m *Master) AddHead(commit *Commit, name atom.Atom, degree int) *Head {
	h := &Head{Commit: commit, RefName: name, Degree: degree}
	m.Heads = append(m.Heads, h)
	return h
}
