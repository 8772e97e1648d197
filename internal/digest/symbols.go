package digest

import (
	"github.com/dbremner/cvs-fast-export/internal/atom"
)

// ResolveSymbols turns symbolic names into either branch-head labels or
// per-commit tags, synthesises names for unnamed branches, and discards
// all-dead untagged branches (spec.md §4.F).
func ResolveSymbols(m *Master, pm ParsedMaster, tags TagService, warn Warner) {
	for _, s := range pm.Symbols() {
		if s.Number.IsHeadSymbolForm() {
			resolveHeadSymbol(m, s)
		} else if c := m.FindRevision(s.Number); c != nil {
			tags.TagCommit(c, s.Name.String())
		}
	}

	fixUpUnnamedHeads(m, warn)
	m.Heads = discardZeroHeads(m.Heads)
	linkHeadTree(m, warn)
}

// resolveHeadSymbol implements the "Head symbol" case of spec.md §4.F.
func resolveHeadSymbol(m *Master, s Symbol) {
	branchID := s.Number.BranchTag()

	var h *Head
	for _, candidate := range m.Heads {
		if candidate.Commit != nil {
			if tip, ok := candidate.Commit.Number.DropLast(1); ok && tip == branchID {
				h = candidate
				break
			}
		}
	}

	if h != nil {
		if h.RefName == nil {
			h.RefName = s.Name
			h.Degree = s.Number.Degree()
		} else {
			h = m.AddHead(h.Commit, s.Name, s.Number.Degree())
		}
	} else {
		n := s.Number
		var found *Commit
		for n.Len() >= 4 {
			next, ok := n.DropLast(2)
			if !ok {
				break
			}
			n = next
			if c := m.FindRevision(n); c != nil {
				found = c
				break
			}
		}
		if found != nil {
			h = m.AddHead(found, s.Name, s.Number.Degree())
		}
	}

	if h != nil {
		h.Number = s.Number
	}
}

// fixUpUnnamedHeads gives every still-unnamed head a synthetic branch tag
// derived from its first non-dead commit, or marks it for discard if the
// whole branch is dead and untagged (spec.md §4.F, "After symbol
// processing" step 1).
func fixUpUnnamedHeads(m *Master, warn Warner) {
	for _, h := range m.Heads {
		if h.RefName != nil {
			continue
		}

		// Stop at the branch root: a Tail commit's Parent is on another
		// branch.
		var first *Commit
		for c := h.Commit; c != nil; c = c.Parent {
			if !c.Dead {
				first = c
				break
			}
			if c.Tail {
				break
			}
		}

		if first == nil {
			h.Number = atom.Zero
			warn.Warnf("discarding dead untagged branch %s", h.Commit.Number)
			continue
		}

		n := atom.BranchNumberFromCommit(first.Number)
		h.Number = n
		h.Degree = n.Degree()
	}
}

func discardZeroHeads(heads []*Head) []*Head {
	out := heads[:0:0]
	for _, h := range heads {
		if h.Number != nil && h.Number.IsZero() {
			continue
		}
		out = append(out, h)
	}
	return out
}

// linkHeadTree computes each remaining head's parent head and synthesises
// names for parented-but-unnamed branches (spec.md §4.F, steps 3-4).
func linkHeadTree(m *Master, warn Warner) {
	for _, h := range m.Heads {
		if h.Number == nil {
			warn.Warnf("internal error - unnumbered head in master")
			h.Number = atom.Zero
			continue
		}

		if h.Number.Len() >= 4 {
			n, ok := h.Number.DropLast(2)
			if ok {
				h.Parent = m.FindBranch(n)
			}
			if h.Parent == nil && !h.Number.IsVendor() {
				name := "(unnamed)"
				if h.RefName != nil {
					name = h.RefName.String()
				}
				warn.Warnf("warning - non-vendor branch %s has no parent", name)
			}
		}

		if h.Parent != nil && h.RefName == nil {
			parentName := "(unnamed)"
			if h.Parent.RefName != nil {
				parentName = h.Parent.RefName.String()
			}
			var name string
			if h.Commit != nil && h.Commit.CommitID != nil && h.Commit.CommitID.String() != "" {
				name = parentName + "-UNNAMED-BRANCH-" + h.Commit.CommitID.String()
			} else {
				name = parentName + "-UNNAMED-BRANCH"
			}
			warn.Warnf("warning - putting rev %s on unnamed branch %s off %s",
				h.Number, name, parentName)
			h.RefName = atom.Intern(name)
		}
	}
}
