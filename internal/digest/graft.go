package digest

// GraftBranches connects disconnected branch roots to their parent commits
// on the trunk or another branch, turning the flat head list into a tree
// (spec.md §4.E).
func GraftBranches(m *Master, pm ParsedMaster) {
	if len(m.Heads) == 0 {
		return
	}
	trunk := m.Heads[0]

	for _, h := range m.Heads {
		if h == trunk || h.Tail {
			continue
		}

		root, alreadyGrafted := walkToRoot(h)
		if alreadyGrafted || root == nil {
			continue
		}

		graftOne(m, pm, root)
	}
}

// walkToRoot walks h's chain to its root commit (the first commit with no
// parent). It reports alreadyGrafted=true if any commit on the walk
// already has Tail set, meaning this head has been processed before and
// should be skipped.
func walkToRoot(h *Head) (root *Commit, alreadyGrafted bool) {
	c := h.Commit
	for c != nil && c.Parent != nil {
		if c.Tail {
			return nil, true
		}
		c = c.Parent
	}
	return c, false
}

// graftOne looks for the branch record that created root's branch and
// attaches root to the commit it forked from.
func graftOne(m *Master, pm ParsedMaster, root *Commit) {
	for _, cv := range pm.Versions() {
		for _, cb := range cv.Branches {
			if cb != root.Number {
				continue
			}
			root.Parent = m.FindRevision(cv.Number)
			root.Tail = true
			return
		}
	}
}
