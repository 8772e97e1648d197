package digest

import (
	"github.com/dbremner/cvs-fast-export/internal/atom"
	"github.com/dbremner/cvs-fast-export/internal/hashmix"
)

// BuildBranch materialises one branch as a linear chain of commit records
// from the delta list (spec.md §4.C). It returns the tip commit of the new
// chain, or nil if the branch produced no commits.
func BuildBranch(pm ParsedMaster, master *Master, branchNumber atom.RevNum, clock Clock, warn Warner) *Commit {
	nodes := pm.BranchNodes(branchNumber)

	var head *Commit
	for _, node := range nodes {
		v := node.Version
		if v == nil {
			// Delta-only node; no version record to materialise.
			continue
		}

		c := master.allocCommit()
		c.Dir = master.Dir
		c.Date = v.Date
		c.Author = v.Author
		c.CommitID = v.CommitID
		c.Dead = v.Dead
		c.Master = master
		c.Number = v.Number
		c.Log = atom.Intern("")
		if node.Patch != nil {
			c.Log = node.Patch.Log
		}
		if !v.Dead {
			// Publish the commit so later components (grafting, symbol
			// resolution) can find it via the parser's node.
			node.Commit = c
		}
		c.Parent = head
		c.Hash = hashmix.Mix(master.Path, v.Number.String())
		head = c
	}

	if head == nil {
		return nil
	}

	repairDates(head, clock, warn)
	return head
}

// repairDates walks the chain from head toward the root, restoring date
// monotonicity (spec.md §4.C step 4). Client-side CVS timestamps are
// generated on the committer's machine, not the server, so they can go
// backwards; the repair prefers the smallest edit that restores ordering
// rather than backdating the whole history.
func repairDates(head *Commit, clock Clock, warn Warner) {
	var gc *Commit
	for c := head; c != nil && c.Parent != nil; {
		p := c.Parent
		if clock.Compare(p.Date, c.Date) > 0 {
			var adjusted atom.RevNum
			if gc != nil && clock.Compare(p.Date, gc.Date) <= 0 {
				c.Date = p.Date
				adjusted = c.Number
			} else {
				p.Date = c.Date
				adjusted = p.Number
			}
			warn.Warnf("warning - %s is newer than %s, adjusting %s",
				p.Number, c.Number, adjusted)
		}
		gc = c
		c = p
	}
}
