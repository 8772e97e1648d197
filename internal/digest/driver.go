package digest

import "github.com/dbremner/cvs-fast-export/internal/atom"

// Digest runs the fixed pipeline in spec.md §4.H: it builds the trunk,
// every other branch, normalises vendor branches, grafts orphan branches
// onto their parents, resolves symbols, orders heads, and finalises tail
// edges. It returns the trunk's tip commit, or ErrNoTrunk if the master
// has no trunk revisions at all.
//
// Digest takes no context.Context: per spec.md §5 there are no suspension
// points in the algorithmic core, and a master either completes in one
// call or is abandoned whole by the caller.
func Digest(pm ParsedMaster, clock Clock, tags TagService, warn Warner) (*Commit, error) {
	master := NewMaster(pm.ExportPath(), pm.Mode(), pm.VersionCount())

	pm.BuildBranchIndex()

	trunkNumber := lowestTrunkRevision(pm)

	trunkTip := BuildBranch(pm, master, trunkNumber, clock, warn)
	if trunkTip == nil {
		return nil, ErrNoTrunk
	}
	t := master.AddHead(trunkTip, atom.Intern("master"), 2)
	t.Number = trunkTip.Number

	for _, v := range pm.Versions() {
		for _, b := range v.Branches {
			tip := BuildBranch(pm, master, b, clock, warn)
			if tip == nil {
				continue
			}
			master.AddHead(tip, nil, 0)
		}
	}

	PatchVendorBranch(master, warn)
	GraftBranches(master, pm)
	ResolveSymbols(master, pm, tags, warn)
	SortHeads(master, pm.Symbols())
	finalizeTails(master)

	// PatchVendorBranch may have redirected t.Commit to a spliced-in vendor
	// tip, so the return value must read the head's current Commit rather
	// than the local captured at build time.
	return t.Commit, nil
}

// lowestTrunkRevision finds the smallest 1.x version number in the
// parser's version list, defaulting to 1.1 if the master somehow lists no
// trunk revisions at all (spec.md §4.H step 4).
func lowestTrunkRevision(pm ParsedMaster) atom.RevNum {
	var lowest atom.RevNum
	for _, v := range pm.Versions() {
		if !v.Number.IsTrunk() {
			continue
		}
		if lowest == nil || v.Number.Compare(lowest) < 0 {
			lowest = v.Number
		}
	}
	if lowest == nil {
		return atom.MustParseRevNum("1.1")
	}
	return lowest
}

// finalizeTails marks every cross-branch parent edge still missing its
// Tail flag: an edge whose two endpoints don't share a branch line is, by
// construction, either a graft edge or the vendor-branch splice edge, and
// both must read as tails downstream (spec.md §4.H step 8).
func finalizeTails(m *Master) {
	for i := range m.slab[:m.ncommits] {
		c := &m.slab[i]
		if c.Parent == nil || c.Tail {
			continue
		}
		if c.Number == nil || c.Parent.Number == nil {
			continue
		}
		if !c.Number.SameBranch(c.Parent.Number) {
			c.Tail = true
		}
	}
}
