package digest

import "github.com/dbremner/cvs-fast-export/internal/atom"

// PatchVendorBranch detects the legacy "vendor branch" pattern and splices
// it into the trunk (spec.md §4.D). It runs once per master, after every
// branch has been built.
//
// On repos imported from an external source tree, CVS points the file's
// "default" branch at the vendor import, so the highest-numbered revision
// visible from HEAD can live on that vendor branch rather than on 1.x. If
// the trunk never gained a 1.2, this rewrites the trunk head to present
// that history linearly instead of losing it behind an orphaned branch.
func PatchVendorBranch(m *Master, warn Warner) {
	if len(m.Heads) == 0 {
		return
	}
	trunk := m.Heads[0]

	var nvendor *Head
	for _, v := range m.Heads {
		if v.Commit == nil || !v.Commit.Number.IsVendor() {
			continue
		}
		nvendor = v

		if v.RefName == nil {
			v.RefName = atom.Intern("import-" + vendorBranchName(v.Commit))
		}
		v.Parent = trunk
		v.Degree = v.Commit.Number.Len()
		v.Number = v.Commit.Number
	}

	if nvendor == nil {
		return
	}
	if trunk.Commit.Parent != nil {
		// Trunk already has a 1.2 (or later); nothing to splice.
		return
	}

	oldtip := trunk.Commit
	trunk.Commit = nvendor.Commit
	trunk.Degree = nvendor.Commit.Number.Len()
	trunk.Number = nvendor.Commit.Number

	for vlast := trunk.Commit; vlast != nil; vlast = vlast.Parent {
		if vlast.Parent == nil {
			vlast.Parent = oldtip
			break
		}
	}

	m.Heads = removeHead(m.Heads, nvendor)
}

// vendorBranchName walks a vendor head's chain to its initial commit
// (1.1.odd.1) and formats the branch identifier (1.1.odd) that names it.
func vendorBranchName(tip *Commit) string {
	first := tip
	for first.Parent != nil {
		first = first.Parent
	}
	branch, ok := first.Number.DropLast(1)
	if !ok {
		return first.Number.String()
	}
	return branch.String()
}

func removeHead(heads []*Head, target *Head) []*Head {
	out := heads[:0:0]
	for _, h := range heads {
		if h == target {
			continue
		}
		out = append(out, h)
	}
	return out
}
