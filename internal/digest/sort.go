package digest

import (
	"sort"

	"github.com/dbremner/cvs-fast-export/internal/atom"
)

// SortHeads orders m.Heads for presentation: heads whose RefName is not a
// symbol the parser actually recorded sort before heads whose RefName is,
// named heads compare by their branch number, and ties keep their original
// relative order (spec.md §4.G).
//
// "Named" is literal symbol-table membership, not merely RefName != nil:
// the trunk head's "master", a vendor head's synthesised "import-*", and an
// unnamed branch's synthesised "*-UNNAMED-BRANCH" name are all assigned
// directly via atom.Intern and never appear in symbols, so they fall into
// the unnamed bucket along with heads that have no RefName at all (mirrors
// cvs_find_symbol/rev_ref_compare in the original C: a head whose name
// isn't found in the symbol table always sorts first).
//
// Because the trunk head is always the first head added (driver.go) and
// always lands in the unnamed bucket, the stable sort leaves it at index 0
// without any special-casing: the trunk-first invariant falls out of the
// bucketing and construction order rather than needing a post-sort patch.
//
// The original algorithm merge-sorts a singly linked list; Master stores
// heads in a slice instead (see Head's doc comment), so a stable slice
// sort produces the same observable order without needing a reentrant
// list walk.
func SortHeads(m *Master, symbols []Symbol) {
	if len(m.Heads) < 2 {
		return
	}

	named := make(map[atom.Atom]bool, len(symbols))
	for _, s := range symbols {
		named[s.Name] = true
	}

	sort.SliceStable(m.Heads, func(i, j int) bool {
		a, b := m.Heads[i], m.Heads[j]
		aNamed := a.RefName != nil && named[a.RefName]
		bNamed := b.RefName != nil && named[b.RefName]
		if aNamed != bNamed {
			return !aNamed
		}
		if !aNamed {
			return false
		}
		if a.Number == nil || b.Number == nil {
			return false
		}
		return a.Number.Compare(b.Number) < 0
	})
}
