package digest

import (
	"time"

	"github.com/dbremner/cvs-fast-export/internal/atom"
)

// Symbol is one entry in the parser's symbol list (spec.md §6).
type Symbol struct {
	Name   atom.Atom
	Number atom.RevNum
}

// Version is one parsed delta header (spec.md §6: "number, date, author,
// commitid, dead, branches").
type Version struct {
	Number    atom.RevNum
	Date      time.Time
	Author    atom.Atom
	CommitID  atom.Atom
	Dead      bool
	// Branches lists the branch numbers that fork off this version,
	// i.e. each element is a branch-point number whose chain the grafter
	// (spec.md §4.E) will attach back to this version.
	Branches []atom.RevNum
}

// Patch is the per-revision log/patch record (spec.md §6).
type Patch struct {
	Number atom.RevNum
	Log    atom.Atom
}

// Node is the parser's per-revision lookup slot. The digester mutates
// Commit to publish the materialised commit for non-dead revisions
// (spec.md §6: "the digester mutates the commit slot").
type Node struct {
	Version *Version
	Patch   *Patch
	Commit  *Commit
}

// ParsedMaster is the input contract the digester requires from the
// external parser (spec.md §6). A concrete implementation is provided by
// internal/fixture for tests and the demo binary; the real CVS
// lexer/grammar is out of scope (spec.md §1).
type ParsedMaster interface {
	// ExportPath is the path the fused repository will see this file
	// under.
	ExportPath() string
	// Mode is the file's recorded permission bits, as a raw CVS mode
	// string (e.g. "rw-r--r--").
	Mode() string
	// VersionCount sizes the commit slab.
	VersionCount() int
	// Symbols lists every symbolic name recorded in the master.
	Symbols() []Symbol
	// Versions lists every parsed delta header, in file order.
	Versions() []*Version
	// BuildBranchIndex asks the parser to build its per-branch delta
	// index (spec.md §4.H step 3), after which BranchNodes becomes valid.
	BuildBranchIndex()
	// BranchNodes returns, for the branch whose lookup key is
	// branchNumber with its last component replaced by the parser's
	// "-1" sentinel (spec.md §4.C step 1), the ordered chain of nodes on
	// that branch from its root revision to its tip. Nodes with a nil
	// Version are delta-only placeholders and are skipped by the branch
	// builder.
	BranchNodes(branchNumber atom.RevNum) []*Node
	// FindNode looks up the node for an exact revision number.
	FindNode(number atom.RevNum) (*Node, bool)
}
