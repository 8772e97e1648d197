// Package fixture provides an in-memory ParsedMaster implementation, built
// from a small declarative description, for tests and the demo binary
// (internal/digest §6 "Input contract"; the real CVS lexer/grammar is out
// of scope). It plays the same role here that an in-memory git.Storer
// plays in the teacher's own tests: a throwaway, fully-specified stand-in
// for the real I/O-backed implementation.
package fixture

import (
	"fmt"
	"sort"
	"time"

	"github.com/dbremner/cvs-fast-export/internal/atom"
	"github.com/dbremner/cvs-fast-export/internal/digest"
)

// VersionSpec describes one delta header to add to a fixture master.
type VersionSpec struct {
	Number   string
	Date     time.Time
	Author   string
	CommitID string
	Dead     bool
	// Branches lists the first-revision numbers of branches that fork off
	// this version, e.g. "1.2.2.1".
	Branches []string
	Log      string
}

// SymbolSpec describes one tag or branch symbol to add to a fixture
// master.
type SymbolSpec struct {
	Name   string
	Number string
}

// Builder accumulates a master description and produces a Master
// implementing digest.ParsedMaster. Every method except Build and
// MustBuild returns the Builder so calls can be chained; the description
// is validated only when Build runs, which returns the first error found.
type Builder struct {
	path string
	mode string
	err  error

	versions []VersionSpec
	symbols  []SymbolSpec
}

// New starts a fixture master builder for the given export path.
func New(path string) *Builder {
	return &Builder{path: path, mode: "rw-r--r--"}
}

// Mode overrides the file's recorded permission bits.
func (b *Builder) Mode(mode string) *Builder {
	b.mode = mode
	return b
}

// Version appends one delta header.
func (b *Builder) Version(v VersionSpec) *Builder {
	b.versions = append(b.versions, v)
	return b
}

// Symbol appends one tag or branch symbol.
func (b *Builder) Symbol(name, number string) *Builder {
	b.symbols = append(b.symbols, SymbolSpec{Name: name, Number: number})
	return b
}

// Build validates every accumulated revision number and returns the
// finished Master.
func (b *Builder) Build() (*Master, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.versions) == 0 {
		return nil, fmt.Errorf("fixture: %s has no versions", b.path)
	}

	m := &Master{
		path:       b.path,
		mode:       b.mode,
		byNumber:   make(map[atom.RevNum]*digest.Node),
		versionSeq: make([]*digest.Version, 0, len(b.versions)),
	}

	for _, spec := range b.versions {
		number, err := atom.ParseRevNum(spec.Number)
		if err != nil {
			return nil, fmt.Errorf("fixture: %s: %w", b.path, err)
		}

		branches := make([]atom.RevNum, 0, len(spec.Branches))
		for _, bs := range spec.Branches {
			bn, err := atom.ParseRevNum(bs)
			if err != nil {
				return nil, fmt.Errorf("fixture: %s: branch %q: %w", b.path, bs, err)
			}
			branches = append(branches, bn)
		}

		v := &digest.Version{
			Number:   number,
			Date:     spec.Date,
			Author:   atom.Intern(spec.Author),
			CommitID: atom.Intern(spec.CommitID),
			Dead:     spec.Dead,
			Branches: branches,
		}

		node := &digest.Node{Version: v}
		if spec.Log != "" {
			node.Patch = &digest.Patch{Number: number, Log: atom.Intern(spec.Log)}
		}

		if _, exists := m.byNumber[number]; exists {
			return nil, fmt.Errorf("fixture: %s: duplicate revision %s", b.path, spec.Number)
		}
		m.byNumber[number] = node
		m.versionSeq = append(m.versionSeq, v)
	}

	for _, spec := range b.symbols {
		number, err := atom.ParseRevNum(spec.Number)
		if err != nil {
			return nil, fmt.Errorf("fixture: %s: symbol %q: %w", b.path, spec.Name, err)
		}
		m.symbols = append(m.symbols, digest.Symbol{Name: atom.Intern(spec.Name), Number: number})
	}

	return m, nil
}

// MustBuild is Build for callers (tests) that already know the
// description is well-formed.
func (b *Builder) MustBuild() *Master {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// Master is a complete in-memory ParsedMaster.
type Master struct {
	path string
	mode string

	versionSeq []*digest.Version
	symbols    []digest.Symbol
	byNumber   map[atom.RevNum]*digest.Node

	branchIndex map[atom.RevNum][]*digest.Node
}

var _ digest.ParsedMaster = (*Master)(nil)

func (m *Master) ExportPath() string { return m.path }
func (m *Master) Mode() string       { return m.mode }
func (m *Master) VersionCount() int  { return len(m.versionSeq) }
func (m *Master) Symbols() []digest.Symbol {
	return m.symbols
}
func (m *Master) Versions() []*digest.Version {
	return m.versionSeq
}

// BuildBranchIndex groups every node by its branch line (its number with
// the last raw component dropped) and orders each group root-to-tip by
// revision number, mirroring build_branches in original_source/revcvs.c.
func (m *Master) BuildBranchIndex() {
	m.branchIndex = make(map[atom.RevNum][]*digest.Node)
	for _, v := range m.versionSeq {
		branchID, ok := v.Number.DropLast(1)
		if !ok {
			continue
		}
		node := m.byNumber[v.Number]
		m.branchIndex[branchID] = append(m.branchIndex[branchID], node)
	}
	for _, nodes := range m.branchIndex {
		sort.Slice(nodes, func(i, j int) bool {
			return nodes[i].Version.Number.Compare(nodes[j].Version.Number) < 0
		})
	}
}

// BranchNodes returns the root-to-tip node chain for the branch that
// branchNumber's first revision belongs to.
func (m *Master) BranchNodes(branchNumber atom.RevNum) []*digest.Node {
	id, ok := branchNumber.DropLast(1)
	if !ok {
		return nil
	}
	return m.branchIndex[id]
}

// FindNode looks up the node for an exact revision number.
func (m *Master) FindNode(number atom.RevNum) (*digest.Node, bool) {
	n, ok := m.byNumber[number]
	return n, ok
}
