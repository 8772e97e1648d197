package atom

import (
	"strings"
	"sync"
)

// Dir is a canonicalised directory record. The empty-name directory is the
// unique root and has no parent (spec.md §3).
type Dir struct {
	Name   Atom
	Parent *Dir
}

// dirTable interns directories by name, recursively canonicalising each
// directory's parent. The spec's C original uses a recursive mutex because
// inserting a child directory inserts its parent while the lock is held
// (spec.md §4.B, §9). Go's sync.Mutex is not reentrant, so instead of
// recursing into a second Lock() call, InternDir holds the lock once and
// builds the full missing ancestor chain bottom-up before returning.
type dirTable struct {
	mu   sync.RWMutex
	byID map[Atom]*Dir
}

var dirs = &dirTable{byID: make(map[Atom]*Dir)}

// root is the single process-wide root directory, initialised lazily and
// never destroyed during the process lifetime (spec.md §9).
var rootOnce sync.Once
var rootDir *Dir

// Root returns the process-wide root directory record.
func Root() *Dir {
	rootOnce.Do(func() {
		rootDir = &Dir{Name: Intern(""), Parent: nil}
		dirs.mu.Lock()
		dirs.byID[rootDir.Name] = rootDir
		dirs.mu.Unlock()
	})
	return rootDir
}

// InternDir returns the canonical Dir for a directory name atom, allocating
// it (and any missing ancestors) on first sight.
func InternDir(name Atom) *Dir {
	// Initialise the root before taking the table lock: Root's first call
	// locks the table itself, and internDirLocked may reach it.
	root := Root()
	if name.String() == "" {
		return root
	}

	dirs.mu.RLock()
	if d, ok := dirs.byID[name]; ok {
		dirs.mu.RUnlock()
		return d
	}
	dirs.mu.RUnlock()

	dirs.mu.Lock()
	defer dirs.mu.Unlock()
	return internDirLocked(name)
}

// internDirLocked builds the ancestor chain for name bottom-up while the
// table lock is already held, re-checking for a racing insert at each level
// instead of recursing into a second lock acquisition.
func internDirLocked(name Atom) *Dir {
	// Walk up from name collecting the chain of atoms not yet interned.
	var pending []Atom
	cur := name
	for {
		if d, ok := dirs.byID[cur]; ok {
			// Found an already-interned ancestor (or name itself); link
			// the pending chain onto it.
			for i := len(pending) - 1; i >= 0; i-- {
				d = &Dir{Name: pending[i], Parent: d}
				dirs.byID[pending[i]] = d
			}
			return d
		}
		pending = append(pending, cur)
		parentName := dirNameOf(cur.String())
		if parentName == "" {
			root := Root()
			for i := len(pending) - 1; i >= 0; i-- {
				root = &Dir{Name: pending[i], Parent: root}
				dirs.byID[pending[i]] = root
			}
			return root
		}
		cur = Intern(parentName)
	}
}

// dirNameOf returns path with its trailing component stripped, the
// directory-record analogue of dir_name() in the original C source: the
// substring up to (not including) the last '/', or "" for a root-level
// path.
func dirNameOf(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return ""
}

// FileopName returns path with a trailing ".cvsignore" component rewritten
// to ".gitignore"; otherwise it returns path unchanged (spec.md §4.B,
// "Derived operation").
func FileopName(path string) string {
	const oldSuffix = ".cvsignore"
	const newSuffix = ".gitignore"
	if strings.HasSuffix(path, oldSuffix) {
		return strings.TrimSuffix(path, oldSuffix) + newSuffix
	}
	return path
}
