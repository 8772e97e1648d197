// Package hashmix produces the opaque, content-independent Commit.hash
// scratch value described in spec.md §3 and §9 open question (b). The
// original C source seeds this field from an uninitialized local; nothing
// downstream may depend on its value beyond identity/inequality. This
// reimplementation seeds it deterministically from the commit's revision
// number and master path instead, using the same content-addressing
// primitive the rest of the pack's git tooling builds on.
package hashmix

import (
	"encoding/binary"

	"github.com/go-git/go-git/v5/plumbing"
)

// Mix derives a 64-bit scratch value for a commit identified by its master
// export path and revision number text. It is deterministic and stable
// across runs (spec.md's "Determinism" testable property), but callers
// must not treat it as a content hash: two commits with different file
// content but the same path/revision text would collide, and that is fine
// — the field is scratch space reserved for downstream fusion, never an
// integrity check.
func Mix(path, revision string) uint64 {
	h := plumbing.ComputeHash(plumbing.BlobObject, []byte(path+"\x00"+revision))
	return foldToUint64(h)
}

// foldToUint64 XOR-folds a 20-byte SHA-1 digest down to a uint64, so the
// full hash still participates in the mix instead of being truncated.
func foldToUint64(h plumbing.Hash) uint64 {
	var v uint64
	for i := 0; i+8 <= len(h); i += 8 {
		v ^= binary.BigEndian.Uint64(h[i : i+8])
	}
	// h is 20 bytes; the trailing 4 bytes don't fill a uint64 chunk, fold
	// them in separately.
	full := (len(h) / 8) * 8
	if rem := h[full:]; len(rem) > 0 {
		var tail [8]byte
		copy(tail[:], rem)
		v ^= binary.BigEndian.Uint64(tail[:])
	}
	return v
}
