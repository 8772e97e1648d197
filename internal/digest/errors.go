package digest

import "errors"

// ErrNoTrunk is returned by Digest when a master has no 1.x revisions at
// all and digestion cannot proceed for it (spec.md §7, "No trunk").
var ErrNoTrunk = errors.New("digest: master has no trunk revisions")
