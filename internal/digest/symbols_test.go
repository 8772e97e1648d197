package digest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbremner/cvs-fast-export/internal/atom"
)

// buildBareMaster returns a Master with a trunk head and one extra,
// unnamed head whose tip is a single commit with no parent, dead when
// deadTip is set — an orphan branch that never got a graft point, the
// scenario spec.md §4.F calls out as "has been seen in the wild".
func buildBareMaster(t *testing.T, deadTip bool) (*Master, *Head) {
	t.Helper()
	m := NewMaster("dead.txt", "rw-r--r--", 2)

	trunkCommit := m.allocCommit()
	trunkCommit.Number = atom.MustParseRevNum("1.2")
	trunkCommit.Date = time.Unix(0, 0)
	trunk := m.AddHead(trunkCommit, atom.Intern("master"), 2)
	trunk.Number = trunkCommit.Number

	orphanCommit := m.allocCommit()
	orphanCommit.Number = atom.MustParseRevNum("1.2.2.1")
	orphanCommit.Dead = deadTip
	orphanCommit.Date = time.Unix(1, 0)
	orphan := m.AddHead(orphanCommit, nil, 0)

	return m, orphan
}

func TestAllDeadUntaggedBranchIsDiscarded(t *testing.T) {
	m, orphan := buildBareMaster(t, true)
	warn := &CollectingWarner{}

	fixUpUnnamedHeads(m, warn)
	assert.True(t, orphan.Number.IsZero())
	assert.NotEmpty(t, warn.Messages)

	m.Heads = discardZeroHeads(m.Heads)
	for _, h := range m.Heads {
		assert.NotSame(t, orphan, h)
	}
}

func TestLiveUntaggedBranchGetsSyntheticBranchNumber(t *testing.T) {
	m, orphan := buildBareMaster(t, false)
	warn := &CollectingWarner{}

	fixUpUnnamedHeads(m, warn)
	require.NotNil(t, orphan.Number)
	assert.Equal(t, "1.2.0.2", orphan.Number.String())
	assert.Empty(t, warn.Messages)
}
