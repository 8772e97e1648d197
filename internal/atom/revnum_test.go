package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRevNumInterning(t *testing.T) {
	a, err := ParseRevNum("1.2.3")
	require.NoError(t, err)
	b, err := ParseRevNum("1.2.3")
	require.NoError(t, err)
	assert.True(t, a == b)
}

func TestDegreeOfPlainRevision(t *testing.T) {
	n := MustParseRevNum("1.2")
	assert.Equal(t, 2, n.Degree())
	assert.True(t, n.IsTrunk())
	assert.False(t, n.IsHeadSymbolForm())
}

func TestDegreeOfBranchPointRevision(t *testing.T) {
	n := MustParseRevNum("1.2.2.1")
	assert.Equal(t, 4, n.Degree())
	assert.False(t, n.IsHeadSymbolForm())
}

func TestDegreeOfBranchTagCollapses(t *testing.T) {
	n := MustParseRevNum("1.2.0.2")
	assert.Equal(t, 3, n.Degree())
	assert.True(t, n.IsHeadSymbolForm())
}

func TestBranchTagDropsEmbeddedZero(t *testing.T) {
	n := MustParseRevNum("1.2.0.2")
	assert.Equal(t, "1.2.2", n.BranchTag().String())
}

func TestBranchTagIsIdentityOnNonSymbolForm(t *testing.T) {
	n := MustParseRevNum("1.2.2.1")
	assert.Equal(t, n, n.BranchTag())
}

func TestIsVendor(t *testing.T) {
	assert.True(t, MustParseRevNum("1.1.1.1").IsVendor())
	assert.False(t, MustParseRevNum("1.1.2.1").IsVendor())
	assert.False(t, MustParseRevNum("1.2.2.1").IsVendor())
	assert.False(t, MustParseRevNum("1.1").IsVendor())
}

func TestSameBranch(t *testing.T) {
	a := MustParseRevNum("1.2.2.1")
	b := MustParseRevNum("1.2.2.7")
	c := MustParseRevNum("1.2.3.1")
	assert.True(t, a.SameBranch(b))
	assert.False(t, a.SameBranch(c))
}

func TestCompareOrdering(t *testing.T) {
	assert.Equal(t, -1, MustParseRevNum("1.2").Compare(MustParseRevNum("1.3")))
	assert.Equal(t, 1, MustParseRevNum("1.10").Compare(MustParseRevNum("1.2")))
	assert.Equal(t, 0, MustParseRevNum("1.2").Compare(MustParseRevNum("1.2")))
}

func TestDropLast(t *testing.T) {
	n := MustParseRevNum("1.2.2.1")
	branch, ok := n.DropLast(1)
	require.True(t, ok)
	assert.Equal(t, "1.2.2", branch.String())

	_, ok = n.DropLast(5)
	assert.False(t, ok)
}

func TestBranchNumberFromCommit(t *testing.T) {
	c := MustParseRevNum("1.2.2.3")
	n := BranchNumberFromCommit(c)
	assert.Equal(t, "1.2.0.2", n.String())
	assert.True(t, n.IsHeadSymbolForm())
}

func TestZeroIsItsOwnCanonicalMarker(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.False(t, MustParseRevNum("1.1").IsZero())
}
