package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternDirSamePathSamePointer(t *testing.T) {
	a := InternDir(Intern(dirNameOf("src/pkg/foo.go")))
	b := InternDir(Intern(dirNameOf("src/pkg/bar.go")))
	assert.True(t, a == b, "both files live in src/pkg")
}

func TestInternDirBuildsParentChain(t *testing.T) {
	d := InternDir(Intern(dirNameOf("src/pkg/sub/file.go")))
	require := assert.New(t)
	require.Equal("src/pkg/sub", d.Name.String())
	require.NotNil(d.Parent)
	require.Equal("src/pkg", d.Parent.Name.String())
	require.NotNil(d.Parent.Parent)
	require.Equal("src", d.Parent.Parent.Name.String())
	require.Equal(Root(), d.Parent.Parent.Parent)
}

func TestFileopNameRewritesCVSIgnore(t *testing.T) {
	assert.Equal(t, ".gitignore", FileopName(".cvsignore"))
	assert.Equal(t, "src/.gitignore", FileopName("src/.cvsignore"))
	assert.Equal(t, "src/main.go", FileopName("src/main.go"))
}
