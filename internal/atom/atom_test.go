package atom

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternReturnsSamePointerForEqualText(t *testing.T) {
	a := Intern("refs/heads/master")
	b := Intern("refs/heads/master")
	assert.True(t, a == b, "Intern should return the same Atom for equal strings")
	assert.Equal(t, "refs/heads/master", a.String())
}

func TestInternDistinguishesDifferentText(t *testing.T) {
	a := Intern("alice")
	b := Intern("bob")
	assert.False(t, a == b)
}

func TestInternConcurrentMisses(t *testing.T) {
	table := NewTable()
	var wg sync.WaitGroup
	results := make([]Atom, 64)

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = table.Intern("shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		assert.True(t, results[0] == results[i], "all concurrent interns of the same string must collapse to one Atom")
	}
}
