package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFindByName(t *testing.T) {
	edges := NewMapObserver("edges", 16)
	blocks := NewMapObserver("blocks", 16)
	set := NewSet(edges, blocks)

	got, ok := set.Find("blocks")
	require.True(t, ok)
	assert.Same(t, blocks, got)

	_, ok = set.Find("missing")
	assert.False(t, ok)
}

func TestSetKeepsInsertionOrder(t *testing.T) {
	set := NewSet()
	set.Add(NewMapObserver("a", 1))
	set.Add(NewMapObserver("b", 1))
	set.Add(NewMapObserver("c", 1))

	var names []string
	set.All(func(o Observer) bool {
		names = append(names, o.Name())
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, 3, set.Len())
}

func TestMapObserver(t *testing.T) {
	o := NewMapObserver("edges", 4)
	o.Fill([]byte{0, 2, 0, 1})

	assert.Equal(t, []byte{0, 2, 0, 1}, o.Map())
	assert.Equal(t, 2, o.CountNonZero())

	o.Reset()
	assert.Equal(t, []byte{0, 0, 0, 0}, o.Map())
	assert.Zero(t, o.CountNonZero())
}

func TestSetResetResetsAllObservers(t *testing.T) {
	a := NewMapObserver("a", 2)
	b := NewMapObserver("b", 2)
	a.Fill([]byte{1, 1})
	b.Fill([]byte{1, 0})

	NewSet(a, b).Reset()

	assert.Zero(t, a.CountNonZero())
	assert.Zero(t, b.CountNonZero())
}
