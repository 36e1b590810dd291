package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var s Stack[string]

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("a"))
	assert.Empty(t, s.Values())
}

func TestPushDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	var base Stack[string]
	one := base.Push("a")
	two := one.Push("b")

	assert.Equal(t, 0, base.Len())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, 2, two.Len())

	assert.False(t, one.Contains("b"))
	assert.True(t, two.Contains("a"))
	assert.True(t, two.Contains("b"))
}

func TestSiblingBranchesAreIndependent(t *testing.T) {
	t.Parallel()

	root := Stack[int]{}.Push(1)
	left := root.Push(2)
	right := root.Push(3)

	assert.True(t, left.Contains(2))
	assert.False(t, left.Contains(3))
	assert.True(t, right.Contains(3))
	assert.False(t, right.Contains(2))
}

func TestValuesOldestFirst(t *testing.T) {
	t.Parallel()

	s := Stack[string]{}.Push("a").Push("b").Push("c")

	values := s.Values()
	require.Len(t, values, 3)
	assert.Equal(t, []string{"a", "b", "c"}, values)
}

func TestContainsComparesByValue(t *testing.T) {
	t.Parallel()

	type key struct{ id int }

	s := Stack[*key]{}
	a := &key{id: 1}
	b := &key{id: 1}

	s = s.Push(a)
	assert.True(t, s.Contains(a))
	assert.False(t, s.Contains(b))
}
