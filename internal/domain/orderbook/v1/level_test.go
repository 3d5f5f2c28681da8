package orderbookv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFIFO(t *testing.T) {
	lvl := NewLevel(100)
	lvl.Enqueue("a", 5)
	lvl.Enqueue("b", 3)

	assert.Equal(t, 2, lvl.Len())
	assert.Equal(t, int64(8), lvl.TotalQuantity())

	id, ok := lvl.Front()
	require.True(t, ok)
	assert.Equal(t, "a", id)

	id, ok = lvl.PopFront()
	require.True(t, ok)
	assert.Equal(t, "a", id)

	id, ok = lvl.Front()
	require.True(t, ok)
	assert.Equal(t, "b", id)
}

func TestLevelReduce(t *testing.T) {
	lvl := NewLevel(100)
	lvl.Enqueue("a", 5)

	lvl.Reduce(2)
	assert.Equal(t, int64(3), lvl.TotalQuantity())
	assert.Equal(t, 1, lvl.Len())
}

func TestLevelRemoveMidQueue(t *testing.T) {
	lvl := NewLevel(100)
	lvl.Enqueue("a", 5)
	lvl.Enqueue("b", 3)
	lvl.Enqueue("c", 2)

	require.NoError(t, lvl.Remove("b", 3))

	assert.Equal(t, []string{"a", "c"}, lvl.OrderIDs())
	assert.Equal(t, int64(7), lvl.TotalQuantity())
}

func TestLevelRemoveUnknown(t *testing.T) {
	lvl := NewLevel(100)
	lvl.Enqueue("a", 5)

	assert.ErrorIs(t, lvl.Remove("x", 1), ErrOrderNotFound)
}

func TestLevelEmpty(t *testing.T) {
	lvl := NewLevel(100)
	assert.True(t, lvl.IsEmpty())

	_, ok := lvl.Front()
	assert.False(t, ok)
	_, ok = lvl.PopFront()
	assert.False(t, ok)
}
