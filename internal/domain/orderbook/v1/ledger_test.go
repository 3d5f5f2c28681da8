package orderbookv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerInsertAndGet(t *testing.T) {
	lg := NewLedger()

	require.NoError(t, lg.Insert(NewOrder("1", Buy, 100, 10, 1)))
	require.NoError(t, lg.Insert(NewOrder("2", Sell, 101, 5, 2)))

	bids, asks := lg.Len()
	assert.Equal(t, 1, bids)
	assert.Equal(t, 1, asks)

	order, err := lg.Get("1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), order.Price)

	_, err = lg.Get("missing")
	assert.ErrorIs(t, err, ErrUnknownOrder)
}

func TestLedgerDuplicateInsert(t *testing.T) {
	lg := NewLedger()

	require.NoError(t, lg.Insert(NewOrder("1", Buy, 100, 10, 1)))
	assert.ErrorIs(t, lg.Insert(NewOrder("1", Sell, 90, 5, 2)), ErrDuplicateOrder)
}

func TestLedgerRemoveRetiresIdentifier(t *testing.T) {
	lg := NewLedger()

	require.NoError(t, lg.Insert(NewOrder("1", Buy, 100, 10, 1)))

	order, err := lg.Remove("1")
	require.NoError(t, err)
	assert.Equal(t, "1", order.ID)

	_, err = lg.Remove("1")
	assert.ErrorIs(t, err, ErrUnknownOrder)

	// The identifier stays spent.
	assert.True(t, lg.Has("1"))
	assert.ErrorIs(t, lg.Insert(NewOrder("1", Buy, 100, 10, 2)), ErrDuplicateOrder)
}

func TestLedgerDecrement(t *testing.T) {
	lg := NewLedger()

	require.NoError(t, lg.Insert(NewOrder("1", Buy, 100, 10, 1)))

	removed, err := lg.Decrement("1", 4)
	require.NoError(t, err)
	assert.False(t, removed)

	order, err := lg.Get("1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), order.Remaining)

	removed, err = lg.Decrement("1", 6)
	require.NoError(t, err)
	assert.True(t, removed)

	bids, _ := lg.Len()
	assert.Equal(t, 0, bids)
	assert.True(t, lg.Has("1"))
}

func TestLedgerDecrementOverfill(t *testing.T) {
	lg := NewLedger()

	require.NoError(t, lg.Insert(NewOrder("1", Buy, 100, 10, 1)))

	_, err := lg.Decrement("1", 11)
	assert.ErrorIs(t, err, ErrOverfill)
	_, err = lg.Decrement("1", 0)
	assert.ErrorIs(t, err, ErrOverfill)
	_, err = lg.Decrement("1", -1)
	assert.ErrorIs(t, err, ErrOverfill)
}

func TestLedgerClearReleasesRetired(t *testing.T) {
	lg := NewLedger()

	require.NoError(t, lg.Insert(NewOrder("1", Buy, 100, 10, 1)))
	_, err := lg.Remove("1")
	require.NoError(t, err)
	lg.Retire("2")

	lg.Clear()

	assert.False(t, lg.Has("1"))
	assert.False(t, lg.Has("2"))
	require.NoError(t, lg.Insert(NewOrder("1", Buy, 100, 10, 2)))
}
