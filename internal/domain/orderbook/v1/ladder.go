package orderbookv1

// Ladder holds both sides of the book as price-ordered level trees. The best
// level is the maximum bid price and the minimum ask price. Levels are
// created lazily on the first resting order and deleted as soon as the last
// order leaves them; the ladder never holds an empty level.
type Ladder struct {
	bids *levelTree
	asks *levelTree
}

// NewLadder creates an empty ladder.
func NewLadder() *Ladder {
	return &Ladder{
		bids: newLevelTree(),
		asks: newLevelTree(),
	}
}

func (ld *Ladder) tree(side Side) *levelTree {
	if side == Buy {
		return ld.bids
	}
	return ld.asks
}

// Rest queues an identifier at the level for price on the given side,
// creating the level if this is the first order resting there.
func (ld *Ladder) Rest(side Side, price int64, orderID string, quantity int64) *Level {
	lvl := ld.tree(side).upsert(price)
	lvl.Enqueue(orderID, quantity)
	return lvl
}

// Best returns the best level for a side: highest bid or lowest ask.
// Returns nil when the side is empty.
func (ld *Ladder) Best(side Side) *Level {
	if side == Buy {
		return ld.bids.max()
	}
	return ld.asks.min()
}

// Find returns the level at an exact price, or nil.
func (ld *Ladder) Find(side Side, price int64) *Level {
	return ld.tree(side).find(price)
}

// Delete removes the level at price from the side's tree.
func (ld *Ladder) Delete(side Side, price int64) bool {
	return ld.tree(side).delete(price)
}

// Remove deletes a specific identifier from its level, dropping the level
// if it becomes empty. Used by cancellation.
func (ld *Ladder) Remove(side Side, price int64, orderID string, remaining int64) error {
	lvl := ld.Find(side, price)
	if lvl == nil {
		return ErrOrderNotFound
	}
	if err := lvl.Remove(orderID, remaining); err != nil {
		return err
	}
	if lvl.IsEmpty() {
		ld.Delete(side, price)
	}
	return nil
}

// Depth returns the number of distinct price levels on a side.
func (ld *Ladder) Depth(side Side) int {
	return ld.tree(side).len()
}

// Levels returns a side's levels best-first.
func (ld *Ladder) Levels(side Side) []*Level {
	levels := make([]*Level, 0, ld.tree(side).len())
	visit := func(lvl *Level) bool {
		levels = append(levels, lvl)
		return true
	}
	if side == Buy {
		ld.bids.descend(visit)
	} else {
		ld.asks.ascend(visit)
	}
	return levels
}

// Clear discards all levels on both sides.
func (ld *Ladder) Clear() {
	ld.bids.clear()
	ld.asks.clear()
}
