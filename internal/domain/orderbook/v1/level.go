package orderbookv1

import "errors"

// ErrOrderNotFound is returned when an identifier is not queued at a level.
var ErrOrderNotFound = errors.New("order not found in level")

// Level is a single price level: a FIFO queue of order identifiers resting
// at one price, oldest first. Levels hold identifiers only, never *Order;
// the Ledger is the arbiter of order state.
//
// Cancel-by-id is a linear scan of the queue. An identifier-to-slot index
// would make it O(1) amortized, at the cost of bookkeeping on every
// enqueue/pop; the expected cancel-to-new ratio does not justify it here.
type Level struct {
	Price    int64
	queue    []string
	totalQty int64
}

// NewLevel creates an empty level at the given price.
func NewLevel(price int64) *Level {
	return &Level{Price: price}
}

// Enqueue appends an identifier to the back of the FIFO queue.
func (l *Level) Enqueue(orderID string, quantity int64) {
	l.queue = append(l.queue, orderID)
	l.totalQty += quantity
}

// Front returns the oldest identifier at this level.
func (l *Level) Front() (string, bool) {
	if len(l.queue) == 0 {
		return "", false
	}
	return l.queue[0], true
}

// PopFront removes and returns the oldest identifier. The caller reduces the
// level quantity through Reduce as fills happen, so PopFront leaves it alone.
func (l *Level) PopFront() (string, bool) {
	if len(l.queue) == 0 {
		return "", false
	}
	id := l.queue[0]
	l.queue = l.queue[1:]
	return id, true
}

// Reduce subtracts executed quantity from the level total.
func (l *Level) Reduce(quantity int64) {
	l.totalQty -= quantity
}

// Remove deletes a specific identifier from the queue, releasing its
// remaining quantity. Used by cancellation.
func (l *Level) Remove(orderID string, remaining int64) error {
	for i, id := range l.queue {
		if id == orderID {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)
			l.totalQty -= remaining
			return nil
		}
	}
	return ErrOrderNotFound
}

// Len returns the number of orders queued at this level.
func (l *Level) Len() int {
	return len(l.queue)
}

// IsEmpty checks if the level has no orders.
func (l *Level) IsEmpty() bool {
	return len(l.queue) == 0
}

// TotalQuantity returns the remaining quantity resting at this level.
func (l *Level) TotalQuantity() int64 {
	return l.totalQty
}

// OrderIDs returns a copy of the queued identifiers, oldest first.
func (l *Level) OrderIDs() []string {
	ids := make([]string, len(l.queue))
	copy(ids, l.queue)
	return ids
}
