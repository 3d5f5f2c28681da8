package orderbookv1

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateOrder is returned when an identifier is already in use,
	// live or previously settled within this book lifetime.
	ErrDuplicateOrder = errors.New("duplicate order identifier")
	// ErrUnknownOrder is returned when an identifier has no live order.
	ErrUnknownOrder = errors.New("unknown order identifier")
	// ErrOverfill signals a logic fault: a decrement larger than the
	// remaining quantity. The book must stop rather than keep going with
	// corrupted state.
	ErrOverfill = errors.New("decrement exceeds remaining quantity")
)

// Ledger owns every live order by identifier and remembers settled
// identifiers so they cannot be reused until the next Flush.
type Ledger struct {
	live    map[string]*Order
	retired map[string]struct{}
	bidLen  int
	askLen  int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		live:    make(map[string]*Order),
		retired: make(map[string]struct{}),
	}
}

// Has reports whether an identifier is taken, live or retired.
func (lg *Ledger) Has(orderID string) bool {
	if _, ok := lg.live[orderID]; ok {
		return true
	}
	_, ok := lg.retired[orderID]
	return ok
}

// Insert adds a live order.
func (lg *Ledger) Insert(order *Order) error {
	if lg.Has(order.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateOrder, order.ID)
	}
	lg.live[order.ID] = order
	if order.IsBuy() {
		lg.bidLen++
	} else {
		lg.askLen++
	}
	return nil
}

// Get returns the live order for an identifier.
func (lg *Ledger) Get(orderID string) (*Order, error) {
	order, ok := lg.live[orderID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOrder, orderID)
	}
	return order, nil
}

// Remove deletes a live order and retires its identifier. Used by
// cancellation.
func (lg *Ledger) Remove(orderID string) (*Order, error) {
	order, ok := lg.live[orderID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOrder, orderID)
	}
	lg.release(order)
	return order, nil
}

// Decrement reduces an order's remaining quantity by the executed amount.
// When remaining reaches zero the order leaves the ledger and the returned
// flag tells the caller to detach it from its level as well.
func (lg *Ledger) Decrement(orderID string, quantity int64) (removed bool, err error) {
	order, ok := lg.live[orderID]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownOrder, orderID)
	}
	if quantity <= 0 || quantity > order.Remaining {
		return false, fmt.Errorf("%w: order %s remaining %d, decrement %d",
			ErrOverfill, orderID, order.Remaining, quantity)
	}
	order.Remaining -= quantity
	if order.Remaining == 0 {
		lg.release(order)
		return true, nil
	}
	return false, nil
}

// Retire marks an identifier as used without it ever resting, e.g. an
// incoming order fully filled on entry.
func (lg *Ledger) Retire(orderID string) {
	lg.retired[orderID] = struct{}{}
}

// Len returns the number of live orders per side.
func (lg *Ledger) Len() (bids, asks int) {
	return lg.bidLen, lg.askLen
}

// Each visits every live order in unspecified order.
func (lg *Ledger) Each(fn func(*Order)) {
	for _, order := range lg.live {
		fn(order)
	}
}

// Clear drops all live orders and releases every retired identifier.
func (lg *Ledger) Clear() {
	lg.live = make(map[string]*Order)
	lg.retired = make(map[string]struct{})
	lg.bidLen = 0
	lg.askLen = 0
}

func (lg *Ledger) release(order *Order) {
	delete(lg.live, order.ID)
	lg.retired[order.ID] = struct{}{}
	if order.IsBuy() {
		lg.bidLen--
	} else {
		lg.askLen--
	}
}
