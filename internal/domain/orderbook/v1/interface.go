package orderbookv1

// Book defines the operations the command processor performs against the
// order book.
type Book interface {
	// Submit matches an incoming order against the opposite side and rests
	// any unfilled remainder. Fills are returned in execution order.
	// Fails with ErrDuplicateOrder before any trade when the identifier is
	// taken; any other error is an internal fault.
	Submit(order *Order) ([]Fill, error)
	// Cancel removes a live order, returning it. Fails with ErrUnknownOrder.
	Cancel(orderID string) (*Order, error)
	// Flush resets the book to empty, releasing all identifiers.
	Flush()
	// BestBid returns the highest-priced bid level, or nil.
	BestBid() *Level
	// BestAsk returns the lowest-priced ask level, or nil.
	BestAsk() *Level
	// Len returns the number of live orders per side.
	Len() (bids, asks int)
}
