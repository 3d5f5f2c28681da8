package orderbook

import (
	"github.com/pkg/errors"

	orderbookv1 "github.com/lfordyce/orderbook/internal/domain/orderbook/v1"
)

// Orderbook keeps the resting state for a single instrument: a ledger of
// live orders and a two-sided price ladder over them. All methods mutate
// in place; the engine drives it from a single goroutine, so there is no
// locking here.
type Orderbook struct {
	ledger *orderbookv1.Ledger
	ladder *orderbookv1.Ladder
}

// NewOrderbook returns an empty book.
func NewOrderbook() *Orderbook {
	return &Orderbook{
		ledger: orderbookv1.NewLedger(),
		ladder: orderbookv1.NewLadder(),
	}
}

// Submit matches the incoming order against the opposite side of the ladder,
// best price first, FIFO within a level, then rests any remainder. Returns
// the fills in execution order. ErrDuplicateOrder means the identifier is
// already taken and the book was not touched; any other error is a fault in
// the book's own bookkeeping and leaves the book unusable.
func (b *Orderbook) Submit(order *orderbookv1.Order) ([]orderbookv1.Fill, error) {
	if b.ledger.Has(order.ID) {
		return nil, orderbookv1.ErrDuplicateOrder
	}

	var fills []orderbookv1.Fill
	opposite := order.Side.Opposite()

	for order.Remaining > 0 {
		best := b.ladder.Best(opposite)
		if best == nil || !order.Crosses(best.Price) {
			break
		}

		makerID, ok := best.Front()
		if !ok {
			return fills, errors.Errorf("empty level resting at price %d", best.Price)
		}
		maker, err := b.ledger.Get(makerID)
		if err != nil {
			return fills, errors.Wrapf(err, "level %d references order %s", best.Price, makerID)
		}

		qty := order.Remaining
		if maker.Remaining < qty {
			qty = maker.Remaining
		}

		fills = append(fills, orderbookv1.Fill{
			MakerOrderID: makerID,
			Price:        best.Price,
			Quantity:     qty,
		})

		best.Reduce(qty)
		removed, err := b.ledger.Decrement(makerID, qty)
		if err != nil {
			return fills, errors.Wrapf(err, "decrement maker %s", makerID)
		}
		if removed {
			best.PopFront()
			if best.IsEmpty() {
				b.ladder.Delete(opposite, best.Price)
			}
		}
		order.Remaining -= qty
	}

	if order.Remaining > 0 {
		if err := b.ledger.Insert(order); err != nil {
			return fills, errors.Wrapf(err, "rest order %s", order.ID)
		}
		b.ladder.Rest(order.Side, order.Price, order.ID, order.Remaining)
	} else {
		// Fully filled on entry. The identifier is still spent until the
		// next flush.
		b.ledger.Retire(order.ID)
	}

	return fills, nil
}

// Cancel removes a live order and returns it. ErrUnknownOrder means the
// identifier has no live order; any other error is an internal fault.
func (b *Orderbook) Cancel(orderID string) (*orderbookv1.Order, error) {
	order, err := b.ledger.Remove(orderID)
	if err != nil {
		return nil, err
	}
	if err := b.ladder.Remove(order.Side, order.Price, orderID, order.Remaining); err != nil {
		return nil, errors.Wrapf(err, "ladder missing cancelled order %s", orderID)
	}
	return order, nil
}

// Flush empties both sides and releases every identifier, live or retired.
func (b *Orderbook) Flush() {
	b.ledger.Clear()
	b.ladder.Clear()
}

// BestBid returns the highest-priced bid level, or nil when no bids rest.
func (b *Orderbook) BestBid() *orderbookv1.Level {
	return b.ladder.Best(orderbookv1.Buy)
}

// BestAsk returns the lowest-priced ask level, or nil when no asks rest.
func (b *Orderbook) BestAsk() *orderbookv1.Level {
	return b.ladder.Best(orderbookv1.Sell)
}

// Len returns the live order count per side.
func (b *Orderbook) Len() (bids, asks int) {
	return b.ledger.Len()
}
