package orderbook

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	orderbookv1 "github.com/lfordyce/orderbook/internal/domain/orderbook/v1"
)

// bookModel shadows the book with plain maps so every invariant can be
// checked against an independent record of what went in.
type bookModel struct {
	remaining map[string]int64 // live orders only
	side      map[string]orderbookv1.Side
	price     map[string]int64
}

func TestOrderbookInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewOrderbook()
		model := bookModel{
			remaining: map[string]int64{},
			side:      map[string]orderbookv1.Side{},
			price:     map[string]int64{},
		}
		seq := uint64(0)
		nextID := 0

		liveIDs := func() []string {
			ids := make([]string, 0, len(model.remaining))
			for id := range model.remaining {
				ids = append(ids, id)
			}
			return ids
		}

		checkNoCross := func() {
			bid, ask := b.BestBid(), b.BestAsk()
			if bid != nil && ask != nil && bid.Price >= ask.Price {
				t.Fatalf("book crossed: best bid %d >= best ask %d", bid.Price, ask.Price)
			}
		}

		steps := rapid.IntRange(1, 150).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 9).Draw(t, "action") {
			case 0, 1, 2, 3, 4, 5, 6: // submit
				nextID++
				id := fmt.Sprintf("o%d", nextID)
				side := orderbookv1.Buy
				if rapid.Bool().Draw(t, "sell") {
					side = orderbookv1.Sell
				}
				price := rapid.Int64Range(1, 20).Draw(t, "price")
				qty := rapid.Int64Range(1, 10).Draw(t, "qty")
				seq++

				order := orderbookv1.NewOrder(id, side, price, qty, seq)
				fills, err := b.Submit(order)
				if err != nil {
					t.Fatalf("submit %s: %v", id, err)
				}

				var filled int64
				for _, f := range fills {
					if f.Quantity <= 0 {
						t.Fatalf("non-positive fill quantity %d", f.Quantity)
					}
					// Execution price must satisfy both sides' limits.
					if side == orderbookv1.Buy && f.Price > price {
						t.Fatalf("buy limit %d filled at %d", price, f.Price)
					}
					if side == orderbookv1.Sell && f.Price < price {
						t.Fatalf("sell limit %d filled at %d", price, f.Price)
					}
					if f.Price != model.price[f.MakerOrderID] {
						t.Fatalf("fill price %d, maker rests at %d", f.Price, model.price[f.MakerOrderID])
					}
					if model.side[f.MakerOrderID] == side {
						t.Fatalf("fill against same side maker %s", f.MakerOrderID)
					}
					model.remaining[f.MakerOrderID] -= f.Quantity
					if model.remaining[f.MakerOrderID] < 0 {
						t.Fatalf("maker %s overfilled", f.MakerOrderID)
					}
					if model.remaining[f.MakerOrderID] == 0 {
						delete(model.remaining, f.MakerOrderID)
					}
					filled += f.Quantity
				}

				// Quantity conservation for the taker.
				if filled+order.Remaining != qty {
					t.Fatalf("order %s: filled %d + remaining %d != quantity %d", id, filled, order.Remaining, qty)
				}
				if order.Remaining > 0 {
					model.remaining[id] = order.Remaining
					model.side[id] = side
					model.price[id] = price
				}

			case 7, 8: // cancel
				ids := liveIDs()
				if len(ids) == 0 {
					continue
				}
				id := rapid.SampledFrom(ids).Draw(t, "cancelID")
				order, err := b.Cancel(id)
				if err != nil {
					t.Fatalf("cancel %s: %v", id, err)
				}
				if order.Remaining != model.remaining[id] {
					t.Fatalf("cancel %s returned remaining %d, expected %d", id, order.Remaining, model.remaining[id])
				}
				delete(model.remaining, id)

			case 9: // flush
				b.Flush()
				model.remaining = map[string]int64{}
			}

			checkNoCross()

			bids, asks := b.Len()
			if bids+asks != len(model.remaining) {
				t.Fatalf("book holds %d live orders, model holds %d", bids+asks, len(model.remaining))
			}
		}
	})
}
