package recordv1

import "context"

// Reason classifies a rejection.
type Reason string

const (
	// ReasonInvalidQuantity rejects a submit with quantity <= 0.
	ReasonInvalidQuantity Reason = "invalid_quantity"
	// ReasonInvalidPrice rejects a submit with price <= 0.
	ReasonInvalidPrice Reason = "invalid_price"
	// ReasonDuplicateOrder rejects a submit reusing a taken identifier.
	ReasonDuplicateOrder Reason = "duplicate_order"
	// ReasonUnknownOrder rejects a cancel for an identifier with no live order.
	ReasonUnknownOrder Reason = "unknown_order"
)

// Record is one outcome emitted while processing a command. The set is
// closed: Ack, Trade, Cancelled, Flushed, Rejected.
type Record interface {
	// Label returns the record's type tag as it appears on the wire.
	Label() string
}

// Ack acknowledges an accepted submit. RestingQuantity is zero when the
// order filled completely on entry.
type Ack struct {
	OrderID         string `json:"orderID"`
	FilledQuantity  int64  `json:"filledQuantity"`
	RestingQuantity int64  `json:"restingQuantity"`
}

// Label implements Record.
func (Ack) Label() string { return "ack" }

// Trade reports one execution. Price is always the maker's resting price.
type Trade struct {
	TradeID      string `json:"tradeID"`
	TakerOrderID string `json:"takerOrderID"`
	MakerOrderID string `json:"makerOrderID"`
	Price        int64  `json:"price"`
	Quantity     int64  `json:"quantity"`
}

// Label implements Record.
func (Trade) Label() string { return "trade" }

// Cancelled confirms a cancel.
type Cancelled struct {
	OrderID string `json:"orderID"`
}

// Label implements Record.
func (Cancelled) Label() string { return "cancelled" }

// Flushed confirms a flush.
type Flushed struct{}

// Label implements Record.
func (Flushed) Label() string { return "flushed" }

// Rejected reports a recoverable command failure. OrderID may be empty when
// the command carried none.
type Rejected struct {
	OrderID string `json:"orderID,omitempty"`
	Reason  Reason `json:"reason"`
}

// Label implements Record.
func (Rejected) Label() string { return "rejected" }

// Sink consumes outcome records in emission order.
type Sink interface {
	Publish(ctx context.Context, record Record) error
	// Flush forces buffered records out. Called at end of stream.
	Flush() error
	Close() error
}
