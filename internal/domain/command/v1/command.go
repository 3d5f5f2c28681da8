package commandv1

import (
	"context"

	orderbookv1 "github.com/lfordyce/orderbook/internal/domain/orderbook/v1"
)

// Kind discriminates the closed set of command variants. The command set is
// fixed, so dispatch is an exhaustive switch rather than a handler registry.
type Kind uint8

const (
	// KindUnknown is the zero value; the engine treats it as a fault.
	KindUnknown Kind = iota
	// KindNew submits a limit order.
	KindNew
	// KindCancel removes a live order by identifier.
	KindCancel
	// KindFlush resets the book to empty.
	KindFlush
)

func (k Kind) String() string {
	switch k {
	case KindNew:
		return "new"
	case KindCancel:
		return "cancel"
	case KindFlush:
		return "flush"
	default:
		return "unknown"
	}
}

// Command is one already-parsed instruction from the command stream.
// OrderID/Side/Price/Quantity are meaningful for KindNew; only OrderID for
// KindCancel; neither for KindFlush.
type Command struct {
	Kind     Kind             `json:"kind"`
	OrderID  string           `json:"orderID,omitempty"`
	Side     orderbookv1.Side `json:"side,omitempty"`
	Price    int64            `json:"price,omitempty"`
	Quantity int64            `json:"quantity,omitempty"`
}

// New builds a submit command.
func New(orderID string, side orderbookv1.Side, price, quantity int64) Command {
	return Command{Kind: KindNew, OrderID: orderID, Side: side, Price: price, Quantity: quantity}
}

// Cancel builds a cancel command.
func Cancel(orderID string) Command {
	return Command{Kind: KindCancel, OrderID: orderID}
}

// Flush builds a flush command.
func Flush() Command {
	return Command{Kind: KindFlush}
}

// Source delivers commands one at a time in arrival order. Read returns
// io.EOF once the stream is exhausted; malformed input is the source's
// problem and never surfaces here.
type Source interface {
	Read(ctx context.Context) (Command, error)
	Close() error
}
