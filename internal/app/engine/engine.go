package engine

import (
	"context"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	commandv1 "github.com/lfordyce/orderbook/internal/domain/command/v1"
	orderbookv1 "github.com/lfordyce/orderbook/internal/domain/orderbook/v1"
	recordv1 "github.com/lfordyce/orderbook/internal/domain/record/v1"
	"github.com/lfordyce/orderbook/pkg/errors"
	"github.com/lfordyce/orderbook/pkg/logger"
)

// Engine drives the order book: it pulls commands from the source one at a
// time, applies each to the book, and publishes the resulting records in
// emission order. Commands are strictly sequential, which is what makes the
// output deterministic for a given input stream.
type Engine struct {
	book     orderbookv1.Book
	source   commandv1.Source
	sink     recordv1.Sink
	logger   logger.Interface
	sequence uint64
	entropy  io.Reader
	clock    func() time.Time
}

// NewEngine wires a book to its command source and record sink.
func NewEngine(book orderbookv1.Book, source commandv1.Source, sink recordv1.Sink, log logger.Interface, opts ...Option) *Engine {
	e := &Engine{
		book:    book,
		source:  source,
		sink:    sink,
		logger:  log,
		entropy: ulid.DefaultEntropy(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run consumes the command stream until it ends or the context is
// cancelled. A clean end of stream flushes the sink and returns nil.
// Internal faults stop the run; the book can no longer be trusted.
func (e *Engine) Run(ctx context.Context) error {
	for {
		cmd, err := e.source.Read(ctx)
		if err != nil {
			if err == io.EOF {
				return e.sink.Flush()
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.TracerFromError(err)
		}

		records, err := e.Process(cmd)
		if err != nil {
			e.logger.Error(err,
				logger.Field{Key: "command", Value: cmd.Kind.String()},
				logger.Field{Key: "orderID", Value: cmd.OrderID},
			)
			return err
		}

		for _, record := range records {
			if err := e.sink.Publish(ctx, record); err != nil {
				return err
			}
		}
	}
}

// Process applies one command and returns its records in emission order.
// Recoverable failures become Rejected records; a returned error means the
// book's internal state is inconsistent.
func (e *Engine) Process(cmd commandv1.Command) ([]recordv1.Record, error) {
	switch cmd.Kind {
	case commandv1.KindNew:
		return e.processNew(cmd)
	case commandv1.KindCancel:
		return e.processCancel(cmd)
	case commandv1.KindFlush:
		e.book.Flush()
		return []recordv1.Record{recordv1.Flushed{}}, nil
	default:
		return nil, errors.NewTracer("unknown command kind")
	}
}

func (e *Engine) processNew(cmd commandv1.Command) ([]recordv1.Record, error) {
	if cmd.Quantity <= 0 {
		return []recordv1.Record{recordv1.Rejected{OrderID: cmd.OrderID, Reason: recordv1.ReasonInvalidQuantity}}, nil
	}
	if cmd.Price <= 0 {
		return []recordv1.Record{recordv1.Rejected{OrderID: cmd.OrderID, Reason: recordv1.ReasonInvalidPrice}}, nil
	}

	e.sequence++
	order := orderbookv1.NewOrder(cmd.OrderID, cmd.Side, cmd.Price, cmd.Quantity, e.sequence)

	fills, err := e.book.Submit(order)
	if err != nil {
		if errors.Is(err, orderbookv1.ErrDuplicateOrder) {
			return []recordv1.Record{recordv1.Rejected{OrderID: cmd.OrderID, Reason: recordv1.ReasonDuplicateOrder}}, nil
		}
		return nil, err
	}

	records := make([]recordv1.Record, 0, len(fills)+1)
	for _, fill := range fills {
		records = append(records, recordv1.Trade{
			TradeID:      e.newTradeID(),
			TakerOrderID: order.ID,
			MakerOrderID: fill.MakerOrderID,
			Price:        fill.Price,
			Quantity:     fill.Quantity,
		})
	}
	records = append(records, recordv1.Ack{
		OrderID:         order.ID,
		FilledQuantity:  order.Filled(),
		RestingQuantity: order.Remaining,
	})
	return records, nil
}

func (e *Engine) processCancel(cmd commandv1.Command) ([]recordv1.Record, error) {
	if _, err := e.book.Cancel(cmd.OrderID); err != nil {
		if errors.Is(err, orderbookv1.ErrUnknownOrder) {
			return []recordv1.Record{recordv1.Rejected{OrderID: cmd.OrderID, Reason: recordv1.ReasonUnknownOrder}}, nil
		}
		return nil, err
	}
	return []recordv1.Record{recordv1.Cancelled{OrderID: cmd.OrderID}}, nil
}

func (e *Engine) newTradeID() string {
	return ulid.MustNew(ulid.Timestamp(e.clock()), e.entropy).String()
}
