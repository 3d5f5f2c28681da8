package recordpublisher

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	recordv1 "github.com/lfordyce/orderbook/internal/domain/record/v1"
)

// CSVWriter emits one comma-separated row per record:
//
//	A,<orderID>,<filled>,<resting>                      ack
//	T,<tradeID>,<taker>,<maker>,<price>,<quantity>      trade
//	X,<orderID>                                         cancelled
//	F                                                   flushed
//	R,<orderID>,<reason>                                rejected
type CSVWriter struct {
	csvWriter *csv.Writer
	closer    io.Closer
}

// NewCSVWriter wraps an output stream. The closer may be nil for stdout.
func NewCSVWriter(w io.Writer, closer io.Closer) *CSVWriter {
	return &CSVWriter{
		csvWriter: csv.NewWriter(w),
		closer:    closer,
	}
}

// Publish writes one record and flushes it, so rows appear as soon as the
// command that produced them is processed.
func (w *CSVWriter) Publish(_ context.Context, record recordv1.Record) error {
	var row []string
	switch r := record.(type) {
	case recordv1.Ack:
		row = []string{"A", r.OrderID, formatInt(r.FilledQuantity), formatInt(r.RestingQuantity)}
	case recordv1.Trade:
		row = []string{"T", r.TradeID, r.TakerOrderID, r.MakerOrderID, formatInt(r.Price), formatInt(r.Quantity)}
	case recordv1.Cancelled:
		row = []string{"X", r.OrderID}
	case recordv1.Flushed:
		row = []string{"F"}
	case recordv1.Rejected:
		row = []string{"R", r.OrderID, string(r.Reason)}
	default:
		return errors.Errorf("unsupported record type %T", record)
	}

	if err := w.csvWriter.Write(row); err != nil {
		return errors.Wrap(err, "write record row")
	}
	w.csvWriter.Flush()
	return w.csvWriter.Error()
}

// Flush forces any buffered rows out.
func (w *CSVWriter) Flush() error {
	w.csvWriter.Flush()
	return w.csvWriter.Error()
}

// Close flushes and closes the underlying output when it owns one.
func (w *CSVWriter) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
