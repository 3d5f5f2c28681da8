package commandreader

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	commandv1 "github.com/lfordyce/orderbook/internal/domain/command/v1"
	orderbookv1 "github.com/lfordyce/orderbook/internal/domain/orderbook/v1"
	"github.com/lfordyce/orderbook/pkg/logger"
)

// CSVReader parses the comma-separated command stream:
//
//	N,<orderID>,<side>,<price>,<quantity>   submit
//	C,<orderID>                             cancel
//	F                                       flush
//
// Blank lines and lines starting with '#' are skipped. Malformed lines are
// logged and dropped rather than stopping the stream.
type CSVReader struct {
	csvReader *csv.Reader
	closer    io.Closer
	logger    logger.Interface
}

// NewCSVReader wraps an input stream. The closer may be nil for stdin.
func NewCSVReader(r io.Reader, closer io.Closer, log logger.Interface) *CSVReader {
	csvReader := csv.NewReader(r)
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	return &CSVReader{
		csvReader: csvReader,
		closer:    closer,
		logger:    log,
	}
}

// Read returns the next well-formed command, or io.EOF at end of stream.
func (r *CSVReader) Read(ctx context.Context) (commandv1.Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return commandv1.Command{}, err
		}

		row, err := r.csvReader.Read()
		if err != nil {
			if err == io.EOF {
				return commandv1.Command{}, io.EOF
			}
			// csv.Reader recovers at the next line; treat the bad line
			// like any other malformed input.
			r.logger.Warn("skipping unreadable line",
				logger.Field{Key: "error", Value: err.Error()},
			)
			continue
		}

		cmd, ok := r.parse(row)
		if !ok {
			continue
		}
		return cmd, nil
	}
}

func (r *CSVReader) parse(row []string) (commandv1.Command, bool) {
	if len(row) == 0 {
		return commandv1.Command{}, false
	}

	switch strings.ToUpper(strings.TrimSpace(row[0])) {
	case "N":
		if len(row) != 5 {
			return r.skip(row, "submit needs 5 fields")
		}
		side, err := orderbookv1.ParseSide(row[2])
		if err != nil {
			return r.skip(row, err.Error())
		}
		price, err := strconv.ParseInt(strings.TrimSpace(row[3]), 10, 64)
		if err != nil {
			return r.skip(row, "bad price")
		}
		quantity, err := strconv.ParseInt(strings.TrimSpace(row[4]), 10, 64)
		if err != nil {
			return r.skip(row, "bad quantity")
		}
		return commandv1.New(strings.TrimSpace(row[1]), side, price, quantity), true

	case "C":
		if len(row) != 2 {
			return r.skip(row, "cancel needs 2 fields")
		}
		return commandv1.Cancel(strings.TrimSpace(row[1])), true

	case "F":
		if len(row) != 1 {
			return r.skip(row, "flush takes no fields")
		}
		return commandv1.Flush(), true

	default:
		return r.skip(row, "unknown command")
	}
}

func (r *CSVReader) skip(row []string, reason string) (commandv1.Command, bool) {
	r.logger.Warn("skipping malformed line",
		logger.Field{Key: "line", Value: strings.Join(row, ",")},
		logger.Field{Key: "reason", Value: reason},
	)
	return commandv1.Command{}, false
}

// Close closes the underlying input when it owns one.
func (r *CSVReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
