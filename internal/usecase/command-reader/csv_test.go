package commandreader

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commandv1 "github.com/lfordyce/orderbook/internal/domain/command/v1"
	orderbookv1 "github.com/lfordyce/orderbook/internal/domain/orderbook/v1"
	"github.com/lfordyce/orderbook/pkg/logger"
)

func newTestReader(t *testing.T, input string) *CSVReader {
	t.Helper()
	log, err := logger.NewLogger(logger.WithOutputPaths([]string{"stderr"}))
	require.NoError(t, err)
	return NewCSVReader(strings.NewReader(input), nil, log)
}

func readAll(t *testing.T, r *CSVReader) []commandv1.Command {
	t.Helper()
	var cmds []commandv1.Command
	for {
		cmd, err := r.Read(context.Background())
		if err == io.EOF {
			return cmds
		}
		require.NoError(t, err)
		cmds = append(cmds, cmd)
	}
}

func TestCSVReaderParsesCommands(t *testing.T) {
	input := strings.Join([]string{
		"# balanced scenario",
		"N,1,B,100,10",
		"",
		"N,2,S,100,4",
		"C,1",
		"F",
	}, "\n")

	cmds := readAll(t, newTestReader(t, input))

	require.Len(t, cmds, 4)
	assert.Equal(t, commandv1.New("1", orderbookv1.Buy, 100, 10), cmds[0])
	assert.Equal(t, commandv1.New("2", orderbookv1.Sell, 100, 4), cmds[1])
	assert.Equal(t, commandv1.Cancel("1"), cmds[2])
	assert.Equal(t, commandv1.Flush(), cmds[3])
}

func TestCSVReaderTrimsWhitespace(t *testing.T) {
	cmds := readAll(t, newTestReader(t, "N, 7 , s , 42 , 3 \n"))

	require.Len(t, cmds, 1)
	assert.Equal(t, commandv1.New("7", orderbookv1.Sell, 42, 3), cmds[0])
}

func TestCSVReaderSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"N,1,B,100",       // too few fields
		"N,2,Q,100,5",     // bad side
		"N,3,B,abc,5",     // bad price
		"N,4,B,100,xyz",   // bad quantity
		"Z,whatever",      // unknown command
		"C",               // cancel without id
		"F,extra",         // flush with fields
		"N,ok,B,100,5",    // valid
	}, "\n")

	cmds := readAll(t, newTestReader(t, input))

	require.Len(t, cmds, 1)
	assert.Equal(t, "ok", cmds[0].OrderID)
}

func TestCSVReaderHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestReader(t, "N,1,B,100,10\n")
	_, err := r.Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCSVReaderEmptyInput(t *testing.T) {
	r := newTestReader(t, "")
	_, err := r.Read(context.Background())
	assert.Equal(t, io.EOF, err)
}
