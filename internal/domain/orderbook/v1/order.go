package orderbookv1

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSide is returned when a side token cannot be parsed.
	ErrInvalidSide = errors.New("side must be buy or sell")
)

// Side identifies the side of the book an order belongs to.
type Side int

const (
	// Buy orders rest on the bid side of the book.
	Buy Side = iota
	// Sell orders rest on the ask side of the book.
	Sell
)

// Opposite returns the side an incoming order matches against.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

func (s Side) String() string {
	if s == Buy {
		return "B"
	}
	return "S"
}

// ParseSide parses a side token. Both the single-letter wire form ("B"/"S")
// and the long form ("buy"/"sell") are accepted, case-insensitive.
func ParseSide(token string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "B", "BUY":
		return Buy, nil
	case "S", "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrInvalidSide, token)
	}
}

// MarshalText implements encoding.TextMarshaler so sides serialize as "B"/"S".
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// Order represents a single live order in the book. Orders live only in the
// Ledger; price levels reference them by identifier.
type Order struct {
	ID        string `json:"id"`
	Side      Side   `json:"side"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`  // original quantity
	Remaining int64  `json:"remaining"` // 0 <= Remaining <= Quantity
	Sequence  uint64 `json:"sequence"`  // arrival sequence, the time-priority tie-break
}

// NewOrder creates a new order with the given parameters. Remaining starts
// at the full original quantity.
func NewOrder(id string, side Side, price, quantity int64, sequence uint64) *Order {
	return &Order{
		ID:        id,
		Side:      side,
		Price:     price,
		Quantity:  quantity,
		Remaining: quantity,
		Sequence:  sequence,
	}
}

// Filled returns the quantity executed so far.
func (o *Order) Filled() int64 {
	return o.Quantity - o.Remaining
}

// IsBuy checks if the order is a buy (bid) order.
func (o *Order) IsBuy() bool {
	return o.Side == Buy
}

// IsFilled checks if the order is fully executed.
func (o *Order) IsFilled() bool {
	return o.Remaining == 0
}

// Crosses reports whether the order would trade against a resting level at
// the given price on the opposite side.
func (o *Order) Crosses(price int64) bool {
	if o.Side == Buy {
		return price <= o.Price
	}
	return price >= o.Price
}
