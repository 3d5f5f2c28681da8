package orderbookv1

// Fill represents one execution produced while matching an incoming order:
// the resting (maker) order it traded against, the maker's resting price,
// and the executed quantity. Fills are emitted in execution order.
type Fill struct {
	MakerOrderID string `json:"makerOrderID"`
	Price        int64  `json:"price"`
	Quantity     int64  `json:"quantity"`
}
