package domain

// TransactionKind discriminates the two checkout flows. The kind plus
// the booking/order id form the correlation key embedded in the
// external payment session and echoed back on completion.
type TransactionKind string

const (
	TxRent TransactionKind = "rent"
	TxSell TransactionKind = "sell"
)
