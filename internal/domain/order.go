package domain

import "time"

type OrderStatus string

const (
	OrderCreated         OrderStatus = "created"
	OrderPaymentRequired OrderStatus = "payment_required"
	OrderPaid            OrderStatus = "paid"
	OrderCompleted       OrderStatus = "completed"
	OrderCancelled       OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderCreated:         {OrderPaymentRequired, OrderCancelled},
	OrderPaymentRequired: {OrderPaymentRequired, OrderPaid, OrderCancelled},
	OrderPaid:            {OrderCompleted},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// Order is a one-shot purchase. Price is snapshotted from the item's
// sale terms at creation and never re-read.
type Order struct {
	ID        string      `json:"id"`
	ItemID    string      `json:"item_id"`
	BuyerID   string      `json:"buyer_id"`
	SellerID  string      `json:"seller_id"`
	Price     int64       `json:"price"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
