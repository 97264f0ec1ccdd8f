package order

type CreateOrderRequest struct {
	ItemID  string `json:"item_id" binding:"required"`
	BuyerID string `json:"buyer_id" binding:"required"`
}
