package listing

type CreateItemRequest struct {
	Mode        string `json:"mode" binding:"required"`
	Title       string `json:"title" binding:"required"`
	City        string `json:"city"`
	Desc        string `json:"desc"`
	PricePerDay int64  `json:"price_per_day"`
	Deposit     int64  `json:"deposit"`
	Price       int64  `json:"price"`
}
