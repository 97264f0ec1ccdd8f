package domain

type ItemMode string

const (
	ModeRent ItemMode = "rent"
	ModeSell ItemMode = "sell"
)

// RentTerms is present only on items listed for rental.
// Amounts are integer minor currency units.
type RentTerms struct {
	PricePerDay int64 `json:"price_per_day"`
	Deposit     int64 `json:"deposit"`
}

// SaleTerms is present only on items listed for sale.
type SaleTerms struct {
	Price int64 `json:"price"`
}

type Item struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Mode      ItemMode   `json:"mode"`
	Title     string     `json:"title"`
	City      string     `json:"city"`
	Desc      string     `json:"desc,omitempty"`
	Available bool       `json:"available"`
	Rent      *RentTerms `json:"rent,omitempty"`
	Sale      *SaleTerms `json:"sale,omitempty"`
}
