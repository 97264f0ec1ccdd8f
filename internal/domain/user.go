package domain

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone,omitempty"`
	Score           float64  `json:"score"`
	Reviews         int      `json:"reviews"`
	Role            UserRole `json:"role"`
	StripeAccountID string   `json:"stripe_account_id,omitempty"`
}
