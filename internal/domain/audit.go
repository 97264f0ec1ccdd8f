package domain

import "time"

// Audit actions recorded by the core.
const (
	ActionSignup           = "signup"
	ActionLogin            = "login"
	ActionCreateItem       = "create_item"
	ActionRequestBooking   = "request_booking"
	ActionCancelBooking    = "cancel_booking"
	ActionCreateOrder      = "create_order"
	ActionCancelOrder      = "cancel_order"
	ActionCheckoutRent     = "checkout_rent"
	ActionCheckoutSell     = "checkout_sell"
	ActionRentPaidApproved = "rent_paid_approved"
	ActionSellPaid         = "sell_paid"
	ActionRate             = "rate"
	ActionAccountCreated   = "connect_account_created"
)

type AuditEntry struct {
	ID     string    `json:"id"`
	Action string    `json:"action"`
	Detail string    `json:"detail"`
	By     string    `json:"by"`
	At     time.Time `json:"at"`
}
