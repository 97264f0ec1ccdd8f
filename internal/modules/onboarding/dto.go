package onboarding

type CreateLinkResult struct {
	URL       string `json:"url"`
	AccountID string `json:"account_id"`
}

type StatusResult struct {
	Connected bool   `json:"connected"`
	AccountID string `json:"account_id,omitempty"`
}
