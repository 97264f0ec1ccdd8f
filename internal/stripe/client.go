package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com"

// SessionRequest describes a destination-charge checkout session. Amount
// and Fee are integer minor units; Metadata carries the correlation key
// echoed back by the completion webhook.
type SessionRequest struct {
	Amount             int64
	Fee                int64
	Currency           string
	Description        string
	DestinationAccount string
	SuccessURL         string
	CancelURL          string
	Metadata           map[string]string
}

type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateAccount creates a standard connected account and returns its id.
func (c *Client) CreateAccount(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("type", "standard")

	var out struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/v1/accounts", form, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.New("stripe: empty account id")
	}
	return out.ID, nil
}

// CreateOnboardingLink returns a hosted onboarding URL for the account.
func (c *Client) CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	form := url.Values{}
	form.Set("account", accountID)
	form.Set("refresh_url", refreshURL)
	form.Set("return_url", returnURL)
	form.Set("type", "account_onboarding")

	var out struct {
		URL string `json:"url"`
	}
	if err := c.post(ctx, "/v1/account_links", form, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// IsAccountVerified reports whether the account finished onboarding and
// has no outstanding requirements.
func (c *Client) IsAccountVerified(ctx context.Context, accountID string) (bool, error) {
	var out struct {
		DetailsSubmitted bool `json:"details_submitted"`
		Requirements     struct {
			CurrentlyDue []string `json:"currently_due"`
		} `json:"requirements"`
	}
	if err := c.get(ctx, "/v1/accounts/"+url.PathEscape(accountID), &out); err != nil {
		return false, err
	}
	return out.DetailsSubmitted && len(out.Requirements.CurrentlyDue) == 0, nil
}

// CreateCheckoutSession opens a payment session with an application fee
// and a destination transfer to the seller's account, returning the
// hosted payment page URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, req SessionRequest) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", req.Currency)
	form.Set("line_items[0][price_data][product_data][name]", req.Description)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(req.Amount, 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("payment_intent_data[application_fee_amount]", strconv.FormatInt(req.Fee, 10))
	form.Set("payment_intent_data[transfer_data][destination]", req.DestinationAccount)
	for k, v := range req.Metadata {
		form.Set("metadata["+k+"]", v)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.post(ctx, "/v1/checkout/sessions", form, &out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", errors.New("stripe: empty session url")
	}
	return out.URL, nil
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.SetBasicAuth(c.apiKey, "")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("stripe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error.Message != "" {
			return fmt.Errorf("stripe: %s: %s", resp.Status, apiErr.Error.Message)
		}
		return fmt.Errorf("stripe: request failed: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
