// Package payment creates hosted checkout sessions with the external
// payment provider. The provider is treated as a collaborator behind the
// SessionProvider interface; only session creation is modeled here.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/munchly/munchly/internal/errors"
)

// LineItem is one purchasable row of a checkout session.
type LineItem struct {
	Name     string
	Price    float64
	Quantity int
}

// SessionInput describes the checkout session to create for an order.
type SessionInput struct {
	OrderID string
	Items   []LineItem
}

// Session is the created checkout session the client is redirected to.
type Session struct {
	ID  string
	URL string
}

// SessionProvider creates hosted checkout sessions. The call is made once
// per order placement, never retried.
type SessionProvider interface {
	CreateSession(ctx context.Context, input *SessionInput) (*Session, error)
}

// Config holds the provider credentials and session parameters.
type Config struct {
	// SecretKey authenticates against the provider API.
	SecretKey string

	// APIURL is the provider endpoint base, without a trailing slash.
	APIURL string

	// Currency is the ISO currency code for all line items.
	Currency string

	// FrontendURL is the base for the verify redirect URLs.
	FrontendURL string

	// DeliveryFeeCents is added to every session as its own line item.
	DeliveryFeeCents int64
}

// stripeClient implements SessionProvider against the Stripe Checkout API.
type stripeClient struct {
	config     Config
	httpClient *http.Client
}

// NewStripeClient creates a SessionProvider backed by Stripe Checkout.
func NewStripeClient(config Config) SessionProvider {
	return &stripeClient{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateSession builds the form-encoded checkout request and returns the
// session the client is redirected to. The success and cancel URLs both
// point at the frontend verify page carrying the order id, differing only
// in the success flag.
func (s *stripeClient) CreateSession(ctx context.Context, input *SessionInput) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", s.verifyURL(input.OrderID, true))
	form.Set("cancel_url", s.verifyURL(input.OrderID, false))

	for i, item := range input.Items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", s.config.Currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(toCents(item.Price), 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
	}

	// Delivery fee as a trailing line item
	prefix := fmt.Sprintf("line_items[%d]", len(input.Items))
	form.Set(prefix+"[price_data][currency]", s.config.Currency)
	form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(s.config.DeliveryFeeCents, 10))
	form.Set(prefix+"[price_data][product_data][name]", "Delivery Charges")
	form.Set(prefix+"[quantity]", "1")

	endpoint := s.config.APIURL + "/checkout/sessions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build checkout request")
	}
	req.Header.Set("Authorization", "Bearer "+s.config.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, "checkout request failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused; the body is not surfaced
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, apperrors.Wrapf(apperrors.New("payment provider error"),
			"checkout session creation returned status %d", resp.StatusCode)
	}

	var payload struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode checkout session")
	}

	return &Session{ID: payload.ID, URL: payload.URL}, nil
}

// verifyURL builds the frontend redirect target for a session outcome.
func (s *stripeClient) verifyURL(orderID string, success bool) string {
	return fmt.Sprintf("%s/verify?success=%t&orderId=%s", s.config.FrontendURL, success, orderID)
}

// toCents converts a display price to the provider's minor currency unit.
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
