// Package payments bridges order checkout to Stripe and Paystack. Every
// operation has a deterministic mock result when the provider credential is
// absent, so the rest of the system runs without live keys.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

const (
	defaultPaystackBaseURL = "https://api.paystack.co"

	// remoteTimeout bounds every provider round-trip.
	remoteTimeout = 20 * time.Second
)

// RemoteError carries a provider's error status and body through to the
// client untranslated.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("payment provider returned %d: %s", e.Status, e.Body)
}

type Conf struct {
	stripeKey       string
	paystackKey     string
	client          *http.Client
	paystackBaseURL string
}

func NewConf(stripeKey, paystackKey string) Conf {
	return Conf{
		stripeKey:       stripeKey,
		paystackKey:     paystackKey,
		client:          &http.Client{Timeout: remoteTimeout},
		paystackBaseURL: defaultPaystackBaseURL,
	}
}

// WithPaystackBaseURL repoints the Paystack API root, used by tests to hit a
// local server.
func (c Conf) WithPaystackBaseURL(u string) Conf {
	c.paystackBaseURL = strings.TrimRight(u, "/")
	return c
}

type StripeIntent struct {
	ClientSecret string
	Mock         bool
}

// CreateStripeIntent creates a PaymentIntent for the given amount in major
// currency units. Without a configured key it returns the fixed mock secret.
func (c *Conf) CreateStripeIntent(ctx context.Context, amount int64, currency string) (StripeIntent, error) {
	if c.stripeKey == "" {
		return StripeIntent{ClientSecret: "mock_client_secret", Mock: true}, nil
	}

	stripe.Key = c.stripeKey
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount * 100),
		Currency: stripe.String(strings.ToLower(currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		var sErr *stripe.Error
		if errors.As(err, &sErr) {
			return StripeIntent{}, &RemoteError{Status: sErr.HTTPStatusCode, Body: sErr.Msg}
		}
		return StripeIntent{}, fmt.Errorf("failed to create stripe payment intent: %w", err)
	}
	return StripeIntent{ClientSecret: intent.ClientSecret}, nil
}

type PaystackTransaction struct {
	AuthorizationURL string
	Reference        string
	Mock             bool
}

type paystackInitRequest struct {
	Email    string `json:"email"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type paystackInitResponse struct {
	Data struct {
		AuthorizationURL string `json:"authorization_url"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// InitPaystackTransaction opens a hosted checkout for the given amount in
// major currency units (sent to Paystack in kobo). Without a configured key
// it returns the fixed mock checkout.
func (c *Conf) InitPaystackTransaction(ctx context.Context, email string, amount int64, currency string) (PaystackTransaction, error) {
	if c.paystackKey == "" {
		return PaystackTransaction{
			AuthorizationURL: "https://paystack.mock/checkout",
			Reference:        "mock_ref",
			Mock:             true,
		}, nil
	}

	body, err := json.Marshal(paystackInitRequest{
		Email:    email,
		Amount:   amount * 100,
		Currency: currency,
	})
	if err != nil {
		return PaystackTransaction{}, fmt.Errorf("failed to marshal paystack request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.paystackBaseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return PaystackTransaction{}, fmt.Errorf("failed to build paystack request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.paystackKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return PaystackTransaction{}, fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return PaystackTransaction{}, fmt.Errorf("failed to read paystack response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return PaystackTransaction{}, &RemoteError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var parsed paystackInitResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return PaystackTransaction{}, fmt.Errorf("failed to decode paystack response: %w", err)
	}
	return PaystackTransaction{
		AuthorizationURL: parsed.Data.AuthorizationURL,
		Reference:        parsed.Data.Reference,
	}, nil
}
