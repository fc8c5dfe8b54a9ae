package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.stripe.com/v1"

// Client talks to the provider's REST API directly: form-encoded bodies,
// basic auth with the secret key.
type Client struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

func NewClient(secretKey string) *Client {
	return &Client{
		secretKey: secretKey,
		baseURL:   defaultBaseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Intent is the provider-side payment intent.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type CreateIntentInput struct {
	Amount    float64
	Currency  string
	BookingID uint
}

// ProviderError carries the raw provider message so handlers can pass it
// through on a 400.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (%d): %s", e.Status, e.Message)
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) CreateIntent(ctx context.Context, in CreateIntentInput) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(int64(in.Amount*100), 10)) // cents
	form.Set("currency", in.Currency)
	form.Set("metadata[booking_id]", strconv.FormatUint(uint64(in.BookingID), 10))
	form.Set("automatic_payment_methods[enabled]", "true")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/payment_intents",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", uuid.NewString())
	req.SetBasicAuth(c.secretKey, "")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var env errorEnvelope
		if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
			return nil, &ProviderError{Status: res.StatusCode, Message: env.Error.Message}
		}
		return nil, &ProviderError{Status: res.StatusCode, Message: string(body)}
	}

	var intent Intent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("parse intent json failed: %w", err)
	}

	return &intent, nil
}
