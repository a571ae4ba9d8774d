package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/greenriot/greenriot/internal/config"
	"github.com/greenriot/greenriot/pkg/clients"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrAPIFailure = errors.New("stripe api failure")

type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	Customer      string            `json:"customer"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	PaymentStatus string            `json:"payment_status"`
	Metadata      map[string]string `json:"metadata"`
	Created       int64             `json:"created"`
}

type Transfer struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Destination string `json:"destination"`
}

type CheckoutParams struct {
	Customer    string
	AmountCents int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

type Client struct {
	baseURL       string
	secretKey     string
	webhookSecret string
	client        clients.HTTPClientI
}

func NewClient(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL:       cfg.StripeAPIURL,
		secretKey:     cfg.StripeSecretKey,
		webhookSecret: cfg.StripeWebhookSecret,
		client:        client,
	}
}

// ToCents converts a decimal credit amount to the processor's integer minor
// units.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).IntPart()
}

// FromCents converts integer minor units back to a decimal credit amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = http.NoBody
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("can't build stripe request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if method == http.MethodPost {
		// Stripe dedupes retried writes by this key.
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("stripe request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("can't read stripe response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
				Type    string `json:"type"`
			} `json:"error"`
		}
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			zap.L().Error("stripe api error",
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
				zap.String("type", apiErr.Error.Type),
			)
			return fmt.Errorf("%w: %s", ErrAPIFailure, apiErr.Error.Message)
		}
		return fmt.Errorf("%w: unexpected status %d", ErrAPIFailure, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("can't parse stripe response: %w", err)
	}
	return nil
}

// FindOrCreateCustomer looks a customer up by email and creates one when the
// lookup comes back empty.
func (c *Client) FindOrCreateCustomer(ctx context.Context, email string) (*Customer, error) {
	query := url.Values{}
	query.Set("email", email)
	query.Set("limit", "1")

	var list struct {
		Data []Customer `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/customers?"+query.Encode(), nil, &list); err != nil {
		return nil, err
	}
	if len(list.Data) > 0 {
		return &list.Data[0], nil
	}

	form := url.Values{}
	form.Set("email", email)
	var customer Customer
	if err := c.do(ctx, http.MethodPost, "/v1/customers", form, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("customer", params.Customer)
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(params.Currency))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.AmountCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	for k, v := range params.Metadata {
		form.Set("metadata["+k+"]", v)
	}

	var session CheckoutSession
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) CreateTransfer(ctx context.Context, amountCents int64, currency, destination string) (*Transfer, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", strings.ToLower(currency))
	form.Set("destination", destination)

	var transfer Transfer
	if err := c.do(ctx, http.MethodPost, "/v1/transfers", form, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

func (c *Client) GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error) {
	var session CheckoutSession
	if err := c.do(ctx, http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(id), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) ListCheckoutSessions(ctx context.Context, customer string, since time.Time) ([]CheckoutSession, error) {
	query := url.Values{}
	query.Set("customer", customer)
	query.Set("limit", "100")
	query.Set("created[gte]", strconv.FormatInt(since.Unix(), 10))

	var list struct {
		Data []CheckoutSession `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/checkout/sessions?"+query.Encode(), nil, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}
