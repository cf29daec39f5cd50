package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

// Client talks to the Paystack transaction API over HTTP.
type Client struct {
	secretKey string
	publicKey string
	baseURL   string
	client    *http.Client
}

func NewClient() (*Client, error) {
	key := os.Getenv("PAYSTACK_SECRET_KEY")
	if key == "" {
		return nil, errors.New("PAYSTACK_SECRET_KEY not set")
	}
	return &Client{
		secretKey: key,
		publicKey: os.Getenv("PAYSTACK_PUBLIC_KEY"),
		baseURL:   "https://api.paystack.co",
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

type initializeRequest struct {
	Email    string `json:"email"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID        int64  `json:"id"`
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
	} `json:"data"`
}

// CreateIntent initializes a transaction. Paystack amounts are in kobo.
func (c *Client) CreateIntent(ctx context.Context, amountMinor int64, currency, email, _ string) (*model.PaymentIntent, error) {
	body := initializeRequest{
		Email:    email,
		Amount:   amountMinor,
		Currency: currency,
	}
	var resp initializeResponse
	if err := c.post(ctx, "/transaction/initialize", body, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, fmt.Errorf("paystack initialize failed: %s", resp.Message)
	}
	return &model.PaymentIntent{
		ID:           resp.Data.Reference,
		ClientSecret: resp.Data.AccessCode,
		Reference:    resp.Data.Reference,
		AmountMinor:  amountMinor,
		Currency:     currency,
		Status:       "pending",
	}, nil
}

// VerifyIntent asks Paystack for the transaction behind reference. A
// "success" transaction status maps to the canonical succeeded status.
func (c *Client) VerifyIntent(ctx context.Context, reference string) (*model.PaymentIntent, error) {
	var resp verifyResponse
	if err := c.get(ctx, "/transaction/verify/"+reference, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, fmt.Errorf("paystack verify failed: %s", resp.Message)
	}

	status := resp.Data.Status
	if status == "success" {
		status = model.PaymentIntentStatusSucceeded
	}
	return &model.PaymentIntent{
		ID:          resp.Data.Reference,
		Reference:   resp.Data.Reference,
		AmountMinor: resp.Data.Amount,
		Currency:    resp.Data.Currency,
		Status:      status,
	}, nil
}

func (c *Client) PublicKey() string {
	return c.publicKey
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return fmt.Errorf("paystack %s: %s", resp.Status, buf.String())
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
