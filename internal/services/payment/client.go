// Package payment is a thin client for the Paystack transaction-verify
// endpoint used to confirm wallet funding references.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.paystack.co"

// Client errors
var (
	ErrVerificationFailed = errors.New("could not confirm transaction")
)

// Provider is the surface the orchestrator consumes.
type Provider interface {
	VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error)
}

// VerifyResult carries the provider-confirmed amount for a reference. Amount
// is already in minor units; it must not be converted again.
type VerifyResult struct {
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

// Client talks to Paystack with the secret key.
type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
}

// NewClient creates a payment client. An empty baseURL selects the live API.
func NewClient(secret, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		secret:  secret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// VerifyTransaction confirms a funding reference with the provider. The call
// is awaited; callers respond exactly once based on its outcome.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	defer resp.Body.Close()

	var env struct {
		Status  bool         `json:"status"`
		Message string       `json:"message"`
		Data    VerifyResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: malformed provider response", ErrVerificationFailed)
	}
	if !env.Status {
		return nil, fmt.Errorf("%w: %s", ErrVerificationFailed, env.Message)
	}
	return &env.Data, nil
}
