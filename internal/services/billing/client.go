// Package billing is a thin client for the BlocHQ telco billing API. It
// covers the operator catalog, data products, and airtime/data purchases.
// Catalog reads are not cached; every call round-trips to the provider.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"moniepaddy/internal/models"
)

const defaultBaseURL = "https://api.blochq.io/v1"

// Provider is the surface the orchestrator consumes.
type Provider interface {
	Operators(ctx context.Context) ([]models.NetworkItem, error)
	DataPlans(ctx context.Context, network string) ([]models.DataPlan, error)
	FetchDataPlan(ctx context.Context, network, planID string) (*ResolvedPlan, error)
	BuyAirtime(ctx context.Context, amountMinor int64, phoneNumber, network string) (*PurchaseResult, error)
	BuyData(ctx context.Context, planID, phoneNumber, network string) (*PurchaseResult, error)
}

// Client talks to BlocHQ with a bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a billing client. An empty baseURL selects the live API.
func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, dest interface{}) error {
	var buf *bytes.Buffer
	if body != nil {
		buf = new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: provider returned %d", ErrProviderUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: malformed provider response", ErrProviderUnavailable)
	}
	return nil
}

// Operators lists the telco operators exposed by the provider.
func (c *Client) Operators(ctx context.Context) ([]models.NetworkItem, error) {
	var env struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Data    []models.NetworkItem `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/bills/operators?bill=telco", nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrProviderUnavailable, env.Message)
	}
	return env.Data, nil
}

// DataPlans lists the fixed-fee data products of a network. Fees are
// truncated at the decimal point as the catalog endpoint expects whole major
// units.
func (c *Client) DataPlans(ctx context.Context, network string) ([]models.DataPlan, error) {
	operatorID, ok := OperatorID(network)
	if !ok {
		return nil, ErrUnknownNetwork
	}

	var env struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Data    []models.DataPlan `json:"data"`
	}
	path := fmt.Sprintf("/bills/operators/%s/products?bill=telco", operatorID)
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrProviderUnavailable, env.Message)
	}

	plans := make([]models.DataPlan, 0, len(env.Data))
	for _, plan := range env.Data {
		if plan.FeeType != FeeTypeFixed {
			continue
		}
		plan.Meta.Fee = truncateFee(plan.Meta.Fee)
		plans = append(plans, plan)
	}
	return plans, nil
}

// FetchDataPlan resolves a plan id to its fee before any balance or pin work
// happens in the purchase pipeline.
func (c *Client) FetchDataPlan(ctx context.Context, network, planID string) (*ResolvedPlan, error) {
	plans, err := c.DataPlans(ctx, network)
	if err != nil {
		return nil, err
	}
	for _, plan := range plans {
		if plan.ID == planID {
			fee, err := parseFee(plan.Meta.Fee)
			if err != nil {
				return nil, fmt.Errorf("%w: bad fee %q", ErrProviderUnavailable, plan.Meta.Fee)
			}
			return &ResolvedPlan{ID: plan.ID, FeeMajor: fee, Meta: plan.Meta}, nil
		}
	}
	return nil, ErrPlanNotFound
}

// BuyAirtime executes an airtime purchase. amountMinor is in kobo.
func (c *Client) BuyAirtime(ctx context.Context, amountMinor int64, phoneNumber, network string) (*PurchaseResult, error) {
	operatorID, ok := OperatorID(network)
	if !ok {
		return nil, ErrUnknownNetwork
	}

	body := purchasePayload{
		Amount:     amountMinor,
		OperatorID: operatorID,
		BillType:   "telco",
		Meta:       purchaseMeta{PhoneNumber: phoneNumber},
	}
	return c.purchase(ctx, "/bills/payment", body)
}

// BuyData executes a data bundle purchase for a resolved plan id.
func (c *Client) BuyData(ctx context.Context, planID, phoneNumber, network string) (*PurchaseResult, error) {
	operatorID, ok := OperatorID(network)
	if !ok {
		return nil, ErrUnknownNetwork
	}

	body := purchasePayload{
		OperatorID: operatorID,
		ProductID:  planID,
		BillType:   "telco",
		Meta:       purchaseMeta{PhoneNumber: phoneNumber},
	}
	return c.purchase(ctx, "/bills/payment", body)
}

func (c *Client) purchase(ctx context.Context, path string, body purchasePayload) (*PurchaseResult, error) {
	var env struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    PurchaseResult `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, path, body, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrPurchaseFailed, env.Message)
	}
	return &env.Data, nil
}
