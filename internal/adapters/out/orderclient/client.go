// Package orderclient provides the HTTP client for the external order system.
// The tracking core only ever asks it one question: which buyer does a
// purchase belong to.
package orderclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
)

const requestTimeout = 5 * time.Second

// orderResponse mirrors the order system's wire representation of a purchase.
type orderResponse struct {
	ID      int64 `json:"id"`
	BuyerID int64 `json:"buyer_id"`
}

// Client implements ports.OrderLookup against the order system's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a lookup client for the order system at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// GetOrderByID fetches the purchase order. A 404 from the order system maps
// to (nil, nil): the purchase is unknown and the caller skips notification.
func (c *Client) GetOrderByID(ctx context.Context, orderID kernel.ID) (*ports.PurchaseOrder, error) {
	url := fmt.Sprintf("%s/api/v1/orders/%s", c.baseURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call order system: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fallthrough to decoding below
	case http.StatusNotFound:
		return nil, nil //nolint:nilnil //an unknown purchase is a valid empty result
	default:
		return nil, fmt.Errorf("order system returned status %d for order %s", resp.StatusCode, orderID)
	}

	var body orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	id, err := kernel.NewID(body.ID)
	if err != nil {
		return nil, fmt.Errorf("order system returned invalid order id: %w", err)
	}
	buyerID, err := kernel.NewID(body.BuyerID)
	if err != nil {
		return nil, fmt.Errorf("order system returned invalid buyer id: %w", err)
	}

	return &ports.PurchaseOrder{ID: id, BuyerID: buyerID}, nil
}
