package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"reddys-kitchen/web-svc/internal/checkout"
	"reddys-kitchen/web-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StoreClient talks to the storefront API for catalog and order data.
type StoreClient struct {
	baseURL string
	client  HTTPClient
}

func NewStoreClient(baseURL string, client HTTPClient) *StoreClient {
	return &StoreClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (c *StoreClient) BaseURL() string { return c.baseURL }

func (c *StoreClient) FetchCatalog(ctx context.Context) ([]domain.Restaurant, error) {
	var raw []restaurantRecord
	if err := c.getJSON(ctx, "/api/restaurants", &raw); err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return transform(raw), nil
}

func (c *StoreClient) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.getJSON(ctx, "/api/orders", &orders); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

// SubmitOrder posts the order. Any 2xx response is a success; the stored
// order is decoded from the body when one is present.
func (c *StoreClient) SubmitOrder(ctx context.Context, submission checkout.Submission) (*domain.Order, error) {
	body, err := json.Marshal(submission)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}

	var order domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return &domain.Order{}, nil
	}
	return &order, nil
}

func (c *StoreClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
}
