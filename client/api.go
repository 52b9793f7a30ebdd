package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kbs-store/models"
)

// APIClient talks to the storefront backend. Network failures surface to the
// caller; only LoadCatalog substitutes fallback data.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *APIClient) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Featured != nil {
		query.Set("featured", fmt.Sprintf("%t", *filter.Featured))
	}
	if filter.InStock != nil {
		query.Set("inStock", fmt.Sprintf("%t", *filter.InStock))
	}

	endpoint := c.baseURL + "/api/items"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var items []models.Item
	if err := c.get(ctx, endpoint, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadCatalog lists all items, substituting the built-in sample catalog when
// the backend is unreachable. The second return reports whether the fallback
// was used.
func (c *APIClient) LoadCatalog(ctx context.Context) ([]models.Item, bool) {
	items, err := c.ListItems(ctx, models.ItemFilter{})
	if err != nil {
		return SampleCatalog(), true
	}
	return items, false
}

func (c *APIClient) GetItem(ctx context.Context, id string) (*models.Item, error) {
	var item models.Item
	if err := c.get(ctx, c.baseURL+"/api/items/"+url.PathEscape(id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *APIClient) CreateItem(ctx context.Context, req models.CreateItemRequest) (*models.Item, error) {
	var item models.Item
	if err := c.post(ctx, c.baseURL+"/api/items", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *APIClient) DeleteItem(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/items/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	var resp models.MessageResponse
	return c.do(req, &resp)
}

func (c *APIClient) GeneratePin(ctx context.Context, phone string) (*models.GeneratePinResponse, error) {
	var resp models.GeneratePinResponse
	err := c.post(ctx, c.baseURL+"/api/generate-pin", models.GeneratePinRequest{Phone: phone}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) VerifyPin(ctx context.Context, phone, pin string) (bool, error) {
	var resp models.VerifyPinResponse
	err := c.post(ctx, c.baseURL+"/api/verify-pin", models.VerifyPinRequest{Phone: phone, Pin: pin}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Verified, nil
}

func (c *APIClient) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *APIClient) post(ctx context.Context, endpoint string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *APIClient) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var apiErr models.ErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
