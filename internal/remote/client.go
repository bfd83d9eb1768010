package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"alvs-system/internal/entities"
	apperrors "alvs-system/pkg/errors"

	"go.uber.org/zap"
)

// Client talks to the company's legacy backend: a single endpoint whose
// actions are dispatched through the "action" query parameter. Any network
// error, non-2xx status or malformed body is reported uniformly as a failure;
// the synchronizer decides what that means for pulls and for pushes.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.Named("remote_client"),
	}
}

// FetchEquipments pulls every equipment with its nested service records.
func (c *Client) FetchEquipments(ctx context.Context) ([]entities.Equipment, error) {
	return fetchCollection[entities.Equipment](c, ctx, "get_all")
}

// FetchCustomers pulls every customer.
func (c *Client) FetchCustomers(ctx context.Context) ([]entities.Customer, error) {
	return fetchCollection[entities.Customer](c, ctx, "get_customers")
}

// PushEquipment sends a newly created equipment to the remote store.
func (c *Client) PushEquipment(ctx context.Context, item entities.Equipment) error {
	return c.push(ctx, "add_equipment", item)
}

// PushCustomer sends a newly created customer to the remote store.
func (c *Client) PushCustomer(ctx context.Context, item entities.Customer) error {
	return c.push(ctx, "add_customer", item)
}

// PushService sends a service record together with the equipment status it
// sets. Server-side the insert and the status update are expected to commit
// atomically.
func (c *Client) PushService(ctx context.Context, record entities.ServiceRecord, newStatus entities.EquipmentStatus) error {
	payload := struct {
		entities.ServiceRecord
		NewStatus entities.EquipmentStatus `json:"newStatus"`
	}{ServiceRecord: record, NewStatus: newStatus}
	return c.push(ctx, "add_service", payload)
}

// fetchCollection issues a read-all request for one action and decodes the
// body, rejecting anything that is not a JSON array of the expected shape.
func fetchCollection[T any](c *Client, ctx context.Context, action string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.actionURL(action), nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w", action, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrRemoteUnavailable, action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", apperrors.ErrRemoteUnavailable, action, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s body: %v", apperrors.ErrRemoteUnavailable, action, err)
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrMalformedResponse, action, err)
	}

	c.logger.Debug("pulled collection",
		zap.String("action", action),
		zap.Int("count", len(items)),
	)
	return items, nil
}

type pushResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (c *Client) push(ctx context.Context, action string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serializing %q payload: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.actionURL(action), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request for %q: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrRemoteUnavailable, action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned %s", apperrors.ErrRemoteUnavailable, action, resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading %s body: %v", apperrors.ErrRemoteUnavailable, action, err)
	}

	var result pushResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrMalformedResponse, action, err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s: %s", apperrors.ErrPushRejected, action, result.Error)
	}
	return nil
}

func (c *Client) actionURL(action string) string {
	return c.baseURL + "?action=" + url.QueryEscape(action)
}
