package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	pathOrderEmail = "/api/send-order-email"
	pathWhatsApp   = "/api/send-whatsapp"
)

// Dispatcher posts order-update notifications to the storefront's endpoints.
// Both channels are attempted even when the first fails; the combined error
// is informational only — callers treat notification as best effort.
type Dispatcher struct {
	BaseURL string
	Client  *http.Client
	Log     *zap.Logger
}

func NewDispatcher(baseURL string, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
		Log:     log,
	}
}

type orderUpdateBody struct {
	Type    string `json:"type"`
	OrderID string `json:"orderId"`
}

func (d *Dispatcher) OrderUpdate(ctx context.Context, status, orderID string) error {
	body, err := json.Marshal(orderUpdateBody{Type: status, OrderID: orderID})
	if err != nil {
		return err
	}
	return errors.Join(
		d.post(ctx, pathOrderEmail, body),
		d.post(ctx, pathWhatsApp, body),
	)
}

func (d *Dispatcher) post(ctx context.Context, path string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(req)
	if err != nil {
		return fmt.Errorf("notify %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("notify %s: status %d", path, resp.StatusCode)
	}
	d.Log.Info("notification sent", zap.String("path", path))
	return nil
}
