package webhooks

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

type httpProbe struct {
	client *http.Client
}

// NewHTTPProbe creates a probe that re-delivers the event payload to its
// endpoint and reads the outcome from the response status.
func NewHTTPProbe(timeout time.Duration) DeliveryProbe {
	return &httpProbe{client: &http.Client{Timeout: timeout}}
}

func (p *httpProbe) CheckDelivery(ctx context.Context, event Event) (delivered bool, resolved bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, event.Endpoint, bytes.NewReader(event.Payload))
	if err != nil {
		return false, false, fmt.Errorf("failed to build probe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Event", event.EventType)
	req.Header.Set("X-Webhook-ID", event.ID.String())

	resp, err := p.client.Do(req)
	if err != nil {
		return false, false, fmt.Errorf("probe request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, true, nil
	case resp.StatusCode >= 500:
		// Endpoint is still unhealthy, keep the retry in flight
		return false, false, nil
	default:
		// The endpoint answered and rejected the delivery
		return false, true, nil
	}
}
