package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"localfarm/internal/domain/service"

	"github.com/pkg/errors"
)

// LocalHTTPPublisher sends events to a local HTTP endpoint in the same push
// format Google Pub/Sub uses, so a local subscriber handler works unchanged.
type LocalHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher targeting a local HTTP endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) *LocalHTTPPublisher {
	return &LocalHTTPPublisher{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// pushMessage mimics the Google Pub/Sub push subscription payload.
type pushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PublishMarketplaceEvent posts the event to the configured endpoint.
func (p *LocalHTTPPublisher) PublishMarketplaceEvent(ctx context.Context, event *service.MarketplaceEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	now := time.Now().UTC()

	var payload pushMessage
	payload.Message.Data = base64.StdEncoding.EncodeToString(data)
	payload.Message.Attributes = eventAttributes(event)
	payload.Message.MessageID = fmt.Sprintf("local-%d", now.UnixNano())
	payload.Message.PublishTime = now.Format(time.RFC3339Nano)
	payload.Subscription = "projects/local/subscriptions/local"

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal push payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send event")
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			p.logger.Warn("Failed to close response body", slog.Any("error", err))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("endpoint returned status %d", resp.StatusCode)
	}

	p.logger.Debug("Published event to local endpoint",
		slog.String("type", event.Type),
		slog.Int64("entity_id", event.EntityID),
	)

	return nil
}

// Close is a no-op for the HTTP publisher.
func (p *LocalHTTPPublisher) Close() error {
	return nil
}
