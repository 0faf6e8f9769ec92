package service

import (
	"context"
	"time"
)

// Marketplace event types published on state changes.
const (
	EventTypeProductApproved = "product.approved"
	EventTypeOrderCreated    = "order.created"
)

// MarketplaceEvent is the payload published when a product is approved or an
// order is created. Consumers (moderation tooling, vendor notifications) react
// asynchronously; the originating state change has already committed.
type MarketplaceEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMarketplaceEvent publishes a marketplace event for async processing
	PublishMarketplaceEvent(ctx context.Context, event *MarketplaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
