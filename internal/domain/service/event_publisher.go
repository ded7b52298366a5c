package service

import (
	"context"
	"time"
)

// CatalogAction is the kind of change a CatalogEvent reports.
type CatalogAction string

const (
	CatalogCreated CatalogAction = "created"
	CatalogUpdated CatalogAction = "updated"
	CatalogRemoved CatalogAction = "removed"
)

// CatalogEvent announces a change to a brand, product or banner.
type CatalogEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Resource   string        `json:"resource"`
	ResourceID string        `json:"resource_id"`
	Action     CatalogAction `json:"action"`
	ActorID    string        `json:"actor_id,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog change event
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
