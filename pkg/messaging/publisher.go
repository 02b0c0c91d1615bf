// Package messaging defines the event contract between the store and any
// downstream consumers.
package messaging

import (
	"context"
)

// PurchasesCompletedSubject is the subject purchase events are published on.
const PurchasesCompletedSubject = "purchases.completed"

// Event is a publishable domain event.
type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

// Publisher delivers events to a broker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher discards events. Used when messaging is disabled.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops every event.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish discards the event.
func (p *NoopPublisher) Publish(_ context.Context, _ Event) error {
	return nil
}
