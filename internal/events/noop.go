package events

import "context"

// NoopPublisher discards all events. Used when no broker is configured and
// in tests that do not assert on events.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops everything.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish discards the event.
func (*NoopPublisher) Publish(context.Context, string, any) error {
	return nil
}
