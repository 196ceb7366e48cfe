package events

import "context"

// NoOpPublisher discards events. Used when NATS is not configured.
type NoOpPublisher struct{}

func NewNoOpPublisher() *NoOpPublisher {
	return &NoOpPublisher{}
}

func (p *NoOpPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}
