package rabbitmq

import "context"

type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, data any) error
}

var _ PublisherInterface = (*Publisher)(nil)

// NopPublisher drops every event. Used when the broker is unreachable at
// startup so the service still serves traffic; events are best-effort.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }