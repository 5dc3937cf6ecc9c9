package ports

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	"file-registry-api/internal/domain/event"
)

// EventPublisher must never block the caller.
type EventPublisher interface {
	Publish(e event.Event)
}

type RabbitMQ interface {
	EventPublisher
	Connect(ctx context.Context, dsn string) error
	Init() error
	PublisherWorker(ctx context.Context)
	GetConn() *amqp091.Connection
}

// RMQConsumer drains the audit queue the publisher feeds.
type RMQConsumer interface {
	Connect(dsn string) error
	Init() error
	DeliveryWorker(ctx context.Context)
}
