package mq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"

	"file-registry-api/config"
	"file-registry-api/internal/domain/event"
)

// DeclareTopology declares the durable events exchange and the audit queue
// and binds every event action to it. Declarations are idempotent, so the
// publisher and the consumer both call it and whichever runs first wins.
func DeclareTopology(ch *amqp091.Channel, cfg config.MQ) error {
	const durable, autoDelete, internal, exclusive, noWait = true, false, false, false, false

	if err := ch.ExchangeDeclare(cfg.Exchange, cfg.ExchangeType, durable, autoDelete, internal, noWait, nil); err != nil {
		return fmt.Errorf("exchange declare %s: %w", cfg.Exchange, err)
	}
	if _, err := ch.QueueDeclare(cfg.QueueName, durable, autoDelete, exclusive, noWait, nil); err != nil {
		return fmt.Errorf("queue declare %s: %w", cfg.QueueName, err)
	}
	for _, rk := range event.Actions {
		if err := ch.QueueBind(cfg.QueueName, string(rk), cfg.Exchange, noWait, nil); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	return nil
}
