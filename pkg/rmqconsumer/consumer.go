package rmqconsumer

import (
	"context"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"file-registry-api/config"
	"file-registry-api/internal/domain/event"
	"file-registry-api/internal/infrastructure/mq"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

var actionNames = map[event.Action]string{
	event.UserRegistered:    "UserRegistered",
	event.UserAuthenticated: "UserAuthenticated",
	event.FileUploaded:      "FileUploaded",
	event.FileDeleted:       "FileDeleted",
}

type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
}

// New takes an optional connection to share with the publisher, Connect
// dials its own when conn is nil.
func New(cfg config.MQ, logger *zap.Logger, conn *amqp091.Connection) *Consumer {
	return &Consumer{
		cfg:  cfg,
		log:  logger,
		conn: conn,
	}
}

func (c *Consumer) Connect(dsn string) error {
	conn := c.conn
	if conn == nil || conn.IsClosed() {
		var err error
		conn, err = amqp091.Dial(dsn)
		if err != nil {
			return fmt.Errorf("amqp dial: %w", err)
		}
	}

	ch, err := conn.Channel()
	if err != nil {
		if conn != c.conn {
			_ = conn.Close()
		}
		return fmt.Errorf("amqp channel: %w", err)
	}
	c.conn, c.chConsume = conn, ch

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	if err := mq.DeclareTopology(c.chConsume, c.cfg); err != nil {
		return err
	}

	if err := c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	var err error
	c.chDelivery, err = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg, ok := <-c.chDelivery:
			if !ok {
				c.log.Warn("delivery channel closed")
				return
			}
			// we can also use "fan-out" chan here with "worker-pool"
			// in case of heavy logic processing of messages
			if err := c.delivery(msg); err != nil {
				// alert
				c.log.Error("mq read message error", zap.Error(err))
			}
		case <-ctx.Done():
			c.chConsume.Close()
			return
		}
	}
}

// delivery writes one audit line per event. Messages are auto-acked.
func (c *Consumer) delivery(msg amqp091.Delivery) error {
	if len(msg.Body) == 0 {
		return fmt.Errorf("empty message %q", msg.MessageId)
	}

	c.log.Info("audit event",
		zap.String("action", actionNames[event.Action(msg.RoutingKey)]),
		zap.String("message_id", msg.MessageId),
		zap.ByteString("body", msg.Body),
	)

	return nil
}
