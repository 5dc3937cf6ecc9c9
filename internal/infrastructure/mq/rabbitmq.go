package mq

import (
	"context"
	"encoding/json"
	"net"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"file-registry-api/config"
	"file-registry-api/internal/domain/event"
)

// enough to absorb a burst of uploads while the broker is slow
const bufferSize = 128

type (
	InputCh  = chan event.Event
	RabbitMQ struct {
		cfg     config.MQ
		log     *zap.Logger
		conn    *amqp091.Connection
		pubCh   *amqp091.Channel
		returns chan amqp091.Return
		in      InputCh
	}
)

func New(cfg config.MQ, logger *zap.Logger) *RabbitMQ {
	return &RabbitMQ{
		cfg: cfg,
		log: logger,
		in:  make(InputCh, bufferSize),
	}
}

func (r *RabbitMQ) Connect(ctx context.Context, dsn string) error {
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	conn, err := amqp091.DialConfig(dsn, amqp091.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Properties: amqp091.Table{
			"connection_name": "fileregistryapi",
		},
		Dial: func(network, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, addr)
		},
	})
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}
	r.conn, r.pubCh = conn, ch

	r.log.Info("rabbitmq connected successfully")

	return nil
}

// Init declares the topology and subscribes to returned messages. Events
// are published as mandatory, so an unbound routing key comes back instead
// of vanishing.
func (r *RabbitMQ) Init() error {
	if err := DeclareTopology(r.pubCh, r.cfg); err != nil {
		_ = r.pubCh.Close()
		return err
	}
	r.returns = r.pubCh.NotifyReturn(make(chan amqp091.Return, 1))

	return nil
}

// Publish enqueues e for the publisher worker. A full buffer drops the event
// instead of stalling the request that produced it.
func (r *RabbitMQ) Publish(e event.Event) {
	select {
	case r.in <- e:
	default:
		// alert
		r.log.Error("mq buffer full, event dropped",
			zap.String("action", string(e.Action)),
			zap.Stringer("event_id", e.ID),
		)
	}
}

func (r *RabbitMQ) PublisherWorker(ctx context.Context) {
	r.log.Info("starting publisher worker")
	defer r.log.Info("publisher worker gracefully stopped")

	for {
		select {
		case e := <-r.in:
			if err := r.publish(ctx, e); err != nil {
				// alert
				r.log.Error("mq publish error",
					zap.Error(err),
					zap.String("action", string(e.Action)),
					zap.Stringer("event_id", e.ID),
				)
			}
		case ret, ok := <-r.returns:
			if !ok {
				r.returns = nil
				continue
			}
			r.log.Warn("mq event returned unroutable",
				zap.String("routing_key", ret.RoutingKey),
				zap.String("message_id", ret.MessageId),
				zap.String("reason", ret.ReplyText),
			)
		case <-ctx.Done():
			_ = r.pubCh.Close()
			return
		}
	}
}

func (r *RabbitMQ) publish(ctx context.Context, e event.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	return r.pubCh.PublishWithContext(ctx, r.cfg.Exchange, string(e.Action), true, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    e.ID.String(),
		Timestamp:    e.TS,
		Type:         string(e.Action),
		Body:         body,
	})
}

func (r *RabbitMQ) GetConn() *amqp091.Connection { return r.conn }
