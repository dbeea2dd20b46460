// Package events publica eventos de pedidos en RabbitMQ.
// Los errores se registran y se devuelven; el caso de uso decide ignorarlos
// para no interrumpir la petición.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/ports"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

var (
	_ ports.OrderEventPublisher = (*AMQPPublisher)(nil)
	_ ports.OrderEventPublisher = NopPublisher{}
)

const defaultTimeout = 2 * time.Second

// AMQPPublisher abre una conexión por evento y publica en una cola durable.
// Cada publicación dura como máximo timeout, o menos si ctx vence antes.
type AMQPPublisher struct {
	url     string
	queue   string
	timeout time.Duration
	log     *logger.Logger
}

// NewAMQPPublisher construye el publicador. timeout <= 0 usa 2s.
func NewAMQPPublisher(url, queue string, timeout time.Duration, log *logger.Logger) *AMQPPublisher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &AMQPPublisher{url: url, queue: queue, timeout: timeout, log: log}
}

// PublishOrderEvent publica el evento como JSON persistente con MessageId único.
func (p *AMQPPublisher) PublishOrderEvent(ctx context.Context, event dto.OrderEvent) error {
	if err := p.publish(ctx, event); err != nil {
		p.log.Error().Err(err).
			Str("event", event.Type).
			Int64("order_id", event.OrderID).
			Msg("rabbitmq: no se pudo publicar el evento")
		return err
	}
	return nil
}

func (p *AMQPPublisher) publish(ctx context.Context, event dto.OrderEvent) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	deadline, _ := ctx.Deadline()
	wait := time.Until(deadline)
	if wait <= 0 {
		return fmt.Errorf("dial: %w", context.DeadlineExceeded)
	}

	// amqp.Dial no recibe ctx: DefaultDial fija el deadline del socket durante el handshake.
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(wait),
	})
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer func() { _ = conn.Close() }()
	// Canal y declaración de cola tampoco reciben ctx: al vencer se corta la conexión.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	return ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = nombre de la cola
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Type:         event.Type,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

// NopPublisher descarta los eventos (AMQP_URL vacío).
type NopPublisher struct{}

func (NopPublisher) PublishOrderEvent(context.Context, dto.OrderEvent) error { return nil }
