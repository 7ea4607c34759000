package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitEventPublisher publishes checkout events to the shared topic exchange.
type RabbitEventPublisher struct {
	ch *amqp.Channel
}

func NewRabbitEventPublisher(conn *amqp.Connection) (*RabbitEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Declare the exchange so publish never fails due to missing infra
	if err := ch.ExchangeDeclare(EventsExchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", EventsExchange, err)
	}

	return &RabbitEventPublisher{ch: ch}, nil
}

func (p *RabbitEventPublisher) Close() error {
	return p.ch.Close()
}

func (p *RabbitEventPublisher) PublishCartCheckedOut(ctx context.Context, ev CartCheckedOut) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal CartCheckedOut: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		CartCheckedOutRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
