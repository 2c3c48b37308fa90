package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/shopmart/storefront/internal/core/domain"
	"github.com/shopmart/storefront/internal/core/port"
	"github.com/shopmart/storefront/pkg/schema"
)

var _ port.EventPublisher = (*ClientEventsPublisher)(nil)

type publisher interface {
	Publish(topic string, msgs ...*message.Message) error
}

// ClientEventsPublisher encodes client events with the Avro serde and
// publishes them to the client-events topic.
type ClientEventsPublisher struct {
	topic   string
	pub     publisher
	encoder schema.Serde
}

func NewClientEventsPublisher(
	topic string, pub publisher, encoder schema.Serde,
) ClientEventsPublisher {
	return ClientEventsPublisher{topic: topic, pub: pub, encoder: encoder}
}

func (p ClientEventsPublisher) Publish(
	ctx context.Context, e domain.ClientEvent,
) error {
	const op = "ClientEventsPublisher.Publish"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data, err := p.encoder.Encode(p.toSchema(e))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := p.pub.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p ClientEventsPublisher) toSchema(
	e domain.ClientEvent,
) schema.ClientEventV1 {
	return schema.ClientEventV1{
		EventType: string(e.Type),
		SessionID: e.SessionID,
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
		Value:     e.Value,
		At:        e.At,
	}
}
