// Package events is the in-process client-events pipeline: a Watermill
// GoChannel bus carrying Avro-encoded storefront interactions from the
// state containers to the analytics recorder. There is no broker and no
// network I/O; everything stays inside the process.
package events

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Bus wraps the GoChannel pub/sub shared by the publisher and the
// recorder.
type Bus struct {
	pubSub *gochannel.GoChannel
}

func NewBus(buffer int64) *Bus {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: buffer},
		watermill.NewSlogLogger(slog.Default()),
	)
	return &Bus{pubSub}
}

func (b *Bus) Publish(topic string, msgs ...*message.Message) error {
	return b.pubSub.Publish(topic, msgs...)
}

func (b *Bus) Subscribe(
	ctx context.Context, topic string,
) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}

func (b *Bus) Close() {
	const op = "Bus.Close"
	log := slog.With("op", op)

	log.Info("closing events bus...")
	if err := b.pubSub.Close(); err != nil {
		log.Error("failed to close events bus", "err", err)
		return
	}
	log.Info("events bus is closed")
}
