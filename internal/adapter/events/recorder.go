package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/shopmart/storefront/internal/core/domain"
	"github.com/shopmart/storefront/internal/core/port"
	"github.com/shopmart/storefront/pkg/schema"
)

var _ port.EventsSummarizer = (*ClientEventsRecorder)(nil)

type subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// ClientEventsRecorder consumes the client-events topic and maintains the
// aggregate summary served by the analytics endpoint. The summary guards
// itself with a mutex because the consume loop and HTTP reads run on
// different goroutines.
type ClientEventsRecorder struct {
	topic   string
	sub     subscriber
	decoder schema.Serde

	mu         sync.Mutex
	counts     map[domain.ClientEventType]int
	orders     int
	grossValue float64
}

func NewClientEventsRecorder(
	topic string, sub subscriber, decoder schema.Serde,
) *ClientEventsRecorder {
	return &ClientEventsRecorder{
		topic:   topic,
		sub:     sub,
		decoder: decoder,
		counts:  make(map[domain.ClientEventType]int),
	}
}

// Run subscribes and consumes until ctx is done. wg is released once the
// subscription is in place, so callers can wait for readiness before
// publishing.
func (r *ClientEventsRecorder) Run(ctx context.Context, wg *sync.WaitGroup) {
	const op = "ClientEventsRecorder.Run"
	log := slog.With("op", op)

	msgs, err := r.sub.Subscribe(ctx, r.topic)
	wg.Done()
	if err != nil {
		log.Error("failed to subscribe", "topic", r.topic, "err", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			if err := r.record(msg.Payload); err != nil {
				log.Error("failed to record client event", "err", err)
			}
			msg.Ack()
		}
	}
}

func (r *ClientEventsRecorder) record(payload []byte) error {
	const op = "ClientEventsRecorder.record"

	var e schema.ClientEventV1
	if err := r.decoder.Decode(payload, &e); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	eventType := domain.ClientEventType(e.EventType)
	r.counts[eventType]++
	if eventType == domain.EventOrderPlaced {
		r.orders++
		r.grossValue += e.Value
	}
	return nil
}

// Snapshot copies the aggregate state out under the lock.
func (r *ClientEventsRecorder) Snapshot() domain.EventsSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[domain.ClientEventType]int, len(r.counts))
	for k, v := range r.counts {
		counts[k] = v
	}
	return domain.EventsSummary{
		Counts:          counts,
		OrdersPlaced:    r.orders,
		GrossOrderValue: r.grossValue,
	}
}
