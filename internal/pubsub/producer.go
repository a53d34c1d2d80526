package pubsub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/nikmy/palettes/pkg/errors"
	"github.com/nikmy/palettes/pkg/logger"
)

const defaultWriteTimeout = time.Second * 5

// Relay publishes every collection it observes to a kafka topic, keyed by
// the kind's tag. Observers are held weakly by the store, so whoever
// registers a Relay must keep it referenced.
type Relay[T any] struct {
	tag     string
	writer  messageWriter
	timeout time.Duration
	now     func() time.Time
	logger  logger.Logger
}

func NewKafkaRelay[T any](cfg Config, tag string, log logger.Logger) (*Relay[T], error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, errors.Error("changefeed needs brokers and a topic")
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: cfg.BatchTimeout,
		Async:        true,
	}

	relayLog := log.With("kafka_relay")
	w.Completion = func(messages []kafka.Message, err error) {
		if err != nil {
			relayLog.Error(errors.WrapFailf(err, "deliver %d messages", len(messages)))
		}
	}

	return newRelay[T](w, tag, cfg.WriteTimeout, relayLog), nil
}

func newRelay[T any](w messageWriter, tag string, timeout time.Duration, log logger.Logger) *Relay[T] {
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}

	return &Relay[T]{
		tag:     tag,
		writer:  w,
		timeout: timeout,
		now:     time.Now,
		logger:  log,
	}
}

func (r *Relay[T]) OnObserve(initial []T) {
	r.publish(EventSnapshot, initial)
}

func (r *Relay[T]) OnChange(updated []T) {
	r.publish(EventChange, updated)
}

func (r *Relay[T]) publish(typ EventType, items []T) {
	if err := r.Publish(context.Background(), typ, items); err != nil {
		r.logger.Error(err)
	}
}

func (r *Relay[T]) Publish(ctx context.Context, typ EventType, items []T) error {
	if items == nil {
		items = []T{}
	}

	bytes, err := json.Marshal(Event[T]{
		Tag:   r.tag,
		Type:  typ,
		Items: items,
		At:    r.now().UTC(),
	})
	if err != nil {
		return errors.WrapFail(err, "marshal event to json")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err = r.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(r.tag),
		Value: bytes,
	})
	if err != nil {
		return errors.WrapFailf(err, "publish %s event for %q", typ, r.tag)
	}

	r.logger.Debugf("published %s event for %q: %d items", typ, r.tag, len(items))
	return nil
}

func (r *Relay[T]) Close() error {
	return errors.WrapFail(r.writer.Close(), "close kafka writer")
}
